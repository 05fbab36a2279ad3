package services

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/storage"
)

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

// --- players ---

type fakePlayerRepo struct {
	mu      sync.Mutex
	nextID  int
	players map[int]*models.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]*models.Player)}
}

func clonePlayer(p *models.Player) *models.Player {
	cp := *p
	return &cp
}

func (r *fakePlayerRepo) seed(group models.Group, n int) []int {
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		p := &models.Player{Name: string(group) + "-" + string(rune('a'+i)), Group: group, Active: true}
		_ = r.Create(context.Background(), p)
		ids = append(ids, p.ID)
	}
	return ids
}

func (r *fakePlayerRepo) get(id int) *models.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clonePlayer(r.players[id])
}

func (r *fakePlayerRepo) Create(ctx context.Context, p *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.players {
		if existing.Name == p.Name {
			return repositories.ErrPlayerNameConflict
		}
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	r.players[p.ID] = clonePlayer(p)
	return nil
}

func (r *fakePlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	return clonePlayer(p), nil
}

func (r *fakePlayerRepo) List(ctx context.Context, filter repositories.ListPlayersFilter) ([]*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Player{}
	for _, p := range r.players {
		if filter.Group != nil && p.Group != *filter.Group {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePlayerRepo) Update(ctx context.Context, p *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.players[p.ID]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	existing.Name, existing.Group, existing.Active = p.Name, p.Group, p.Active
	return nil
}

func (r *fakePlayerRepo) UpdateStats(ctx context.Context, exec repositories.SQLExecutor, p *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.players[p.ID]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	existing.Group, existing.Tournament, existing.Career = p.Group, p.Tournament, p.Career
	return nil
}

func (r *fakePlayerRepo) ResetTournamentStats(ctx context.Context, exec repositories.SQLExecutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		p.ResetTournament()
	}
	return nil
}

func (r *fakePlayerRepo) UpdateAvatarKey(ctx context.Context, id int, key *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	p.AvatarKey = key
	return nil
}

func (r *fakePlayerRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) Count(ctx context.Context, activeOnly bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.players {
		if !activeOnly || p.Active {
			n++
		}
	}
	return n, nil
}

// --- tournaments ---

type fakeTournamentRepo struct {
	mu          sync.Mutex
	nextID      int
	tournaments map[int]*models.Tournament
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{tournaments: make(map[int]*models.Tournament)}
}

func (r *fakeTournamentRepo) get(id int) *models.Tournament {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.tournaments[id]
	return &cp
}

func (r *fakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tournaments {
		if existing.Name == t.Name {
			return repositories.ErrTournamentNameConflict
		}
	}
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.tournaments[t.ID] = &cp
	return nil
}

func (r *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTournamentRepo) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Tournament{}
	for _, t := range r.tournaments {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTournamentRepo) Update(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tournaments[t.ID]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	existing.Name, existing.StartDate, existing.EndDate, existing.MaxPlayers = t.Name, t.StartDate, t.EndDate, t.MaxPlayers
	return nil
}

func (r *fakeTournamentRepo) UpdateStatus(ctx context.Context, exec repositories.SQLExecutor, id int, status models.TournamentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.Status = status
	return nil
}

func (r *fakeTournamentRepo) UpdateCurrentRound(ctx context.Context, exec repositories.SQLExecutor, id int, round int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.CurrentRound = round
	return nil
}

func (r *fakeTournamentRepo) UpdateSnapshotKey(ctx context.Context, id int, key *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.SnapshotKey = key
	return nil
}

func (r *fakeTournamentRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}

func (r *fakeTournamentRepo) Count(ctx context.Context, status *models.TournamentStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tournaments {
		if status == nil || t.Status == *status {
			n++
		}
	}
	return n, nil
}

// --- matches ---

type fakeMatchRepo struct {
	mu             sync.Mutex
	nextID         int
	matches        map[int]*models.Match
	updateScoreErr error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]*models.Match)}
}

func cloneMatch(m *models.Match) *models.Match {
	cp := *m
	cp.Specials = models.Specials{}
	for id, awards := range m.Specials {
		inner := make(map[string]int, len(awards))
		for k, v := range awards {
			inner[k] = v
		}
		cp.Specials[id] = inner
	}
	return &cp
}

func (r *fakeMatchRepo) get(id int) *models.Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneMatch(r.matches[id])
}

func (r *fakeMatchRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, matches []*models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range matches {
		r.nextID++
		m.ID = r.nextID
		r.matches[m.ID] = cloneMatch(m)
	}
	return nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	return cloneMatch(m), nil
}

func (r *fakeMatchRepo) ListByTournament(ctx context.Context, tournamentID int, filter repositories.ListMatchesFilter) ([]*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Match{}
	for _, m := range r.matches {
		if m.TournamentID != tournamentID {
			continue
		}
		if filter.Round != nil && m.Round != *filter.Round {
			continue
		}
		if filter.Group != nil && m.Group != *filter.Group {
			continue
		}
		if filter.Completed != nil && m.Completed != *filter.Completed {
			continue
		}
		out = append(out, cloneMatch(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) UpdateScore(ctx context.Context, exec repositories.SQLExecutor, m *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateScoreErr != nil {
		return r.updateScoreErr
	}
	if _, ok := r.matches[m.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	r.matches[m.ID] = cloneMatch(m)
	return nil
}

func (r *fakeMatchRepo) DeleteRound(ctx context.Context, exec repositories.SQLExecutor, tournamentID, round int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, m := range r.matches {
		if m.TournamentID == tournamentID && m.Round == round {
			delete(r.matches, id)
		}
	}
	return nil
}

func (r *fakeMatchRepo) Count(ctx context.Context, completedOnly bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.matches {
		if !completedOnly || m.Completed {
			n++
		}
	}
	return n, nil
}

// --- special types ---

type fakeSpecialRepo struct {
	mu     sync.Mutex
	nextID int
	types  map[int]*models.SpecialType
}

func newFakeSpecialRepo(types ...models.SpecialType) *fakeSpecialRepo {
	r := &fakeSpecialRepo{types: make(map[int]*models.SpecialType)}
	for i := range types {
		st := types[i]
		_ = r.Create(context.Background(), &st)
	}
	return r
}

func (r *fakeSpecialRepo) Create(ctx context.Context, st *models.SpecialType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.types {
		if existing.Name == st.Name {
			return repositories.ErrSpecialTypeNameConflict
		}
	}
	r.nextID++
	st.ID = r.nextID
	cp := *st
	r.types[st.ID] = &cp
	return nil
}

func (r *fakeSpecialRepo) GetByID(ctx context.Context, id int) (*models.SpecialType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.types[id]
	if !ok {
		return nil, repositories.ErrSpecialTypeNotFound
	}
	cp := *st
	return &cp, nil
}

func (r *fakeSpecialRepo) List(ctx context.Context, enabledOnly bool) ([]*models.SpecialType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.SpecialType{}
	for _, st := range r.types {
		if enabledOnly && !st.Enabled {
			continue
		}
		cp := *st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSpecialRepo) Update(ctx context.Context, st *models.SpecialType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[st.ID]; !ok {
		return repositories.ErrSpecialTypeNotFound
	}
	cp := *st
	r.types[st.ID] = &cp
	return nil
}

func (r *fakeSpecialRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[id]; !ok {
		return repositories.ErrSpecialTypeNotFound
	}
	delete(r.types, id)
	return nil
}

// --- collaborators ---

type publishedEvent struct {
	TournamentID int
	Type         string
	Payload      interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) PublishTournament(tournamentID int, eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{tournamentID, eventType, payload})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type countingCache struct {
	mu          sync.Mutex
	invalidated map[int]int
	load        func(ctx context.Context, id int) (*models.TournamentOverview, error)
}

func newCountingCache() *countingCache {
	return &countingCache{invalidated: make(map[int]int)}
}

func (c *countingCache) Get(ctx context.Context, id int) (*models.TournamentOverview, error) {
	return c.load(ctx, id)
}

func (c *countingCache) Invalidate(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated[id]++
}

func (c *countingCache) count(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidated[id]
}

type memoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: make(map[string][]byte)}
}

func (u *memoryUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(ctx context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

// --- fixture ---

type ladderFixture struct {
	players     *fakePlayerRepo
	tournaments *fakeTournamentRepo
	matches     *fakeMatchRepo
	specials    *fakeSpecialRepo
	cache       *countingCache
	publisher   *recordingPublisher
	uploader    *memoryUploader

	tournamentSvc TournamentService
	roundSvc      RoundService
	matchSvc      MatchService
}

func newLadderFixture() *ladderFixture {
	f := &ladderFixture{
		players:     newFakePlayerRepo(),
		tournaments: newFakeTournamentRepo(),
		matches:     newFakeMatchRepo(),
		specials: newFakeSpecialRepo(
			models.SpecialType{Name: "ace", Enabled: true},
			models.SpecialType{Name: "foot fault", Enabled: true, Penalty: true},
			models.SpecialType{Name: "retired", Enabled: false},
		),
		cache:     newCountingCache(),
		publisher: &recordingPublisher{},
		uploader:  newMemoryUploader(),
	}
	loader := NewOverviewLoader(f.tournaments, f.players, f.matches, f.specials, f.uploader)
	f.cache.load = loader.Load

	f.tournamentSvc = NewTournamentService(fakeTx{}, f.tournaments, f.players, f.matches, f.cache, f.publisher, f.uploader, nil)
	f.roundSvc = NewRoundService(fakeTx{}, f.tournaments, f.players, f.matches, f.specials, f.cache, f.publisher, f.uploader, nil)
	f.matchSvc = NewMatchService(fakeTx{}, f.matches, f.tournaments, f.players, f.specials, f.cache, f.publisher, nil)
	return f
}

// activeTournament seeds 8+8 players and an active tournament.
func (f *ladderFixture) activeTournament(ctx context.Context) (*models.Tournament, []int, []int) {
	top := f.players.seed(models.GroupTop, 8)
	bottom := f.players.seed(models.GroupBottom, 8)
	t, err := f.tournamentSvc.CreateTournament(ctx, CreateTournamentInput{
		Name:       "Spring ladder",
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
		MaxPlayers: 16,
	})
	if err != nil {
		panic(err)
	}
	if t, err = f.tournamentSvc.ActivateTournament(ctx, t.ID); err != nil {
		panic(err)
	}
	return t, top, bottom
}

// completeRound submits 5-3 for every open match of round.
func (f *ladderFixture) completeRound(ctx context.Context, tournamentID, round int) {
	matches, err := f.matches.ListByTournament(ctx, tournamentID, repositories.ListMatchesFilter{Round: &round})
	if err != nil {
		panic(err)
	}
	for _, m := range matches {
		if _, err := f.matchSvc.SubmitScore(ctx, m.ID, SubmitScoreInput{Team1Score: 5, Team2Score: 3}); err != nil {
			panic(err)
		}
	}
}
