package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/pairings"
	"github.com/Dosada05/ladder-system/realtime"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/storage"
)

const (
	defaultTournamentLimit = 20
	maxTournamentLimit     = 100
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input UpdateTournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error
	ActivateTournament(ctx context.Context, id int) (*models.Tournament, error)
	GetOverview(ctx context.Context, id int) (*models.TournamentOverview, error)
	GetRankings(ctx context.Context, id int, group models.Group) ([]models.StandingRow, error)
	ListMatches(ctx context.Context, id int, filter MatchFilter) ([]*models.Match, error)
}

type CreateTournamentInput struct {
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	MaxPlayers int       `json:"max_players"`
}

type UpdateTournamentInput struct {
	Name       *string    `json:"name"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	MaxPlayers *int       `json:"max_players"`
}

type ListTournamentsFilter struct {
	Status *models.TournamentStatus
	Limit  int
	Offset int
}

type MatchFilter struct {
	Round *int
	Group *models.Group
}

type tournamentService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	cache          OverviewCache
	publisher      EventPublisher
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewTournamentService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	cache OverviewCache,
	publisher EventPublisher,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		cache:          cache,
		publisher:      publisherOrNoop(publisher),
		uploader:       uploader,
		logger:         logger,
	}
}

func validateMaxPlayers(v *ValidationError, maxPlayers int) {
	if maxPlayers <= 0 || maxPlayers%4 != 0 {
		v.Add("max_players", "must be a positive multiple of 4")
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	v := newValidationError()
	name := strings.TrimSpace(input.Name)
	if name == "" {
		v.Add("name", "must be provided")
	}
	validateMaxPlayers(v, input.MaxPlayers)
	if err := validateTournamentDates(input.StartDate, input.EndDate); err != nil {
		v.Add("dates", strings.TrimPrefix(err.Error(), ErrValidationFailed.Error()+": "))
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		Name:       name,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		MaxPlayers: input.MaxPlayers,
		Status:     models.StatusDraft,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, handleRepositoryError(err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	populateSnapshotURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTournamentLimit
	}
	if limit > maxTournamentLimit {
		limit = maxTournamentLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	tournaments, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{Status: filter.Status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	for _, t := range tournaments {
		populateSnapshotURL(t, s.uploader)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input UpdateTournamentInput) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if tournament.Status != models.StatusDraft {
		return nil, ErrTournamentNotDraft
	}

	v := newValidationError()
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			v.Add("name", "must not be empty")
		}
		tournament.Name = name
	}
	if input.StartDate != nil {
		tournament.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		tournament.EndDate = *input.EndDate
	}
	if input.MaxPlayers != nil {
		validateMaxPlayers(v, *input.MaxPlayers)
		tournament.MaxPlayers = *input.MaxPlayers
	}
	if err := validateTournamentDates(tournament.StartDate, tournament.EndDate); err != nil {
		v.Add("dates", strings.TrimPrefix(err.Error(), ErrValidationFailed.Error()+": "))
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, handleRepositoryError(err)
	}
	invalidate(s.cache, id)
	s.publisher.PublishTournament(id, realtime.EventTournamentUpdated, tournament)
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return handleRepositoryError(err)
	}
	if tournament.Status != models.StatusDraft {
		return ErrTournamentNotDraft
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return handleRepositoryError(err)
	}
	invalidate(s.cache, id)
	return nil
}

// ActivateTournament переводит draft -> active и обнуляет турнирные
// накопители всех игроков. Одновременно активен только один турнир.
func (s *tournamentService) ActivateTournament(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if !isValidStatusTransition(tournament.Status, models.StatusActive) {
		return nil, fmt.Errorf("%w: tournament is %s", ErrTournamentNotDraft, tournament.Status)
	}
	if tournament.Status == models.StatusActive {
		return tournament, nil
	}

	active := models.StatusActive
	n, err := s.tournamentRepo.Count(ctx, &active)
	if err != nil {
		return nil, fmt.Errorf("failed to count active tournaments: %w", err)
	}
	if n > 0 {
		return nil, ErrTournamentAlreadyActive
	}

	players, err := s.playerRepo.List(ctx, repositories.ListPlayersFilter{Active: boolPtr(true)})
	if err != nil {
		return nil, fmt.Errorf("failed to list active players: %w", err)
	}
	counts := map[models.Group]int{}
	for _, p := range players {
		counts[p.Group]++
	}
	for _, g := range []models.Group{models.GroupTop, models.GroupBottom} {
		if counts[g] > tournament.GroupCapacity() {
			return nil, fmt.Errorf("%w: %s has %d, capacity %d", ErrGroupOverCapacity, g, counts[g], tournament.GroupCapacity())
		}
	}
	// генераторы раундов работают только с группами по GroupSize игроков
	if tournament.GroupCapacity() != pairings.GroupSize {
		return nil, fmt.Errorf("%w: capacity %d, rounds need %d per group", ErrUnsupportedGroupSize, tournament.GroupCapacity(), pairings.GroupSize)
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.playerRepo.ResetTournamentStats(ctx, exec); err != nil {
			return err
		}
		if err := s.tournamentRepo.UpdateCurrentRound(ctx, exec, id, 0); err != nil {
			return err
		}
		return s.tournamentRepo.UpdateStatus(ctx, exec, id, models.StatusActive)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to activate tournament", slog.Int("tournament_id", id), slog.Any("error", err))
		return nil, handleRepositoryError(err)
	}

	tournament.Status = models.StatusActive
	tournament.CurrentRound = 0
	invalidate(s.cache, id)
	s.logger.InfoContext(ctx, "tournament activated", slog.Int("tournament_id", id))
	s.publisher.PublishTournament(id, realtime.EventTournamentUpdated, tournament)
	return tournament, nil
}

func (s *tournamentService) GetOverview(ctx context.Context, id int) (*models.TournamentOverview, error) {
	if s.cache == nil {
		return nil, errors.New("overview cache is not configured")
	}
	overview, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return overview, nil
}

func (s *tournamentService) GetRankings(ctx context.Context, id int, group models.Group) ([]models.StandingRow, error) {
	if !group.Valid() {
		v := newValidationError()
		v.Add("group", "must be 'top' or 'bottom'")
		return nil, v
	}
	overview, err := s.GetOverview(ctx, id)
	if err != nil {
		return nil, err
	}
	return overview.Standings(group), nil
}

func (s *tournamentService) ListMatches(ctx context.Context, id int, filter MatchFilter) ([]*models.Match, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, id); err != nil {
		return nil, handleRepositoryError(err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, id, repositories.ListMatchesFilter{Round: filter.Round, Group: filter.Group})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %d: %w", id, err)
	}
	return matches, nil
}
