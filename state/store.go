// Package state keeps read-side tournament overviews in memory. PostgreSQL
// stays the source of truth: entries are dropped on every mutation and
// refreshed by a background reconciler.
package state

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Dosada05/ladder-system/models"
	"golang.org/x/sync/singleflight"
)

const defaultLoadTimeout = 10 * time.Second

// Loader reads a fresh overview from the database.
type Loader func(ctx context.Context, tournamentID int) (*models.TournamentOverview, error)

type entry struct {
	overview *models.TournamentOverview
	loadedAt time.Time
}

type Store struct {
	load        Loader
	loadTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	entries map[int]entry
	// generation растет при каждой инвалидации; загрузка, начатая до нее,
	// не попадает в кэш
	generation map[int]uint64
}

func NewStore(load Loader, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		load:        load,
		loadTimeout: defaultLoadTimeout,
		logger:      logger,
		now:         time.Now,
		entries:     make(map[int]entry),
		generation:  make(map[int]uint64),
	}
}

func key(tournamentID int) string {
	return strconv.Itoa(tournamentID)
}

// Get returns the cached overview or loads it. Concurrent misses for the
// same tournament share one load.
func (s *Store) Get(ctx context.Context, tournamentID int) (*models.TournamentOverview, error) {
	s.mu.RLock()
	e, ok := s.entries[tournamentID]
	s.mu.RUnlock()
	if ok {
		return e.overview, nil
	}

	ch := s.group.DoChan(key(tournamentID), func() (interface{}, error) {
		return s.fetch(ctx, tournamentID)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.TournamentOverview), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetch loads detached from the caller: other waiters share the result.
func (s *Store) fetch(ctx context.Context, tournamentID int) (*models.TournamentOverview, error) {
	s.mu.RLock()
	gen := s.generation[tournamentID]
	s.mu.RUnlock()

	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
	defer cancel()

	overview, err := s.load(loadCtx, tournamentID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.generation[tournamentID] == gen {
		s.entries[tournamentID] = entry{overview: overview, loadedAt: s.now()}
	}
	s.mu.Unlock()
	return overview, nil
}

// Invalidate drops the cached overview. A load already in flight is
// forgotten so the next Get starts a fresh one.
func (s *Store) Invalidate(tournamentID int) {
	s.mu.Lock()
	delete(s.entries, tournamentID)
	s.generation[tournamentID]++
	s.mu.Unlock()
	s.group.Forget(key(tournamentID))
}

// Len returns the number of cached overviews.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Refresh reloads cached overviews loaded at least olderThan ago; younger
// entries are kept. Entries that fail to load are dropped; the next Get
// reports the error to its caller.
func (s *Store) Refresh(ctx context.Context, olderThan time.Duration) {
	now := s.now()
	s.mu.RLock()
	ids := make([]int, 0, len(s.entries))
	for id, e := range s.entries {
		if now.Sub(e.loadedAt) >= olderThan {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		s.Invalidate(id)
		if _, err := s.Get(ctx, id); err != nil {
			s.logger.Warn("state reconcile failed, overview dropped", slog.Int("tournament_id", id), slog.Any("error", err))
		}
	}
}

// Run refreshes the store every interval until ctx is done. Overviews
// reloaded within the last half interval (after a write) are skipped.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("state reconciler started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("state reconciler stopped")
			return
		case <-ticker.C:
			start := time.Now()
			s.Refresh(ctx, interval/2)
			s.logger.Debug("state reconciled", slog.Int("overviews", s.Len()), slog.Duration("took", time.Since(start)))
		}
	}
}
