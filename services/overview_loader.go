package services

import (
	"context"
	"time"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/standings"
	"github.com/Dosada05/ladder-system/storage"
	"golang.org/x/sync/errgroup"
)

// OverviewLoader собирает обзор турнира из БД. Используется state.Store.
type OverviewLoader struct {
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	specialRepo    repositories.SpecialTypeRepository
	uploader       storage.FileUploader
}

func NewOverviewLoader(
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	specialRepo repositories.SpecialTypeRepository,
	uploader storage.FileUploader,
) *OverviewLoader {
	return &OverviewLoader{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		specialRepo:    specialRepo,
		uploader:       uploader,
	}
}

// Load reads the tournament, players, matches and special types in
// parallel and derives both group tables from the completed matches.
// Before the first round the tables list the active players with zero stats.
func (l *OverviewLoader) Load(ctx context.Context, tournamentID int) (*models.TournamentOverview, error) {
	var (
		tournament *models.Tournament
		players    []*models.Player
		matches    []*models.Match
		types      []*models.SpecialType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tournament, err = l.tournamentRepo.GetByID(gctx, tournamentID)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = l.playerRepo.List(gctx, repositories.ListPlayersFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = l.matchRepo.ListByTournament(gctx, tournamentID, repositories.ListMatchesFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		types, err = l.specialRepo.List(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, handleRepositoryError(err)
	}

	var participants []*models.Player
	if len(matches) > 0 {
		participants = standings.Participants(players, matches)
		standings.Recalculate(participants, matches, types)
	} else {
		for _, p := range players {
			if p.Active {
				cp := *p
				cp.ResetTournament()
				participants = append(participants, &cp)
			}
		}
	}
	top, bottom := standings.SplitGroups(participants)

	populateSnapshotURL(tournament, l.uploader)
	if matches == nil {
		matches = []*models.Match{}
	}
	return &models.TournamentOverview{
		Tournament:   tournament,
		Top:          standings.Table(top),
		Bottom:       standings.Table(bottom),
		Matches:      matches,
		SpecialTypes: types,
		LoadedAt:     time.Now().UTC(),
	}, nil
}
