package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
}

func NewDashboardService(playerRepo repositories.PlayerRepository, tournamentRepo repositories.TournamentRepository, matchRepo repositories.MatchRepository) DashboardService {
	return &dashboardService{playerRepo: playerRepo, tournamentRepo: tournamentRepo, matchRepo: matchRepo}
}

func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	active := models.StatusActive

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.PlayersTotal, err = s.playerRepo.Count(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		stats.ActivePlayers, err = s.playerRepo.Count(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		stats.TournamentsTotal, err = s.tournamentRepo.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveTournaments, err = s.tournamentRepo.Count(gctx, &active)
		return err
	})
	g.Go(func() (err error) {
		stats.MatchesTotal, err = s.matchRepo.Count(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		stats.CompletedMatches, err = s.matchRepo.Count(gctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}
	return &stats, nil
}
