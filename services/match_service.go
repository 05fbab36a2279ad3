package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/realtime"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/standings"
)

type MatchService interface {
	GetMatch(ctx context.Context, id int) (*models.Match, error)
	SubmitScore(ctx context.Context, matchID int, input SubmitScoreInput) (*models.Match, error)
}

type SubmitScoreInput struct {
	Team1Score int             `json:"team1_score"`
	Team2Score int             `json:"team2_score"`
	Specials   models.Specials `json:"specials"`
}

type matchService struct {
	tx             repositories.Transactor
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	specialRepo    repositories.SpecialTypeRepository
	cache          OverviewCache
	publisher      EventPublisher
	logger         *slog.Logger
}

func NewMatchService(
	tx repositories.Transactor,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	specialRepo repositories.SpecialTypeRepository,
	cache OverviewCache,
	publisher EventPublisher,
	logger *slog.Logger,
) MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &matchService{
		tx:             tx,
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		specialRepo:    specialRepo,
		cache:          cache,
		publisher:      publisherOrNoop(publisher),
		logger:         logger,
	}
}

func (s *matchService) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return match, nil
}

// validateScore проверяет счет и спешалы, ничего не изменяя.
func validateScore(match *models.Match, input SubmitScoreInput, enabled map[string]*models.SpecialType) error {
	v := newValidationError()
	if input.Team1Score < 0 || input.Team1Score > models.GamesPerMatch {
		v.Add("team1_score", fmt.Sprintf("must be between 0 and %d", models.GamesPerMatch))
	}
	if input.Team2Score < 0 || input.Team2Score > models.GamesPerMatch {
		v.Add("team2_score", fmt.Sprintf("must be between 0 and %d", models.GamesPerMatch))
	}
	if input.Team1Score+input.Team2Score != models.GamesPerMatch {
		v.Add("score", fmt.Sprintf("team scores must add up to %d", models.GamesPerMatch))
	}

	for playerID, awards := range input.Specials {
		field := "specials." + strconv.Itoa(playerID)
		if !match.HasPlayer(playerID) {
			v.Add(field, "player is not in this match")
			continue
		}
		for name, value := range awards {
			if _, ok := enabled[name]; !ok {
				v.Add(field+"."+name, "unknown or disabled special type")
				continue
			}
			if value <= 0 {
				v.Add(field+"."+name, "must be a positive number")
			}
		}
	}
	return v.orNil()
}

// SubmitScore завершает матч и пересчитывает накопители игроков турнира.
// При ошибке валидации ничего не меняется. Последняя запись побеждает.
func (s *matchService) SubmitScore(ctx context.Context, matchID int, input SubmitScoreInput) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, match.TournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if tournament.Status != models.StatusActive {
		return nil, ErrTournamentNotActive
	}

	types, err := s.specialRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load special types: %w", err)
	}
	enabled := make(map[string]*models.SpecialType, len(types))
	for _, st := range types {
		if st.Enabled {
			enabled[st.Name] = st
		}
	}
	if err := validateScore(match, input, enabled); err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByTournament(ctx, match.TournamentID, repositories.ListMatchesFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	players, err := s.playerRepo.List(ctx, repositories.ListPlayersFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	updated := *match
	updated.Team1Score = input.Team1Score
	updated.Team2Score = input.Team2Score
	updated.Specials = models.Specials{}
	for playerID, awards := range input.Specials {
		if len(awards) > 0 {
			updated.Specials[playerID] = awards
		}
	}
	updated.Completed = true

	for i, m := range matches {
		if m.ID == updated.ID {
			matches[i] = &updated
		}
	}

	// пересчитываем только группу матча
	var affected []*models.Player
	for _, p := range standings.Participants(players, matches) {
		if p.Group == match.Group {
			affected = append(affected, p)
		}
	}
	standings.Recalculate(affected, matches, types)

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.UpdateScore(ctx, exec, &updated); err != nil {
			return err
		}
		for _, p := range affected {
			// Participants берет группу из матчей, в БД пишем текущую
			p.Group = groupOf(players, p.ID, p.Group)
			if err := s.playerRepo.UpdateStats(ctx, exec, p); err != nil {
				return err
			}
		}
		return nil
	})
	invalidate(s.cache, match.TournamentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store match score", slog.Int("match_id", matchID), slog.Any("error", err))
		return nil, handleRepositoryError(err)
	}

	s.publisher.PublishTournament(match.TournamentID, realtime.EventMatchUpdated, &updated)
	rows := standings.Table(affected)
	s.publisher.PublishTournament(match.TournamentID, realtime.EventStandingsUpdated, map[string]interface{}{
		"group":     match.Group,
		"standings": rows,
	})
	return &updated, nil
}

func groupOf(players []*models.Player, id int, fallback models.Group) models.Group {
	for _, p := range players {
		if p.ID == id {
			return p.Group
		}
	}
	return fallback
}
