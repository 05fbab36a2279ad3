package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/pairings"
	"github.com/Dosada05/ladder-system/realtime"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/standings"
	"github.com/Dosada05/ladder-system/storage"
)

type RoundService interface {
	GenerateRound(ctx context.Context, tournamentID int, input GenerateRoundInput) ([]*models.Match, error)
	ApplyFinalRanking(ctx context.Context, tournamentID int) (*FinalRankingResult, error)
}

// ManualPairings - ручные пары по группам.
type ManualPairings struct {
	Top    []pairings.ManualPairing `json:"top"`
	Bottom []pairings.ManualPairing `json:"bottom"`
}

func (m ManualPairings) forGroup(g models.Group) []pairings.ManualPairing {
	if g == models.GroupBottom {
		return m.Bottom
	}
	return m.Top
}

type GenerateRoundInput struct {
	Round      int            `json:"-"`
	Mode       pairings.Mode  `json:"mode"`
	Regenerate bool           `json:"regenerate"`
	Manual     ManualPairings `json:"manual"`
}

type FinalRankingResult struct {
	Tournament *models.Tournament   `json:"tournament"`
	Promoted   *models.StandingRow  `json:"promoted,omitempty"`
	Relegated  *models.StandingRow  `json:"relegated,omitempty"`
	Top        []models.StandingRow `json:"top"`
	Bottom     []models.StandingRow `json:"bottom"`
}

type roundService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	specialRepo    repositories.SpecialTypeRepository
	cache          OverviewCache
	publisher      EventPublisher
	uploader       storage.FileUploader
	logger         *slog.Logger

	newGenerator func(mode pairings.Mode) (pairings.Generator, error)
}

func NewRoundService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	specialRepo repositories.SpecialTypeRepository,
	cache OverviewCache,
	publisher EventPublisher,
	uploader storage.FileUploader,
	logger *slog.Logger,
) RoundService {
	if logger == nil {
		logger = slog.Default()
	}
	return &roundService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		specialRepo:    specialRepo,
		cache:          cache,
		publisher:      publisherOrNoop(publisher),
		uploader:       uploader,
		logger:         logger,
		newGenerator:   pairings.NewGenerator,
	}
}

// resolveMode: первый раунд - random или manual, второй и третий - только ranked.
func resolveMode(round int, mode pairings.Mode) (pairings.Mode, error) {
	if round == 1 {
		switch mode {
		case "":
			return pairings.ModeRandom, nil
		case pairings.ModeRandom, pairings.ModeManual:
			return mode, nil
		}
		return "", fmt.Errorf("%w: round 1 accepts random or manual, got %q", ErrInvalidPairingMode, mode)
	}
	if mode == "" || mode == pairings.ModeRanked {
		return pairings.ModeRanked, nil
	}
	return "", fmt.Errorf("%w: round %d is always ranked, got %q", ErrInvalidPairingMode, round, mode)
}

func allCompleted(matches []*models.Match) bool {
	for _, m := range matches {
		if !m.Completed {
			return false
		}
	}
	return true
}

func (s *roundService) GenerateRound(ctx context.Context, tournamentID int, input GenerateRoundInput) ([]*models.Match, error) {
	if input.Round < 1 || input.Round > models.FinalRound {
		return nil, ErrInvalidRound
	}
	mode, err := resolveMode(input.Round, input.Mode)
	if err != nil {
		return nil, err
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if tournament.Status != models.StatusActive {
		return nil, ErrTournamentNotActive
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, repositories.ListMatchesFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	var previous, existing []*models.Match
	for _, m := range matches {
		switch {
		case m.Round == input.Round:
			existing = append(existing, m)
		case m.Round < input.Round:
			previous = append(previous, m)
		}
	}

	if len(existing) > 0 {
		if !input.Regenerate {
			return nil, fmt.Errorf("%w: round %d", ErrRoundAlreadyGenerated, input.Round)
		}
		if input.Round != tournament.CurrentRound {
			return nil, ErrRoundLocked
		}
		for _, m := range existing {
			if m.Completed {
				return nil, fmt.Errorf("%w: match %d", ErrRoundHasResults, m.ID)
			}
		}
	} else if input.Round != tournament.CurrentRound+1 {
		return nil, fmt.Errorf("%w: current round is %d", ErrRoundNotReady, tournament.CurrentRound)
	}
	if !allCompleted(previous) {
		return nil, fmt.Errorf("%w: round %d has open matches", ErrRoundNotReady, input.Round-1)
	}

	players, err := s.playerRepo.List(ctx, repositories.ListPlayersFilter{Active: boolPtr(true)})
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	if mode == pairings.ModeRanked {
		types, err := s.specialRepo.List(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("failed to load special types: %w", err)
		}
		standings.Recalculate(players, previous, types)
	}

	generator, err := s.newGenerator(mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPairingMode, err)
	}

	var generated []*models.Match
	v := newValidationError()
	for _, group := range []models.Group{models.GroupTop, models.GroupBottom} {
		params := pairings.GeneratePairingsParams{
			TournamentID: tournamentID,
			Round:        input.Round,
			Group:        group,
			Players:      players,
			Manual:       input.Manual.forGroup(group),
		}
		groupMatches, err := generator.Generate(ctx, params)
		if err != nil {
			var incomplete *pairings.IncompletePairingsError
			if errors.As(err, &incomplete) {
				for i, msg := range incomplete.Messages {
					v.Add(fmt.Sprintf("%s.%d", group, i+1), msg)
				}
				continue
			}
			return nil, err
		}
		generated = append(generated, groupMatches...)
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if len(existing) > 0 {
			if err := s.matchRepo.DeleteRound(ctx, exec, tournamentID, input.Round); err != nil {
				return err
			}
		}
		if err := s.matchRepo.CreateBatch(ctx, exec, generated); err != nil {
			return err
		}
		return s.tournamentRepo.UpdateCurrentRound(ctx, exec, tournamentID, input.Round)
	})
	invalidate(s.cache, tournamentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store generated round",
			slog.Int("tournament_id", tournamentID), slog.Int("round", input.Round), slog.Any("error", err))
		return nil, handleRepositoryError(err)
	}

	s.logger.InfoContext(ctx, "round generated",
		slog.Int("tournament_id", tournamentID),
		slog.Int("round", input.Round),
		slog.String("generator", generator.GetName()),
		slog.Bool("regenerated", len(existing) > 0),
	)
	s.publisher.PublishTournament(tournamentID, realtime.EventRoundGenerated, map[string]interface{}{
		"round":   input.Round,
		"matches": generated,
	})
	return generated, nil
}

func standingRow(rows []models.StandingRow, p *models.Player) *models.StandingRow {
	if p == nil {
		return nil
	}
	for i := range rows {
		if rows[i].PlayerID == p.ID {
			row := rows[i]
			return &row
		}
	}
	return nil
}

// ApplyFinalRanking завершает турнир: победитель нижней группы поднимается,
// последний верхней опускается, накопители переносятся в карьеру и обнуляются.
func (s *roundService) ApplyFinalRanking(ctx context.Context, tournamentID int) (*FinalRankingResult, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	switch tournament.Status {
	case models.StatusCompleted:
		return nil, ErrTournamentFinalized
	case models.StatusActive:
	default:
		return nil, ErrTournamentNotActive
	}
	if tournament.CurrentRound != models.FinalRound {
		return nil, fmt.Errorf("%w: current round is %d", ErrFinalRoundNotCompleted, tournament.CurrentRound)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, repositories.ListMatchesFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	for _, m := range matches {
		if m.Round == models.FinalRound && !m.Completed {
			return nil, fmt.Errorf("%w: match %d is open", ErrFinalRoundNotCompleted, m.ID)
		}
	}

	players, err := s.playerRepo.List(ctx, repositories.ListPlayersFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	types, err := s.specialRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load special types: %w", err)
	}

	participants := standings.Participants(players, matches)
	standings.Recalculate(participants, matches, types)
	top, bottom := standings.SplitGroups(participants)
	result := &FinalRankingResult{
		Top:    standings.Table(top),
		Bottom: standings.Table(bottom),
	}

	movement := standings.PromotionRelegation(top, bottom)
	result.Promoted = standingRow(result.Bottom, movement.Promoted)
	result.Relegated = standingRow(result.Top, movement.Relegated)
	// таблицы считаются по группам матчей, а сохраняется текущая группа
	// игрока: ручная правка во время турнира не откатывается
	for _, p := range participants {
		p.Group = groupOf(players, p.ID, p.Group)
	}
	if movement.Promoted != nil {
		movement.Promoted.Group = models.GroupTop
		movement.Promoted.Career.Promotions++
	}
	if movement.Relegated != nil {
		movement.Relegated.Group = models.GroupBottom
		movement.Relegated.Career.Relegations++
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		for _, p := range participants {
			p.FoldCareer()
			p.ResetTournament()
			if err := s.playerRepo.UpdateStats(ctx, exec, p); err != nil {
				return err
			}
		}
		if err := s.playerRepo.ResetTournamentStats(ctx, exec); err != nil {
			return err
		}
		return s.tournamentRepo.UpdateStatus(ctx, exec, tournamentID, models.StatusCompleted)
	})
	invalidate(s.cache, tournamentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to apply final ranking", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return nil, handleRepositoryError(err)
	}

	tournament.Status = models.StatusCompleted
	result.Tournament = tournament
	s.storeSnapshot(ctx, tournament, result, matches)

	s.logger.InfoContext(ctx, "final ranking applied",
		slog.Int("tournament_id", tournamentID),
		slog.Int("participants", len(participants)),
	)
	s.publisher.PublishTournament(tournamentID, realtime.EventFinalRankingApplied, result)
	return result, nil
}

// storeSnapshot выгружает итог турнира в объектное хранилище. Ошибки только
// логируются: турнир уже завершен.
func (s *roundService) storeSnapshot(ctx context.Context, tournament *models.Tournament, result *FinalRankingResult, matches []*models.Match) {
	if s.uploader == nil {
		return
	}
	snapshot := struct {
		*FinalRankingResult
		Matches     []*models.Match `json:"matches"`
		FinalizedAt time.Time       `json:"finalized_at"`
	}{result, matches, time.Now().UTC()}

	body, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal tournament snapshot", slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
		return
	}
	key := storage.SnapshotKey(tournament.ID)
	if _, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body)); err != nil {
		s.logger.ErrorContext(ctx, "failed to upload tournament snapshot", slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
		return
	}
	if err := s.tournamentRepo.UpdateSnapshotKey(ctx, tournament.ID, &key); err != nil {
		s.logger.ErrorContext(ctx, "failed to save snapshot key", slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
		return
	}
	tournament.SnapshotKey = &key
	populateSnapshotURL(tournament, s.uploader)
}
