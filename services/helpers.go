package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/storage"
)

// EventPublisher рассылает события турнира подписчикам (realtime.Hub).
type EventPublisher interface {
	PublishTournament(tournamentID int, eventType string, payload interface{})
}

// OverviewCache - read-side кэш обзоров турниров (state.Store).
type OverviewCache interface {
	Get(ctx context.Context, tournamentID int) (*models.TournamentOverview, error)
	Invalidate(tournamentID int)
}

type noopPublisher struct{}

func (noopPublisher) PublishTournament(int, string, interface{}) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

func invalidate(cache OverviewCache, tournamentID int) {
	if cache != nil {
		cache.Invalidate(tournamentID)
	}
}

// --- Общие хелперы ---

func validateTournamentDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrValidationFailed)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date (%s) is before start date (%s)", ErrValidationFailed, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}

func isValidStatusTransition(current, next models.TournamentStatus) bool {
	if current == next {
		return true
	}
	allowedTransitions := map[models.TournamentStatus][]models.TournamentStatus{
		models.StatusDraft:     {models.StatusActive},
		models.StatusActive:    {models.StatusCompleted},
		models.StatusCompleted: {},
	}
	for _, allowedNextStatus := range allowedTransitions[current] {
		if next == allowedNextStatus {
			return true
		}
	}
	return false
}

// handleRepositoryError переводит ошибки репозиториев в ошибки сервисов.
func handleRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrPlayerNameConflict):
		return ErrPlayerNameConflict
	case errors.Is(err, repositories.ErrPlayerInUse):
		return ErrPlayerInUse
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrTournamentNameConflict):
		return ErrTournamentNameConflict
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrSpecialTypeNotFound):
		return ErrSpecialTypeNotFound
	case errors.Is(err, repositories.ErrSpecialTypeNameConflict):
		return ErrSpecialTypeNameConflict
	default:
		return err
	}
}

// --- Заполнение URL ---

func populateAvatarURL(player *models.Player, uploader storage.FileUploader) {
	if player != nil && player.AvatarKey != nil && *player.AvatarKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*player.AvatarKey)
		if url != "" {
			player.AvatarURL = &url
		}
	}
}

func populateSnapshotURL(tournament *models.Tournament, uploader storage.FileUploader) {
	if tournament != nil && tournament.SnapshotKey != nil && *tournament.SnapshotKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*tournament.SnapshotKey)
		if url != "" {
			tournament.SnapshotURL = &url
		}
	}
}

func GetExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && parts[0] == "image" && parts[1] != "" {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("%w: unsupported content type '%s'", ErrValidationFailed, contentType)
	}
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
