package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/repositories"
	"github.com/Dosada05/ladder-system/storage"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxPlayerNameLength = 100

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context, filter PlayerFilter) ([]*models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error)
	SetActive(ctx context.Context, id int, active bool) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
	UploadAvatar(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error)
}

type CreatePlayerInput struct {
	Name   string       `json:"name"`
	Group  models.Group `json:"group"`
	Active *bool        `json:"active"`
}

type UpdatePlayerInput struct {
	Name  *string       `json:"name"`
	Group *models.Group `json:"group"`
}

// PlayerFilter - фильтры списка. Query ищется нечетко по имени.
type PlayerFilter struct {
	Group  *models.Group
	Active *bool
	Query  string
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	logger     *slog.Logger
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, logger *slog.Logger) PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &playerService{playerRepo: playerRepo, uploader: uploader, logger: logger}
}

func validatePlayerName(v *ValidationError, name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		v.Add("name", "must be provided")
	case len(name) > maxPlayerNameLength:
		v.Add("name", fmt.Sprintf("must not be more than %d characters long", maxPlayerNameLength))
	}
	return name
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	v := newValidationError()
	name := validatePlayerName(v, input.Name)
	if !input.Group.Valid() {
		v.Add("group", "must be 'top' or 'bottom'")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	player := &models.Player{Name: name, Group: input.Group, Active: true}
	if input.Active != nil {
		player.Active = *input.Active
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, handleRepositoryError(err)
	}
	return player, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	populateAvatarURL(player, s.uploader)
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context, filter PlayerFilter) ([]*models.Player, error) {
	players, err := s.playerRepo.List(ctx, repositories.ListPlayersFilter{Group: filter.Group, Active: filter.Active})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		players = searchPlayers(players, q)
	}
	for _, p := range players {
		populateAvatarURL(p, s.uploader)
	}
	return players, nil
}

// searchPlayers оставляет игроков, чье имя нечетко совпадает с q, лучшие первыми.
func searchPlayers(players []*models.Player, q string) []*models.Player {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	sort.Stable(ranks)

	out := make([]*models.Player, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, players[r.OriginalIndex])
	}
	return out
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	v := newValidationError()
	if input.Name != nil {
		player.Name = validatePlayerName(v, *input.Name)
	}
	if input.Group != nil {
		if !input.Group.Valid() {
			v.Add("group", "must be 'top' or 'bottom'")
		} else {
			player.Group = *input.Group
		}
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, handleRepositoryError(err)
	}
	populateAvatarURL(player, s.uploader)
	return player, nil
}

func (s *playerService) SetActive(ctx context.Context, id int, active bool) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if player.Active == active {
		populateAvatarURL(player, s.uploader)
		return player, nil
	}
	player.Active = active
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, handleRepositoryError(err)
	}
	populateAvatarURL(player, s.uploader)
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return handleRepositoryError(err)
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return handleRepositoryError(err)
	}
	if player.AvatarKey != nil && s.uploader != nil {
		if err := s.uploader.Delete(ctx, *player.AvatarKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete avatar of removed player", slog.Int("player_id", id), slog.Any("error", err))
		}
	}
	return nil
}

func (s *playerService) UploadAvatar(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrStorageDisabled
	}
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := player.AvatarKey
	key := storage.AvatarKey(id, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.playerRepo.UpdateAvatarKey(ctx, id, &key); err != nil {
		// откатываем загруженный файл, ключ в БД не изменился
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "failed to clean up uploaded avatar", slog.String("key", key), slog.Any("error", delErr))
		}
		return nil, handleRepositoryError(err)
	}
	player.AvatarKey = &key

	if oldKey != nil && *oldKey != "" {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete previous avatar", slog.String("key", *oldKey), slog.Any("error", err))
		}
	}
	populateAvatarURL(player, s.uploader)
	return player, nil
}
