package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// AvatarKey builds a unique object key for a player picture. ext may be
// given with or without the leading dot.
func AvatarKey(playerID int, ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	name := uuid.NewString()
	if ext != "" {
		name += "." + ext
	}
	return path.Join("avatars", fmt.Sprintf("player_%d", playerID), name)
}

// SnapshotKey builds the object key of a finalized tournament export.
func SnapshotKey(tournamentID int) string {
	return path.Join("snapshots", fmt.Sprintf("tournament_%d", tournamentID), uuid.NewString()+".json")
}
