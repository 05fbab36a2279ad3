package storage

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarKey(t *testing.T) {
	key := AvatarKey(12, ".PNG")
	assert.True(t, strings.HasPrefix(key, "avatars/player_12/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.NotEqual(t, key, AvatarKey(12, "png"))

	assert.False(t, strings.Contains(AvatarKey(3, ""), "."))
}

func TestSnapshotKey(t *testing.T) {
	key := SnapshotKey(5)
	assert.True(t, strings.HasPrefix(key, "snapshots/tournament_5/"), key)
	assert.True(t, strings.HasSuffix(key, ".json"), key)
}

func TestPublicURL(t *testing.T) {
	base, err := url.Parse("https://cdn.example.com/ladder/")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/ladder/avatars/a.png", publicURL(base, "avatars/a.png"))
	assert.Equal(t, "https://cdn.example.com/ladder/avatars/a.png", publicURL(base, "/avatars/a.png"))
	assert.Empty(t, publicURL(base, ""))
	assert.Empty(t, publicURL(nil, "x"))
}
