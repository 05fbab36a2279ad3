package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/ladder-system/models"
)

func TestPlayerService_CreateAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := NewPlayerService(newFakePlayerRepo(), nil, nil)

	_, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "  ", Group: "middle"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "group")

	_, err = svc.CreatePlayer(ctx, CreatePlayerInput{Name: strings.Repeat("x", 101), Group: models.GroupTop})
	assert.ErrorIs(t, err, ErrValidationFailed)

	p, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: " Jan ", Group: models.GroupBottom})
	require.NoError(t, err)
	assert.Equal(t, "Jan", p.Name)
	assert.True(t, p.Active, "players are active by default")

	_, err = svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Jan", Group: models.GroupTop})
	assert.ErrorIs(t, err, ErrPlayerNameConflict)
}

func TestPlayerService_ListFuzzy(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlayerRepo()
	svc := NewPlayerService(repo, nil, nil)
	for _, name := range []string{"Marieke de Vries", "Mark Jansen", "Pieter Bakker", "Marco"} {
		_, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: name, Group: models.GroupTop})
		require.NoError(t, err)
	}

	found, err := svc.ListPlayers(ctx, PlayerFilter{Query: "mar"})
	require.NoError(t, err)
	names := make([]string, 0, len(found))
	for _, p := range found {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Marieke de Vries", "Mark Jansen", "Marco"}, names)
	assert.Equal(t, "Marco", names[0], "closest match first")

	found, err = svc.ListPlayers(ctx, PlayerFilter{Query: "bakr"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Pieter Bakker", found[0].Name)

	all, err := svc.ListPlayers(ctx, PlayerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestPlayerService_UpdateAndActive(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlayerRepo()
	svc := NewPlayerService(repo, nil, nil)
	p, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Eva", Group: models.GroupTop})
	require.NoError(t, err)

	bottom := models.GroupBottom
	updated, err := svc.UpdatePlayer(ctx, p.ID, UpdatePlayerInput{Group: &bottom})
	require.NoError(t, err)
	assert.Equal(t, models.GroupBottom, updated.Group)

	bad := models.Group("left")
	_, err = svc.UpdatePlayer(ctx, p.ID, UpdatePlayerInput{Group: &bad})
	assert.ErrorIs(t, err, ErrValidationFailed)

	inactive, err := svc.SetActive(ctx, p.ID, false)
	require.NoError(t, err)
	assert.False(t, inactive.Active)
	assert.False(t, repo.get(p.ID).Active)

	_, err = svc.SetActive(ctx, 999, true)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerService_UploadAvatar(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlayerRepo()
	uploader := newMemoryUploader()
	svc := NewPlayerService(repo, uploader, nil)
	p, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Tim", Group: models.GroupTop})
	require.NoError(t, err)

	_, err = svc.UploadAvatar(ctx, p.ID, strings.NewReader("%PDF"), "application/pdf")
	assert.ErrorIs(t, err, ErrValidationFailed)

	first, err := svc.UploadAvatar(ctx, p.ID, strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	require.NotNil(t, first.AvatarURL)
	assert.True(t, strings.HasSuffix(*first.AvatarKey, ".png"))
	assert.Equal(t, "https://cdn.test/"+*first.AvatarKey, *first.AvatarURL)
	assert.Equal(t, []byte("png-bytes"), uploader.objects[*first.AvatarKey])

	second, err := svc.UploadAvatar(ctx, p.ID, strings.NewReader("jpg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.NotContains(t, uploader.objects, *first.AvatarKey, "previous avatar removed")
	assert.Contains(t, uploader.objects, *second.AvatarKey)

	disabled := NewPlayerService(repo, nil, nil)
	_, err = disabled.UploadAvatar(ctx, p.ID, strings.NewReader("x"), "image/png")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestPlayerService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlayerRepo()
	uploader := newMemoryUploader()
	svc := NewPlayerService(repo, uploader, nil)
	p, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Bo", Group: models.GroupTop})
	require.NoError(t, err)
	withAvatar, err := svc.UploadAvatar(ctx, p.ID, strings.NewReader("img"), "image/webp")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlayer(ctx, p.ID))
	assert.Contains(t, uploader.deleted, *withAvatar.AvatarKey)
	assert.ErrorIs(t, svc.DeletePlayer(ctx, p.ID), ErrPlayerNotFound)
}
