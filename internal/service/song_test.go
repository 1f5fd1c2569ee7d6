package service

import (
	"context"
	"errors"
	"testing"

	"friends-corner/internal/model"
	"friends-corner/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSongUpload() model.SongUpload {
	return model.SongUpload{
		Title:      "Never Gonna Give You Up",
		Artist:     "Rick Astley",
		YouTubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		AddedBy:    "Kim",
		Tags:       "80s, Classic",
		Mood:       "Happy",
	}
}

func TestSongUploadDerivesVideoFields(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewSongService(st)
	ctx := context.Background()

	song, err := svc.Upload(ctx, validSongUpload())
	require.NoError(t, err)
	assert.False(t, song.Approved)
	assert.Equal(t, "dQw4w9WgXcQ", song.YouTubeID)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", song.ThumbnailURL)
	assert.Equal(t, []string{"80s", "Classic"}, []string(song.Tags))
}

func TestSongUploadInvalidURL(t *testing.T) {
	st, db := newTestStore(t)
	svc := NewSongService(st)

	upload := validSongUpload()
	upload.YouTubeURL = "not-a-url"
	_, err := svc.Upload(context.Background(), upload)

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Invalid YouTube URL", ve.Error())
	assert.EqualValues(t, 0, countRows(t, db, &model.Song{}))
}

func TestSongUploadMissingFields(t *testing.T) {
	st, db := newTestStore(t)
	svc := NewSongService(st)
	ctx := context.Background()

	cases := []func(*model.SongUpload){
		func(u *model.SongUpload) { u.Title = "" },
		func(u *model.SongUpload) { u.Artist = "" },
		func(u *model.SongUpload) { u.YouTubeURL = "" },
		func(u *model.SongUpload) { u.AddedBy = "" },
	}
	for _, mutate := range cases {
		upload := validSongUpload()
		mutate(&upload)
		_, err := svc.Upload(ctx, upload)
		var ve ValidationError
		assert.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	}
	assert.EqualValues(t, 0, countRows(t, db, &model.Song{}))
}

func TestSongApproveAndRemove(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewSongService(st)
	ctx := context.Background()

	song, err := svc.Upload(ctx, validSongUpload())
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, song.ID))
	require.NoError(t, svc.Approve(ctx, song.ID))

	approved, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	require.NoError(t, svc.Remove(ctx, song.ID))
	_, err = svc.Get(ctx, song.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
