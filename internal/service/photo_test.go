package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"friends-corner/internal/model"
	"friends-corner/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPhotoUpload() model.PhotoUpload {
	return model.PhotoUpload{
		Title:      "Beach trip",
		Date:       "2026-07-04",
		UploadedBy: "Kim",
		Tags:       "Beach Day, Funny",
		ImageData:  []byte{0xff, 0xd8, 0xff},
		ImageType:  "image/jpeg",
	}
}

func TestPhotoUploadStartsPending(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewPhotoService(st)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, validPhotoUpload())
	require.NoError(t, err)
	assert.NotZero(t, photo.ID)
	assert.False(t, photo.Approved)
	assert.True(t, strings.HasPrefix(photo.ImageURL, "data:image/jpeg;base64,"))
	assert.Equal(t, []string{"Beach Day", "Funny"}, []string(photo.Tags))

	// not visible publicly until approved
	approved, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, photo.ID, pending[0].ID)
}

func TestPhotoUploadMissingFields(t *testing.T) {
	st, db := newTestStore(t)
	svc := NewPhotoService(st)
	ctx := context.Background()

	cases := []func(*model.PhotoUpload){
		func(u *model.PhotoUpload) { u.Title = "" },
		func(u *model.PhotoUpload) { u.Date = "" },
		func(u *model.PhotoUpload) { u.UploadedBy = "" },
		func(u *model.PhotoUpload) { u.ImageData = nil },
	}
	for _, mutate := range cases {
		upload := validPhotoUpload()
		mutate(&upload)
		_, err := svc.Upload(ctx, upload)
		var ve ValidationError
		assert.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	}

	// no partial rows reached the store
	assert.EqualValues(t, 0, countRows(t, db, &model.Photo{}))
}

func TestPhotoApproveIdempotent(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewPhotoService(st)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, validPhotoUpload())
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, photo.ID))
	require.NoError(t, svc.Approve(ctx, photo.ID))

	got, err := svc.Get(ctx, photo.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	approved, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}

func TestPhotoApproveMissing(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewPhotoService(st)

	err := svc.Approve(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPhotoRemoveIsHardDelete(t *testing.T) {
	st, db := newTestStore(t)
	svc := NewPhotoService(st)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, validPhotoUpload())
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, photo.ID))

	require.NoError(t, svc.Remove(ctx, photo.ID))

	_, err = svc.Get(ctx, photo.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &model.Photo{}))

	// removing again reports not found, not a process failure
	assert.ErrorIs(t, svc.Remove(ctx, photo.ID), store.ErrNotFound)
}
