package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"friends-corner/internal/model"
	"friends-corner/internal/store"
)

// PhotoService owns the photo side of the moderation workflow: intake of
// pending submissions, the approve transition, and hard deletion.
type PhotoService struct {
	store *store.Store
}

func NewPhotoService(st *store.Store) *PhotoService { return &PhotoService{store: st} }

// Upload validates the submission and stores it unapproved. The image is
// embedded as a data URI; there is no separate file storage.
func (s *PhotoService) Upload(ctx context.Context, in model.PhotoUpload) (*model.Photo, error) {
	if len(in.ImageData) == 0 || in.Title == "" || in.Date == "" || in.UploadedBy == "" {
		return nil, ValidationError("Missing required fields")
	}

	imageType := in.ImageType
	if imageType == "" {
		imageType = "application/octet-stream"
	}
	imageURL := fmt.Sprintf("data:%s;base64,%s", imageType, base64.StdEncoding.EncodeToString(in.ImageData))

	photo := &model.Photo{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		UploadedBy:  in.UploadedBy,
		Tags:        ParseTags(in.Tags),
		ImageURL:    imageURL,
	}
	if err := s.store.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *PhotoService) ListApproved(ctx context.Context) ([]model.Photo, error) {
	return s.store.ListPhotos(ctx, store.FilterApproved)
}

func (s *PhotoService) ListPending(ctx context.Context) ([]model.Photo, error) {
	return s.store.ListPhotos(ctx, store.FilterPending)
}

func (s *PhotoService) ListAll(ctx context.Context) ([]model.Photo, error) {
	return s.store.ListPhotos(ctx, store.FilterAll)
}

func (s *PhotoService) Get(ctx context.Context, id int) (*model.Photo, error) {
	return s.store.GetPhotoByID(ctx, id)
}

// Approve moves a submission to its terminal approved state. Repeat calls
// succeed because the admin UI does not guarantee single delivery.
func (s *PhotoService) Approve(ctx context.Context, id int) error {
	return s.store.ApprovePhoto(ctx, id)
}

// Remove deletes the submission permanently, whether pending or approved.
// Rejection is modeled as deletion.
func (s *PhotoService) Remove(ctx context.Context, id int) error {
	return s.store.DeletePhoto(ctx, id)
}
