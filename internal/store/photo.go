package store

import (
	"context"

	"friends-corner/internal/model"
)

func (s *Store) ListPhotos(ctx context.Context, f Filter) ([]model.Photo, error) {
	var photos []model.Photo
	q := s.applyFilter(s.db.WithContext(ctx), f)
	err := q.Order("created_at DESC").Find(&photos).Error
	return photos, mapError("list photos", err)
}

// CreatePhoto stores a new submission. Photos always start unapproved.
func (s *Store) CreatePhoto(ctx context.Context, p *model.Photo) error {
	p.Approved = false
	err := s.db.WithContext(ctx).Create(p).Error
	return mapError("create photo", err)
}

// ApprovePhoto flips the approved flag. Approving an already approved photo
// is a no-op success; a missing id reports ErrNotFound.
func (s *Store) ApprovePhoto(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", id).
		Update("approved", true)
	if res.Error != nil {
		return mapError("approve photo", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePhoto removes the row permanently. Unlike members and memories there
// is no soft delete for submissions.
func (s *Store) DeletePhoto(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Photo{}, id)
	if res.Error != nil {
		return mapError("delete photo", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPhotoByID returns the photo regardless of approval state.
func (s *Store) GetPhotoByID(ctx context.Context, id int) (*model.Photo, error) {
	var p model.Photo
	err := s.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, mapError("get photo", err)
	}
	return &p, nil
}
