package store

import (
	"context"

	"friends-corner/internal/model"
)

func (s *Store) ListSongs(ctx context.Context, f Filter) ([]model.Song, error) {
	var songs []model.Song
	q := s.applyFilter(s.db.WithContext(ctx), f)
	err := q.Order("created_at DESC").Find(&songs).Error
	return songs, mapError("list songs", err)
}

func (s *Store) CreateSong(ctx context.Context, song *model.Song) error {
	song.Approved = false
	err := s.db.WithContext(ctx).Create(song).Error
	return mapError("create song", err)
}

func (s *Store) ApproveSong(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).
		Model(&model.Song{}).
		Where("id = ?", id).
		Update("approved", true)
	if res.Error != nil {
		return mapError("approve song", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteSong(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Song{}, id)
	if res.Error != nil {
		return mapError("delete song", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetSongByID(ctx context.Context, id int) (*model.Song, error) {
	var song model.Song
	err := s.db.WithContext(ctx).First(&song, id).Error
	if err != nil {
		return nil, mapError("get song", err)
	}
	return &song, nil
}
