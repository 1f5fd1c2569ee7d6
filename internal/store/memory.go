package store

import (
	"context"

	"friends-corner/internal/model"
)

// ListMemories returns active memories in display order, newest first within
// the same slot.
func (s *Store) ListMemories(ctx context.Context) ([]model.Memory, error) {
	var memories []model.Memory
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&memories).Error
	return memories, mapError("list memories", err)
}

func (s *Store) CreateMemory(ctx context.Context, m *model.Memory) error {
	m.Active = true
	err := s.db.WithContext(ctx).Create(m).Error
	return mapError("create memory", err)
}

func (s *Store) UpdateMemory(ctx context.Context, id int, fields map[string]interface{}) (*model.Memory, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Memory{}).
		Where("id = ? AND active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, mapError("update memory", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetMemoryByID(ctx, id)
}

// RemoveMemory is a soft delete, same strategy as members.
func (s *Store) RemoveMemory(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).
		Model(&model.Memory{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return mapError("remove memory", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetMemoryByID(ctx context.Context, id int) (*model.Memory, error) {
	var m model.Memory
	err := s.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, mapError("get memory", err)
	}
	return &m, nil
}
