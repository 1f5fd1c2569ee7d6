package store

import (
	"context"
	"time"

	"friends-corner/internal/model"
)

// ListMembers returns active members ordered by name.
func (s *Store) ListMembers(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&members).Error
	return members, mapError("list members", err)
}

func (s *Store) CreateMember(ctx context.Context, m *model.Member) error {
	m.Active = true
	if m.JoinedDate == "" {
		m.JoinedDate = time.Now().Format("2006-01-02")
	}
	err := s.db.WithContext(ctx).Create(m).Error
	return mapError("create member", err)
}

// UpdateMember overwrites only the supplied columns. It fails with
// ErrNotFound when no active member matches id.
func (s *Store) UpdateMember(ctx context.Context, id int, fields map[string]interface{}) (*model.Member, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ? AND active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, mapError("update member", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetMemberByID(ctx, id)
}

// RemoveMember is a soft delete: the row stays in storage with active=false.
func (s *Store) RemoveMember(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return mapError("remove member", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetMemberByID(ctx context.Context, id int) (*model.Member, error) {
	var m model.Member
	err := s.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, mapError("get member", err)
	}
	return &m, nil
}
