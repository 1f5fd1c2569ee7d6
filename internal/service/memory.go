package service

import (
	"context"

	"friends-corner/internal/model"
	"friends-corner/internal/store"
)

type MemoryService struct {
	store *store.Store
}

func NewMemoryService(st *store.Store) *MemoryService { return &MemoryService{store: st} }

func (s *MemoryService) List(ctx context.Context) ([]model.Memory, error) {
	return s.store.ListMemories(ctx)
}

func (s *MemoryService) Get(ctx context.Context, id int) (*model.Memory, error) {
	return s.store.GetMemoryByID(ctx, id)
}

func (s *MemoryService) Create(ctx context.Context, in model.MemoryInput) (*model.Memory, error) {
	if in.Title == "" || in.Description == "" || in.Emoji == "" || in.Gradient == "" {
		return nil, ValidationError("Missing required fields")
	}

	m := &model.Memory{
		Title:        in.Title,
		Description:  in.Description,
		Emoji:        in.Emoji,
		Gradient:     in.Gradient,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.store.CreateMemory(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemoryService) Update(ctx context.Context, id int, patch model.MemoryPatch) (*model.Memory, error) {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Emoji != nil {
		fields["emoji"] = *patch.Emoji
	}
	if patch.Gradient != nil {
		fields["gradient"] = *patch.Gradient
	}
	if patch.DisplayOrder != nil {
		fields["display_order"] = *patch.DisplayOrder
	}
	if len(fields) == 0 {
		return s.store.GetMemoryByID(ctx, id)
	}
	return s.store.UpdateMemory(ctx, id, fields)
}

func (s *MemoryService) Remove(ctx context.Context, id int) error {
	return s.store.RemoveMemory(ctx, id)
}
