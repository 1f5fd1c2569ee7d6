package service

import (
	"context"
	"strings"

	"friends-corner/internal/model"
	"friends-corner/internal/store"
)

type MemberService struct {
	store *store.Store
}

func NewMemberService(st *store.Store) *MemberService { return &MemberService{store: st} }

func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	return s.store.ListMembers(ctx)
}

func (s *MemberService) Get(ctx context.Context, id int) (*model.Member, error) {
	return s.store.GetMemberByID(ctx, id)
}

// Create adds a member. Name is the only required field; the role label
// defaults to "Member".
func (s *MemberService) Create(ctx context.Context, in model.MemberInput) (*model.Member, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ValidationError("Name is required")
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = "Member"
	}

	m := &model.Member{
		Name:      name,
		Nickname:  strings.TrimSpace(in.Nickname),
		Role:      role,
		Bio:       strings.TrimSpace(in.Bio),
		AvatarURL: strings.TrimSpace(in.AvatarURL),
	}
	if err := s.store.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update overwrites only the fields present in the patch; everything else
// keeps its prior value.
func (s *MemberService) Update(ctx context.Context, id int, patch model.MemberPatch) (*model.Member, error) {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ValidationError("Name is required")
		}
		fields["name"] = name
	}
	if patch.Nickname != nil {
		fields["nickname"] = strings.TrimSpace(*patch.Nickname)
	}
	if patch.Role != nil {
		fields["role"] = strings.TrimSpace(*patch.Role)
	}
	if patch.Bio != nil {
		fields["bio"] = strings.TrimSpace(*patch.Bio)
	}
	if patch.AvatarURL != nil {
		fields["avatar_url"] = strings.TrimSpace(*patch.AvatarURL)
	}
	if len(fields) == 0 {
		return s.store.GetMemberByID(ctx, id)
	}
	return s.store.UpdateMember(ctx, id, fields)
}

// Remove deactivates the member. The row stays in storage.
func (s *MemberService) Remove(ctx context.Context, id int) error {
	return s.store.RemoveMember(ctx, id)
}
