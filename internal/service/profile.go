package service

import (
	"context"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

type ProfileService struct {
	users UserRepository
}

func NewProfileService(users UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) List(ctx context.Context, role model.Role, params model.PageParams) (*model.Page[*model.Profile], error) {
	if !role.IsValid() {
		return nil, errdefs.Newf(errdefs.ErrNotFound, "Role with name: %s can't be found.", role)
	}
	return s.users.ListProfiles(ctx, role, params)
}

func (s *ProfileService) Get(ctx context.Context, role model.Role, userId uuid.UUID) (*model.Profile, error) {
	if !role.IsValid() {
		return nil, errdefs.Newf(errdefs.ErrNotFound, "Role with name: %s can't be found.", role)
	}
	profile, err := s.users.GetProfile(ctx, role, userId)
	if err != nil {
		return nil, notFoundAs(err, string(role), userId)
	}
	return profile, nil
}
