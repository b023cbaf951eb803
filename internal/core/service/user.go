package service

import (
	"context"
	"errors"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

// Create validates the email shape before storing. EnsureExists is the
// unvalidated counterpart.
func (s *UserService) Create(ctx context.Context, id, email string) (domain.User, error) {
	if err := util.ValidateEmail(email); err != nil {
		return domain.User{}, err
	}

	user := domain.NewUser(id, email)
	s.repo.AddUser(ctx, user)

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

// Deactivate replaces the stored value with an inactive copy under the
// same id. Users are never removed.
func (s *UserService) Deactivate(ctx context.Context, id string) (domain.User, error) {
	user, err := s.repo.GetUser(ctx, id)

	if err != nil {
		return domain.User{}, err
	}

	updated := user.Deactivated()
	s.repo.AddUser(ctx, updated)

	return updated, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (domain.User, bool) {
	return s.repo.FindUserByEmail(ctx, email)
}

// EnsureExists returns the user with this email, creating one if needed.
// The created user's id is the raw email string and no shape check runs,
// so malformed emails get stored here.
func (s *UserService) EnsureExists(ctx context.Context, email string) domain.User {
	if existing, ok := s.repo.FindUserByEmail(ctx, email); ok {
		return existing
	}

	user := domain.NewUser(email, email)
	s.repo.AddUser(ctx, user)

	return user
}

// SafeGet is the forgiving lookup: a missing user comes back as ok=false
// instead of an error.
func (s *UserService) SafeGet(ctx context.Context, id string) (domain.User, bool) {
	user, err := s.repo.GetUser(ctx, id)

	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, false
	}

	return user, true
}
