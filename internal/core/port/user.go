package port

import (
	"context"

	"taskapp/internal/core/domain"
)

type UserRepository interface {
	// AddUser inserts or overwrites by id. There is no duplicate-email check.
	AddUser(ctx context.Context, user domain.User)
	GetUser(ctx context.Context, id string) (domain.User, error)
	// FindUserByEmail scans case-insensitively and returns the first match
	// in insertion order.
	FindUserByEmail(ctx context.Context, email string) (domain.User, bool)
}

type UserService interface {
	Create(ctx context.Context, id, email string) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	Deactivate(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, bool)
	EnsureExists(ctx context.Context, email string) domain.User
	SafeGet(ctx context.Context, id string) (domain.User, bool)
}
