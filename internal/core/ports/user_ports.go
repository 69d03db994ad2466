package ports

import (
	"context"
	"time"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type CreateUserInput struct {
	FullName  string
	Email     string
	BirthDate time.Time
	CPF       string
	District  string
	Church    string
	Password  string
	Role      string
}

type UpdateUserInput struct {
	FullName  string
	Email     string
	BirthDate time.Time
	CPF       string
	District  string
	Church    string
	Role      string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context, caller Caller) ([]*domain.User, error)
	Update(ctx context.Context, caller Caller, id string, input UpdateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, caller Caller, id string, currentPassword, newPassword string) error
}
