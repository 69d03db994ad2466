package services

import (
	"context"
	"fmt"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/eventojovem/api/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type userService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) ports.UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	existing, err = s.repo.GetByCPF(ctx, input.CPF)
	if err != nil {
		return nil, fmt.Errorf("failed to check cpf: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCPF
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     input.FullName,
		Email:        input.Email,
		BirthDate:    input.BirthDate,
		CPF:          input.CPF,
		District:     input.District,
		Church:       input.Church,
		Role:         input.Role,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, caller ports.Caller) ([]*domain.User, error) {
	if caller.Role != domain.RoleAdministrator {
		return nil, domain.ErrForbidden
	}

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, caller ports.Caller, id string, input ports.UpdateUserInput) (*domain.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if caller.Role != domain.RoleAdministrator && caller.ID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Email != user.Email {
		existing, err := s.repo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateEmail
		}
	}

	if input.CPF != user.CPF {
		existing, err := s.repo.GetByCPF(ctx, input.CPF)
		if err != nil {
			return nil, fmt.Errorf("failed to check cpf: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateCPF
		}
	}

	user.FullName = input.FullName
	user.Email = input.Email
	user.BirthDate = input.BirthDate
	user.CPF = input.CPF
	user.District = input.District
	user.Church = input.Church
	user.Role = input.Role

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, caller ports.Caller, id string, currentPassword, newPassword string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	// Only the account owner may change their password.
	if caller.ID != userID {
		return domain.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash))
}
