package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/eventojovem/api/internal/core/ports"
	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, full_name, email, cpf, birth_date, district, church, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.FullName, user.Email, user.CPF, user.BirthDate,
		user.District, user.Church, user.Role, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE cpf = $1`, cpf)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, full_name, email, cpf, birth_date, district, church, role, password_hash, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		if err := scanUser(rows.Scan, user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, cpf = $4, birth_date = $5, district = $6, church = $7, role = $8
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FullName, user.Email, user.CPF, user.BirthDate,
		user.District, user.Church, user.Role,
	)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	return err
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT id, full_name, email, cpf, birth_date, district, church, role, password_hash, created_at
		FROM users ` + where
	user := &domain.User{}
	err := scanUser(r.db.QueryRowContext(ctx, query, arg).Scan, user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func scanUser(scan func(...any) error, user *domain.User) error {
	return scan(
		&user.ID, &user.FullName, &user.Email, &user.CPF, &user.BirthDate,
		&user.District, &user.Church, &user.Role, &user.PasswordHash, &user.CreatedAt,
	)
}
