package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/eventojovem/api/internal/core/ports"
	"github.com/google/uuid"
)

const participantColumns = `
	id, full_name, birth_date, age, cpf, district, church, created_by_user_id,
	payment_confirmed, payment_confirmation_date, confirmed_by_user_id, created_at`

type participantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) ports.ParticipantRepository {
	return &participantRepository{
		db: db,
	}
}

func (r *participantRepository) Save(ctx context.Context, participant *domain.Participant) error {
	query := `
		INSERT INTO participants (id, full_name, birth_date, age, cpf, district, church, created_by_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		participant.ID, participant.FullName, participant.BirthDate, participant.Age,
		participant.CPF, participant.District, participant.Church, participant.CreatedByUserID,
	).Scan(&participant.CreatedAt)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	query := `SELECT` + participantColumns + ` FROM participants WHERE id = $1`

	participant := &domain.Participant{}
	err := scanParticipant(r.db.QueryRowContext(ctx, query, id).Scan, participant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

func (r *participantRepository) GetAll(ctx context.Context) ([]*domain.Participant, error) {
	query := `SELECT` + participantColumns + ` FROM participants ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (r *participantRepository) GetByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Participant, error) {
	query := `SELECT` + participantColumns + ` FROM participants WHERE created_by_user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants by creator: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (r *participantRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Participant, error) {
	query := `SELECT` + participantColumns + ` FROM participants WHERE cpf = $1`

	participant := &domain.Participant{}
	err := scanParticipant(r.db.QueryRowContext(ctx, query, cpf).Scan, participant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant by cpf: %w", err)
	}
	return participant, nil
}

func (r *participantRepository) Update(ctx context.Context, participant *domain.Participant) error {
	query := `
		UPDATE participants
		SET full_name = $2, birth_date = $3, age = $4, cpf = $5, district = $6, church = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		participant.ID, participant.FullName, participant.BirthDate, participant.Age,
		participant.CPF, participant.District, participant.Church,
	)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *participantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return nil
}

func (r *participantRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, confirmed bool, confirmationDate *time.Time, confirmedBy *uuid.UUID) (*domain.Participant, error) {
	query := `
		UPDATE participants
		SET payment_confirmed = $2, payment_confirmation_date = $3, confirmed_by_user_id = $4
		WHERE id = $1
		RETURNING` + participantColumns

	participant := &domain.Participant{}
	err := scanParticipant(r.db.QueryRowContext(ctx, query, id, confirmed, confirmationDate, confirmedBy).Scan, participant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return participant, nil
}

func scanParticipants(rows *sql.Rows) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	for rows.Next() {
		participant := &domain.Participant{}
		if err := scanParticipant(rows.Scan, participant); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}
	return participants, nil
}

func scanParticipant(scan func(...any) error, p *domain.Participant) error {
	return scan(
		&p.ID, &p.FullName, &p.BirthDate, &p.Age, &p.CPF, &p.District, &p.Church,
		&p.CreatedByUserID, &p.PaymentConfirmed, &p.PaymentConfirmationDate,
		&p.ConfirmedByUserID, &p.CreatedAt,
	)
}
