package ports

import (
	"context"
	"time"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/google/uuid"
)

type ParticipantRepository interface {
	Save(ctx context.Context, participant *domain.Participant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	GetAll(ctx context.Context) ([]*domain.Participant, error)
	GetByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Participant, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Participant, error)
	Update(ctx context.Context, participant *domain.Participant) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetPaymentStatus(ctx context.Context, id uuid.UUID, confirmed bool, confirmationDate *time.Time, confirmedBy *uuid.UUID) (*domain.Participant, error)
}

type CreateParticipantInput struct {
	FullName  string
	BirthDate time.Time
	CPF       string
	District  string
	Church    string
}

type UpdateParticipantInput struct {
	FullName  string
	BirthDate time.Time
	CPF       string
	District  string
	Church    string
}

type ParticipantService interface {
	List(ctx context.Context, caller Caller) ([]*domain.Participant, error)
	Get(ctx context.Context, id string) (*domain.Participant, error)
	Create(ctx context.Context, caller Caller, input CreateParticipantInput) (*domain.Participant, error)
	Update(ctx context.Context, id string, input UpdateParticipantInput) (*domain.Participant, error)
	Delete(ctx context.Context, caller Caller, id string) error
	ConfirmPayment(ctx context.Context, caller Caller, id string, confirm bool) (*domain.Participant, error)
}
