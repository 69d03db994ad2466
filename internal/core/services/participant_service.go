package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/eventojovem/api/internal/core/ports"
	"github.com/google/uuid"
)

type participantService struct {
	repo ports.ParticipantRepository
}

func NewParticipantService(repo ports.ParticipantRepository) ports.ParticipantService {
	return &participantService{
		repo: repo,
	}
}

// List returns all participants for administrators and only self-created
// participants for district directors. Any other role is denied.
func (s *participantService) List(ctx context.Context, caller ports.Caller) ([]*domain.Participant, error) {
	switch caller.Role {
	case domain.RoleAdministrator:
		participants, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list participants: %w", err)
		}
		return participants, nil
	case domain.RoleDistrictDirector:
		participants, err := s.repo.GetByCreator(ctx, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list participants: %w", err)
		}
		return participants, nil
	default:
		return nil, domain.ErrForbidden
	}
}

func (s *participantService) Get(ctx context.Context, id string) (*domain.Participant, error) {
	participantID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	return s.repo.GetByID(ctx, participantID)
}

func (s *participantService) Create(ctx context.Context, caller ports.Caller, input ports.CreateParticipantInput) (*domain.Participant, error) {
	existing, err := s.repo.GetByCPF(ctx, input.CPF)
	if err != nil {
		return nil, fmt.Errorf("failed to check cpf: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCPF
	}

	participant := &domain.Participant{
		ID:              uuid.New(),
		FullName:        input.FullName,
		BirthDate:       input.BirthDate,
		Age:             domain.AgeAt(input.BirthDate, time.Now()),
		CPF:             input.CPF,
		District:        input.District,
		Church:          input.Church,
		CreatedByUserID: caller.ID,
	}

	if err := s.repo.Save(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

func (s *participantService) Update(ctx context.Context, id string, input ports.UpdateParticipantInput) (*domain.Participant, error) {
	participantID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	participant, err := s.repo.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	if input.CPF != participant.CPF {
		existing, err := s.repo.GetByCPF(ctx, input.CPF)
		if err != nil {
			return nil, fmt.Errorf("failed to check cpf: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateCPF
		}
	}

	participant.FullName = input.FullName
	participant.BirthDate = input.BirthDate
	participant.Age = domain.AgeAt(input.BirthDate, time.Now())
	participant.CPF = input.CPF
	participant.District = input.District
	participant.Church = input.Church

	if err := s.repo.Update(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

func (s *participantService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if caller.Role != domain.RoleAdministrator {
		return domain.ErrForbidden
	}

	participantID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	if _, err := s.repo.GetByID(ctx, participantID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, participantID)
}

// ConfirmPayment toggles the payment flag. Confirming stamps the current
// time and the caller; cancelling clears both fields, so the timestamp and
// the confirming user are never set independently.
func (s *participantService) ConfirmPayment(ctx context.Context, caller ports.Caller, id string, confirm bool) (*domain.Participant, error) {
	participantID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var confirmationDate *time.Time
	var confirmedBy *uuid.UUID
	if confirm {
		now := time.Now()
		confirmationDate = &now
		confirmedBy = &caller.ID
	}

	return s.repo.SetPaymentStatus(ctx, participantID, confirm, confirmationDate, confirmedBy)
}
