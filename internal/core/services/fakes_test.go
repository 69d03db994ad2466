package services

import (
	"context"
	"time"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/google/uuid"
)

// In-memory repositories for unit tests. They enforce the same uniqueness
// outcomes the Postgres adapters produce from their constraints.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
		if u.CPF == user.CPF {
			return domain.ErrDuplicateCPF
		}
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByCPF(_ context.Context, cpf string) (*domain.User, error) {
	for _, u := range r.users {
		if u.CPF == cpf {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

type fakeParticipantRepo struct {
	participants map[uuid.UUID]*domain.Participant
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[uuid.UUID]*domain.Participant{}}
}

func (r *fakeParticipantRepo) Save(_ context.Context, participant *domain.Participant) error {
	for _, p := range r.participants {
		if p.CPF == participant.CPF {
			return domain.ErrDuplicateCPF
		}
	}
	participant.CreatedAt = time.Now()
	r.participants[participant.ID] = participant
	return nil
}

func (r *fakeParticipantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Participant, error) {
	if p, ok := r.participants[id]; ok {
		return p, nil
	}
	return nil, domain.ErrParticipantNotFound
}

func (r *fakeParticipantRepo) GetAll(_ context.Context) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	for _, p := range r.participants {
		participants = append(participants, p)
	}
	return participants, nil
}

func (r *fakeParticipantRepo) GetByCreator(_ context.Context, userID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	for _, p := range r.participants {
		if p.CreatedByUserID == userID {
			participants = append(participants, p)
		}
	}
	return participants, nil
}

func (r *fakeParticipantRepo) GetByCPF(_ context.Context, cpf string) (*domain.Participant, error) {
	for _, p := range r.participants {
		if p.CPF == cpf {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeParticipantRepo) Update(_ context.Context, participant *domain.Participant) error {
	r.participants[participant.ID] = participant
	return nil
}

func (r *fakeParticipantRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.participants, id)
	return nil
}

func (r *fakeParticipantRepo) SetPaymentStatus(_ context.Context, id uuid.UUID, confirmed bool, confirmationDate *time.Time, confirmedBy *uuid.UUID) (*domain.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	p.PaymentConfirmed = confirmed
	p.PaymentConfirmationDate = confirmationDate
	p.ConfirmedByUserID = confirmedBy
	return p, nil
}
