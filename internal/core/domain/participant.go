package domain

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	ID                      uuid.UUID  `json:"id"`
	FullName                string     `json:"full_name"`
	BirthDate               time.Time  `json:"birth_date"`
	Age                     int        `json:"age"`
	CPF                     string     `json:"cpf"`
	District                string     `json:"district"`
	Church                  string     `json:"church"`
	CreatedByUserID         uuid.UUID  `json:"created_by_user_id"`
	PaymentConfirmed        bool       `json:"payment_confirmed"`
	PaymentConfirmationDate *time.Time `json:"payment_confirmation_date,omitempty"`
	ConfirmedByUserID       *uuid.UUID `json:"confirmed_by_user_id,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
}

// AgeAt returns the whole years elapsed between birthDate and now,
// decremented by one when now's month/day precedes the birthday.
func AgeAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() || (now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}
