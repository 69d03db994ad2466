package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdministrator    = "administrator"
	RoleDistrictDirector = "district-director"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`
	BirthDate    time.Time `json:"birth_date"`
	District     string    `json:"district"`
	Church       string    `json:"church"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
