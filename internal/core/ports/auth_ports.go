package ports

import (
	"context"

	"github.com/google/uuid"
)

// Caller is the identity decoded from a verified session token.
type Caller struct {
	ID   uuid.UUID
	Role string
}

type LoginResult struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Church   string    `json:"church"`
	District string    `json:"district"`
	Token    string    `json:"token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(token string) (*Caller, error)
}
