package domain

import "errors"

var (
	ErrUnauthenticated     = errors.New("token not provided")
	ErrInvalidToken        = errors.New("invalid token")
	ErrForbidden           = errors.New("access denied")
	ErrUserNotFound        = errors.New("user not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateCPF        = errors.New("cpf already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidID           = errors.New("invalid id")
	ErrInternal            = errors.New("internal server error")
)
