package postgres

import (
	"errors"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/lib/pq"
)

// translateUniqueViolation maps a Postgres unique_violation to the matching
// domain error, so a concurrent insert racing past the service-level
// existence check still surfaces as a duplicate instead of a 500.
func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "users_email_key":
			return domain.ErrDuplicateEmail
		case "users_cpf_key", "participants_cpf_key":
			return domain.ErrDuplicateCPF
		}
	}
	return err
}
