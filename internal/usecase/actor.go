package usecase

import (
	"errors"

	"almaaz-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the caller identity supplied by the account service via the auth
// middleware.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// Shared sentinel errors across the booking usecases. ErrValidation and
// ErrStoreUnavailable are markers: the concrete cause stays on the chain.
var (
	ErrValidation       = errors.New("validation failed")
	ErrForbidden        = errors.New("actor lacks rights for this operation")
	ErrStoreUnavailable = errors.New("persistence unavailable, retry later")
)
