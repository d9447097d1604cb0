// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity (shop, token, owner) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the shop code is already used by another shop.
	ErrConflict = errors.New("conflict")

	// ErrAlreadyExists indicates a unique key violation (ledger session key, owner username).
	ErrAlreadyExists = errors.New("already exists")

	// ErrSequenceTaken indicates another token already holds the allocated sequence number.
	ErrSequenceTaken = errors.New("sequence taken")

	// ErrPrecondition indicates the operation is not allowed in the current queue state.
	ErrPrecondition = errors.New("precondition failed")

	// ErrTransient indicates a timeout or connection failure talking to the store.
	ErrTransient = errors.New("transient store error")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation prefixes rejected caller input.
	ErrValidation = errors.New("validation")
)

// Reason explains why a precondition failed.
type Reason string

const (
	ReasonInactive     Reason = "inactive"
	ReasonOwnerClosed  Reason = "owner_closed"
	ReasonUnconfigured Reason = "unconfigured"
)

// PreconditionError carries the reason category of a refused operation.
type PreconditionError struct {
	Reason Reason
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Reason)
}

// Is makes every PreconditionError match ErrPrecondition.
func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

// Precondition builds a PreconditionError for the given reason.
func Precondition(r Reason) error { return &PreconditionError{Reason: r} }

// ReasonOf extracts the precondition reason from err, if any.
func ReasonOf(err error) (Reason, bool) {
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return "", false
}
