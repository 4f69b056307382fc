package engine

import "errors"

var (
	// ErrNotFound signals a missing item, variant, level or tier. Callers
	// must never treat a missing record as available or free.
	ErrNotFound = errors.New("not found")

	// ErrNoPricingTier signals a distance outside every configured tier.
	// The composer never silently defaults the addition to zero.
	ErrNoPricingTier = errors.New("no pricing tier matches distance")

	// ErrValidation signals a negative or out-of-range numeric input. The
	// engine rejects these outright instead of clamping and continuing.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientStock is raised by the transactional layer when the
	// commit-time availability re-check fails. Advisory conflicts found
	// earlier are data, not errors.
	ErrInsufficientStock = errors.New("insufficient stock")
)
