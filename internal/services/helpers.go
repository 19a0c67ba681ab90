package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
)

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicate) {
		return fmt.Errorf("%w: %s (%v)", ErrDuplicate, operation, err)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrEmptyUpdate) {
		return fmt.Errorf("%w: no fields provided for update", ErrValidation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// validateDateOrder rejects an interview scheduled before the application
// deadline. Only enforced when both dates are present.
func validateDateOrder(deadline, interview *time.Time) error {
	if deadline == nil || interview == nil {
		return nil
	}
	if interview.Before(*deadline) {
		return fmt.Errorf("%w: interview date must not precede deadline date", ErrValidation)
	}
	return nil
}

// validateSalaryRange rejects a minimum salary above the maximum. Only
// enforced when both bounds are present.
func validateSalaryRange(salaryMin, salaryMax *float64) error {
	if salaryMin == nil || salaryMax == nil {
		return nil
	}
	if *salaryMin > *salaryMax {
		return fmt.Errorf("%w: salaryMin must not exceed salaryMax", ErrValidation)
	}
	return nil
}

// canAccessAnyOwner is the capability behind the admin bypass on
// application listings. Computed once per request from the caller's role.
func canAccessAnyOwner(role models.Role) bool {
	return role.CanAccessAnyOwner()
}
