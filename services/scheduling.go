// services/scheduling.go - Ground Scheduling Validator
package services

import (
	"errors"
	"fmt"
	"time"

	"shaurya/models"
)

// ErrInvalidInterval is returned when a candidate booking has a start time
// at or after its end time. Zero-length intervals are rejected too.
var ErrInvalidInterval = errors.New("start time must be before end time")

// ConflictError reports one existing allocation that overlaps the candidate
// interval. When several overlap, the one first in id order is reported.
type ConflictError struct {
	AllocationID uint
	GroundID     uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ground %d is already allocated during the requested period (allocation %d)", e.GroundID, e.AllocationID)
}

// CheckGroundConflict decides whether a booking for [start, end) may be
// committed against the given allocations of the same ground. For edits,
// excludeID names the allocation being replaced so it never conflicts
// with itself; pass 0 for new bookings.
//
// Intervals are half-open: an existing booking ending exactly when the
// candidate starts is not a conflict.
func CheckGroundConflict(existing []models.GroundAllocation, start, end time.Time, excludeID uint) error {
	if !start.Before(end) {
		return ErrInvalidInterval
	}

	for _, a := range existing {
		if a.ID == excludeID {
			continue
		}
		if start.Before(a.EndTime) && end.After(a.StartTime) {
			return &ConflictError{AllocationID: a.ID, GroundID: a.GroundID}
		}
	}

	return nil
}
