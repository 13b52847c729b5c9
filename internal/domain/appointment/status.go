package appointment

import "github.com/trimandtone/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// InitialStatus is forced on every new booking regardless of input.
func InitialStatus() Status {
	return StatusPending
}

// KnownStatus rejects values outside the lifecycle vocabulary. Transitions
// between known values are not restricted; the store writes whatever it is
// given.
func KnownStatus(s string) error {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return nil
	}
	return httperr.ErrBusiness("invalid_status")
}
