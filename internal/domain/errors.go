package domain

import "errors"

// Domain errors are all recoverable by the caller: the client supplies
// corrected input and retries. Persistence failures are never wrapped
// into this taxonomy; they stay opaque internal errors.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDateFormat = errors.New("invalid date format (use YYYY-MM-DD)")
	ErrInvalidDateRange  = errors.New("end date must be after start date")

	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrRentalNotActive      = errors.New("rental is not active")
	ErrRentalNotCancellable = errors.New("only active rentals can be cancelled")
	ErrReturnBeforeStart    = errors.New("return date cannot be before the rental start date")

	ErrPlateTaken      = errors.New("plate already registered")
	ErrEmailTaken      = errors.New("email already registered")
	ErrNationalIDTaken = errors.New("national id already registered")
	ErrUsernameTaken   = errors.New("username already registered")

	ErrVehicleHasActiveRentals  = errors.New("vehicle has active rentals and cannot be deleted")
	ErrCustomerHasActiveRentals = errors.New("customer has active rentals and cannot be deleted")

	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRentalConflict is returned by the rental store when the
	// transactional overlap re-check finds a competing active rental.
	ErrRentalConflict = errors.New("vehicle already booked for those dates")
)

// VehicleUnavailableError carries the human-readable reason the
// availability check produced, so the caller can correct the booking.
type VehicleUnavailableError struct {
	Reason string
}

func (e *VehicleUnavailableError) Error() string {
	return "vehicle unavailable: " + e.Reason
}
