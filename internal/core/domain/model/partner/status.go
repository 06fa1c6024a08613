package partner

import (
	"fmt"

	"quickcommerce/internal/pkg/errs"
)

// Status represents the availability state of a delivery partner.
//
// State transitions:
//
//	Available <──> Offline     (manual, via Partner.ChangeStatus)
//	Available ───> Busy        (order assignment)
//	Busy      ───> Available   (delivery completed or order cancelled)
//
// Busy is never entered or left manually. It is owned by the order
// lifecycle so a partner's current order always matches its status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available indicates the partner is ready to take an order.
	Available

	// Busy indicates the partner is currently delivering an order.
	Busy

	// Offline indicates the partner is not accepting orders.
	Offline
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Busy:      "Busy",
		Offline:   "Offline",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Busy:      "Busy",
		Offline:   "Offline",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Available, Busy, Offline.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name into a Status value.
// Matching is exact and case-sensitive, and Unknown is not accepted.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}
