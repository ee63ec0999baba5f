package models

import (
	"fmt"
)

// Booking field constraints.
const (
	BookingNameMaxLength    = 255
	BookingCommentMaxLength = 1000
	BookingGuestNumberMin   = 1
)

// Booking represents a table booking. Name is the owning user's username for
// bookings created through the API; it is nullable at the storage level.
// Date and Comment are optional.
type Booking struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"name" db:"name"`
	GuestNumber int     `json:"guest_number" db:"guest_number"`
	Date        *Date   `json:"date" db:"date"`
	Comment     *string `json:"comment" db:"comment"`
}

// TableName returns the table name for the Booking model.
func (Booking) TableName() string {
	return "bookings"
}

// NewBooking creates a new Booking owned by the given user.
func NewBooking(name string, guestNumber int, date *Date, comment *string) *Booking {
	return &Booking{
		Name:        &name,
		GuestNumber: guestNumber,
		Date:        date,
		Comment:     comment,
	}
}

// ValidateGuestNumber checks the minimum party size.
func ValidateGuestNumber(n int) error {
	if n < BookingGuestNumberMin {
		return fmt.Errorf("guest_number must be at least %d", BookingGuestNumberMin)
	}
	return nil
}

// ValidateBookingDate rejects dates earlier than today. A booking without a
// date is valid; callers skip this check when no date is supplied.
func ValidateBookingDate(d Date, today Date) error {
	if d.Before(today) {
		return fmt.Errorf("booking date cannot be in the past")
	}
	return nil
}

// ValidateComment checks the comment length bound.
func ValidateComment(comment string) error {
	if len(comment) > BookingCommentMaxLength {
		return fmt.Errorf("comment must be at most %d characters", BookingCommentMaxLength)
	}
	return nil
}
