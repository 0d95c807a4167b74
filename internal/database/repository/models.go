package repository

import "time"

// DateLayout is how stay dates are stored.
const DateLayout = "2006-01-02"

// Booking statuses.
const (
	BookingRequested = "requested"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking represents a booking request row.
type Booking struct {
	ID        string
	CheckIn   time.Time
	CheckOut  time.Time
	Adults    int
	Children  int
	Suite     string
	Status    string
	CreatedAt time.Time
}

// Nights returns the length of the stay.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Inquiry represents a contact form message.
type Inquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
