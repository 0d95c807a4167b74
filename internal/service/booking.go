package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/viennasuites/internal/database"
	"github.com/jask/viennasuites/internal/database/repository"
)

// Guest limits offered by the booking form.
const (
	MinAdults   = 1
	MaxAdults   = 4
	MaxChildren = 3
)

// BookingRequest is the raw booking form.
type BookingRequest struct {
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
	Suite    string
}

// BookingService validates and records booking requests.
type BookingService struct {
	Bookings *repository.BookingRepo
	// Suites lists bookable suite names. Empty means any suite is accepted.
	Suites []string
	// Delay simulates the reservation backend's latency.
	Delay time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Submit validates req, waits out the configured delay and stores the
// request.
func (s *BookingService) Submit(ctx context.Context, req BookingRequest) (repository.Booking, error) {
	b, err := s.Validate(req)
	if err != nil {
		return repository.Booking{}, err
	}
	if err := wait(ctx, s.Delay); err != nil {
		return repository.Booking{}, fmt.Errorf("booking: %w", err)
	}
	if s.Bookings == nil {
		return repository.Booking{}, fmt.Errorf("booking: store not configured")
	}
	b.ID = uuid.NewString()
	b.Status = repository.BookingRequested
	b.CreatedAt = database.Now()
	if err := s.Bookings.Insert(ctx, b); err != nil {
		return repository.Booking{}, fmt.Errorf("booking: save: %w", err)
	}
	return b, nil
}

// Validate checks the form without saving it.
func (s *BookingService) Validate(req BookingRequest) (repository.Booking, error) {
	checkIn, err := parseDay(req.CheckIn, "check-in")
	if err != nil {
		return repository.Booking{}, err
	}
	checkOut, err := parseDay(req.CheckOut, "check-out")
	if err != nil {
		return repository.Booking{}, err
	}
	if checkIn.Before(s.today()) {
		return repository.Booking{}, ErrCheckInPast
	}
	if !checkOut.After(checkIn) {
		return repository.Booking{}, ErrCheckOutBeforeCheckIn
	}
	if req.Adults < MinAdults || req.Adults > MaxAdults {
		return repository.Booking{}, fmt.Errorf("%w: adults must be %d-%d", ErrInvalidGuests, MinAdults, MaxAdults)
	}
	if req.Children < 0 || req.Children > MaxChildren {
		return repository.Booking{}, fmt.Errorf("%w: children must be 0-%d", ErrInvalidGuests, MaxChildren)
	}
	suite, err := s.resolveSuite(req.Suite)
	if err != nil {
		return repository.Booking{}, err
	}
	return repository.Booking{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   req.Adults,
		Children: req.Children,
		Suite:    suite,
	}, nil
}

func (s *BookingService) resolveSuite(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(s.Suites) == 0 {
		return name, nil
	}
	for _, known := range s.Suites {
		if strings.EqualFold(known, name) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}

func (s *BookingService) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDay(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	d, err := time.Parse(repository.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidDate, field, raw)
	}
	return d, nil
}
