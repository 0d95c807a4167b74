package service

import "errors"

// Validation failures surfaced to the guest.
var (
	ErrMissingField          = errors.New("required field missing")
	ErrInvalidDate           = errors.New("dates must be YYYY-MM-DD")
	ErrCheckInPast           = errors.New("check-in date cannot be in the past")
	ErrCheckOutBeforeCheckIn = errors.New("check-out date must be after check-in date")
	ErrInvalidGuests         = errors.New("guest count out of range")
	ErrUnknownSuite          = errors.New("unknown suite")
	ErrInvalidEmail          = errors.New("invalid email address")
)
