package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/viennasuites/internal/database"
	"github.com/jask/viennasuites/internal/database/repository"
)

// InquiryRequest is the raw contact form.
type InquiryRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService records contact form messages.
type ContactService struct {
	Inquiries *repository.InquiryRepo
	Delay     time.Duration
}

// Submit validates req, waits out the configured delay and stores it.
func (s *ContactService) Submit(ctx context.Context, req InquiryRequest) (repository.Inquiry, error) {
	q := repository.Inquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	switch {
	case q.Name == "":
		return repository.Inquiry{}, fmt.Errorf("%w: name", ErrMissingField)
	case q.Email == "":
		return repository.Inquiry{}, fmt.Errorf("%w: email", ErrMissingField)
	case q.Message == "":
		return repository.Inquiry{}, fmt.Errorf("%w: message", ErrMissingField)
	}
	if _, err := mail.ParseAddress(q.Email); err != nil {
		return repository.Inquiry{}, fmt.Errorf("%w: %q", ErrInvalidEmail, q.Email)
	}
	if err := wait(ctx, s.Delay); err != nil {
		return repository.Inquiry{}, fmt.Errorf("contact: %w", err)
	}
	if s.Inquiries == nil {
		return repository.Inquiry{}, fmt.Errorf("contact: store not configured")
	}
	q.ID = uuid.NewString()
	q.CreatedAt = database.Now()
	if err := s.Inquiries.Insert(ctx, q); err != nil {
		return repository.Inquiry{}, fmt.Errorf("contact: save: %w", err)
	}
	return q, nil
}
