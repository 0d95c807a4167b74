package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// BookingFilters defines list filters.
type BookingFilters struct {
	Status string
	Suite  string
	From   time.Time // check-in on or after; zero = no bound
}

// BookingRepo handles booking requests.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) Insert(ctx context.Context, b Booking) error {
	if b.Status == "" {
		b.Status = BookingRequested
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO bookings(id, check_in, check_out, adults, children, suite, status, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?);
	`,
		b.ID, b.CheckIn.Format(DateLayout), b.CheckOut.Format(DateLayout),
		b.Adults, b.Children, b.Suite, b.Status, b.CreatedAt)
	return err
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("booking %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

func (r *BookingRepo) Get(ctx context.Context, id string) (*Booking, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, check_in, check_out, adults, children, suite, status, created_at
	FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *BookingRepo) List(ctx context.Context, f BookingFilters) ([]Booking, error) {
	var where []string
	var args []interface{}

	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Suite != "" {
		where = append(where, "suite = ?")
		args = append(args, f.Suite)
	}
	if !f.From.IsZero() {
		where = append(where, "check_in >= ?")
		args = append(args, f.From.Format(DateLayout))
	}

	query := "SELECT id, check_in, check_out, adults, children, suite, status, created_at FROM bookings"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY check_in, created_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (*Booking, error) {
	var b Booking
	var checkIn, checkOut string
	if err := s.Scan(&b.ID, &checkIn, &checkOut, &b.Adults, &b.Children, &b.Suite, &b.Status, &b.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if b.CheckIn, err = time.Parse(DateLayout, checkIn); err != nil {
		return nil, fmt.Errorf("booking %s check_in: %w", b.ID, err)
	}
	if b.CheckOut, err = time.Parse(DateLayout, checkOut); err != nil {
		return nil, fmt.Errorf("booking %s check_out: %w", b.ID, err)
	}
	return &b, nil
}
