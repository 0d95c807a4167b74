package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/viennasuites/internal/database"
	"github.com/jask/viennasuites/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)
}

func newBookingService(t *testing.T) (*BookingService, *repository.BookingRepo) {
	repo := repository.NewBookingRepo(openTestDB(t))
	return &BookingService{
		Bookings: repo,
		Suites:   []string{"Mozart Suite", "Strauss Suite", "Imperial Suite"},
		Now:      fixedNow,
	}, repo
}

func TestBookingSubmitStoresRequest(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	svc, repo := newBookingService(t)

	b, err := svc.Submit(ctx, BookingRequest{
		CheckIn: "2026-10-18", CheckOut: "2026-10-21", Adults: 2, Children: 1, Suite: "strauss suite",
	})
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.Equal(t, "Strauss Suite", b.Suite)
	require.Equal(t, 3, b.Nights())

	stored, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, repository.BookingRequested, stored.Status)
}

func TestBookingValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService(t)
	cases := []struct {
		name string
		req  BookingRequest
		want error
	}{
		{"missing check-in", BookingRequest{CheckOut: "2026-10-20", Adults: 2}, ErrMissingField},
		{"bad date", BookingRequest{CheckIn: "18/10/2026", CheckOut: "2026-10-20", Adults: 2}, ErrInvalidDate},
		{"past check-in", BookingRequest{CheckIn: "2026-10-17", CheckOut: "2026-10-20", Adults: 2}, ErrCheckInPast},
		{"same day checkout", BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-20", Adults: 2}, ErrCheckOutBeforeCheckIn},
		{"checkout before", BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-19", Adults: 2}, ErrCheckOutBeforeCheckIn},
		{"no adults", BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-22", Adults: 0}, ErrInvalidGuests},
		{"too many children", BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-22", Adults: 1, Children: 4}, ErrInvalidGuests},
		{"unknown suite", BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-22", Adults: 1, Suite: "Beethoven"}, ErrUnknownSuite},
	}
	for _, tc := range cases {
		_, err := svc.Validate(tc.req)
		require.ErrorIs(t, err, tc.want, tc.name)
	}

	b, err := svc.Validate(BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-22", Adults: 4, Children: 3})
	require.NoError(t, err)
	require.Empty(t, b.Suite)
}

func TestBookingSubmitHonoursContextDuringDelay(t *testing.T) {
	t.Parallel()

	svc, repo := newBookingService(t)
	svc.Delay = time.Minute
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, BookingRequest{CheckIn: "2026-10-20", CheckOut: "2026-10-22", Adults: 2})
	require.ErrorIs(t, err, context.Canceled)

	list, err := repo.List(context.Background(), repository.BookingFilters{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestContactSubmit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewInquiryRepo(openTestDB(t))
	svc := &ContactService{Inquiries: repo}

	_, err := svc.Submit(ctx, InquiryRequest{Name: "Anna", Email: "anna@example.com"})
	require.ErrorIs(t, err, ErrMissingField)
	_, err = svc.Submit(ctx, InquiryRequest{Name: "Anna", Email: "not-an-email", Message: "hi"})
	require.ErrorIs(t, err, ErrInvalidEmail)

	q, err := svc.Submit(ctx, InquiryRequest{Name: " Anna ", Email: "anna@example.com", Message: "Late arrival?"})
	require.NoError(t, err)
	require.Equal(t, "Anna", q.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	svc := &BookingService{Bookings: repository.NewBookingRepo(db), Now: fixedNow}
	_, err := svc.Submit(ctx, BookingRequest{CheckIn: "2026-11-01", CheckOut: "2026-11-02", Adults: 1})
	require.NoError(t, err)

	require.NoError(t, (&MaintenanceService{DB: db}).Reset(ctx))
	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings").Scan(&n))
	require.Zero(t, n)

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}
