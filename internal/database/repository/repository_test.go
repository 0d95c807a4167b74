package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func day(s string) time.Time {
	d, err := time.Parse(repository.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBookingRepoInsertGetList(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := repository.NewBookingRepo(openTestDB(t))

	first := repository.Booking{
		ID: uuid.NewString(), CheckIn: day("2026-12-20"), CheckOut: day("2026-12-23"),
		Adults: 2, Children: 1, Suite: "Mozart Suite", CreatedAt: database.Now(),
	}
	second := repository.Booking{
		ID: uuid.NewString(), CheckIn: day("2026-11-02"), CheckOut: day("2026-11-04"),
		Adults: 1, Suite: "Imperial Suite", CreatedAt: database.Now(),
	}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, repository.BookingRequested, got.Status)
	require.Equal(t, 3, got.Nights())
	require.Equal(t, "2026-12-20", got.CheckIn.Format(repository.DateLayout))

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	all, err := repo.List(ctx, repository.BookingFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID, "ordered by check-in")

	later, err := repo.List(ctx, repository.BookingFilters{From: day("2026-12-01")})
	require.NoError(t, err)
	require.Len(t, later, 1)
	require.Equal(t, first.ID, later[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, second.ID, repository.BookingConfirmed))
	confirmed, err := repo.List(ctx, repository.BookingFilters{Status: repository.BookingConfirmed})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	require.ErrorIs(t, repo.UpdateStatus(ctx, "nope", repository.BookingCancelled), sql.ErrNoRows)
}

func TestBookingRepoRejectsInvalidGuestCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewBookingRepo(openTestDB(t))
	err := repo.Insert(ctx, repository.Booking{
		ID: uuid.NewString(), CheckIn: day("2026-12-20"), CheckOut: day("2026-12-21"),
		Adults: 9, CreatedAt: database.Now(),
	})
	require.Error(t, err)
}

func TestInquiryRepo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewInquiryRepo(openTestDB(t))
	q := repository.Inquiry{
		ID: uuid.NewString(), Name: "Clara", Email: "clara@example.com",
		Message: "Is early check-in possible?", CreatedAt: database.Now(),
	}
	require.NoError(t, repo.Insert(ctx, q))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, q.Message, list[0].Message)
	require.Empty(t, list[0].Phone)
}

func TestReopenKeepsStoredRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "again.db")
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, repository.NewInquiryRepo(db).Insert(ctx, repository.Inquiry{
		ID: uuid.NewString(), Name: "Anna Weber", Email: "anna@example.at",
		Message: "Late arrival", CreatedAt: database.Now(),
	}))
	require.NoError(t, db.Close())

	db, err = database.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.RunMigrationsWithDB(db))

	list, err := repository.NewInquiryRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
