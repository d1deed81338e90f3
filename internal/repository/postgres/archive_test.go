package postgres

import (
	"context"
	"testing"

	"naturexpress-cargo-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewArchiveRepository(db)
	req := &domain.ServiceRequest{
		ID:          "r1",
		ServiceID:   "s1",
		ServiceName: "Express",
		PricePerKg:  12.5,
		UserID:      "u1",
		Weight:      10,
		TotalPrice:  125,
		Status:      domain.RequestStatusDelivered,
		CreatedAt:   1700000000000,
	}

	mock.ExpectExec("INSERT INTO archived_requests").
		WithArgs(
			"r1", "s1", "Express", 12.5, "u1", "", "", "",
			10.0, 125.0, "delivered", "", "", "", "",
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ArchiveRequest(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveRequestIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewArchiveRepository(db)
	req := &domain.ServiceRequest{ID: "r1", Status: domain.RequestStatusCancelled}

	// Conflict on request_id: zero rows affected, still no error.
	mock.ExpectExec("INSERT INTO archived_requests").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.ArchiveRequest(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountArchived(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewArchiveRepository(db)
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountArchived(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
