package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

var rentalCols = []string{
	"id", "motorcycle_id", "renter_id", "owner_id", "start_date", "end_date",
	"daily_rate_cents", "duration_days", "base_amount_cents", "service_fee_cents",
	"total_amount_cents", "purpose", "additional_info", "status", "rejection_reason",
	"created_on", "updated_on",
}

func pendingRentalRow() *sqlmock.Rows {
	return sqlmock.NewRows(rentalCols).AddRow(
		"rental-1", "moto-1", "renter-1", "owner-1", "2025-06-10", "2025-06-15",
		12000, 5, 60000, 6000, 66000, "delivery work", nil, "pending", nil,
		"2025-06-01T10:00:00Z", "2025-06-01T10:00:00Z",
	)
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		proposal := &domain.RentalProposal{
			MotorcycleID:     "moto-1",
			RenterID:         "renter-1",
			OwnerID:          "owner-1",
			StartDate:        "2025-06-10",
			EndDate:          "2025-06-15",
			DailyRateCents:   12000,
			DurationDays:     5,
			BaseAmountCents:  60000,
			ServiceFeeCents:  6000,
			TotalAmountCents: 66000,
			Purpose:          "delivery work",
			Status:           domain.ProposalStatusPending,
		}

		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(sqlmock.AnyArg(), "moto-1", "renter-1", "owner-1", "2025-06-10", "2025-06-15",
				int64(12000), int32(5), int64(60000), int64(6000), int64(66000),
				"delivery work", "", "pending", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, proposal)
		assert.NoError(t, err)
		assert.NotEmpty(t, proposal.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id").
			WithArgs("rental-1").
			WillReturnRows(pendingRentalRow())

		p, err := repo.GetByID(ctx, "rental-1")
		assert.NoError(t, err)
		assert.Equal(t, "rental-1", p.ID)
		assert.Equal(t, domain.ProposalStatusPending, p.Status)
		assert.Equal(t, int64(66000), p.TotalAmountCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(rentalCols))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalRepository_ListApprovedPeriods(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, start_date, end_date FROM rentals").
		WithArgs("moto-1", "approved").
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_date", "end_date"}).
			AddRow("rental-2", "2025-06-01", "2025-06-05").
			AddRow("rental-3", "2025-06-15", "2025-06-20"))

	periods, err := repo.ListApprovedPeriods(ctx, "moto-1")
	assert.NoError(t, err)
	assert.Len(t, periods, 2)
	assert.Equal(t, "rental-2", periods[0].RentalID)
}

func TestRentalRepository_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id (.+) FOR UPDATE").
			WithArgs("rental-1").
			WillReturnRows(pendingRentalRow())
		mock.ExpectQuery("SELECT id, start_date, end_date FROM rentals").
			WithArgs("moto-1", "approved", "rental-1", "2025-06-15", "2025-06-10").
			WillReturnRows(sqlmock.NewRows([]string{"id", "start_date", "end_date"}))
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs("approved", sqlmock.AnyArg(), "rental-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		p, err := repo.Approve(ctx, "rental-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusApproved, p.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ConflictLeavesProposalUntouched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id (.+) FOR UPDATE").
			WithArgs("rental-1").
			WillReturnRows(pendingRentalRow())
		mock.ExpectQuery("SELECT id, start_date, end_date FROM rentals").
			WithArgs("moto-1", "approved", "rental-1", "2025-06-15", "2025-06-10").
			WillReturnRows(sqlmock.NewRows([]string{"id", "start_date", "end_date"}).
				AddRow("rental-2", "2025-06-12", "2025-06-18"))
		mock.ExpectRollback()

		_, err = repo.Approve(ctx, "rental-1")
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Equal(t, "moto-1", conflict.MotorcycleID)
		assert.Len(t, conflict.Conflicts, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotPending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewRentalRepository(db)

		approvedRow := sqlmock.NewRows(rentalCols).AddRow(
			"rental-1", "moto-1", "renter-1", "owner-1", "2025-06-10", "2025-06-15",
			12000, 5, 60000, 6000, 66000, "delivery work", nil, "approved", nil,
			"2025-06-01T10:00:00Z", "2025-06-01T10:00:00Z",
		)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id (.+) FOR UPDATE").
			WithArgs("rental-1").
			WillReturnRows(approvedRow)
		mock.ExpectRollback()

		_, err = repo.Approve(ctx, "rental-1")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRentalRepository_Reject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	rejectedRow := sqlmock.NewRows(rentalCols).AddRow(
		"rental-1", "moto-1", "renter-1", "owner-1", "2025-06-10", "2025-06-15",
		12000, 5, 60000, 6000, 66000, "delivery work", nil, "rejected", "dates no longer work",
		"2025-06-01T10:00:00Z", "2025-06-02T09:00:00Z",
	)
	mock.ExpectQuery("UPDATE rentals SET status").
		WithArgs("rejected", "dates no longer work", sqlmock.AnyArg(), "rental-1", "pending").
		WillReturnRows(rejectedRow)

	p, err := repo.Reject(ctx, "rental-1", "dates no longer work")
	assert.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusRejected, p.Status)
	assert.Equal(t, "dates no longer work", p.RejectionReason)
}

func TestRentalRepository_ListByRenter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs("renter-1", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE renter_id").
		WithArgs("renter-1", "pending", int32(10), int32(0)).
		WillReturnRows(pendingRentalRow())

	proposals, total, err := repo.ListByRenter(ctx, "renter-1", "pending", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, proposals, 1)
	assert.Equal(t, "rental-1", proposals[0].ID)
}
