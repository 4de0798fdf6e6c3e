package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, motorcycle_id, renter_id, owner_id, start_date, end_date, daily_rate_cents, duration_days, base_amount_cents, service_fee_cents, total_amount_cents, purpose, additional_info, status, rejection_reason, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, p *domain.RentalProposal) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO rentals (id, motorcycle_id, renter_id, owner_id, start_date, end_date, daily_rate_cents, duration_days, base_amount_cents, service_fee_cents, total_amount_cents, purpose, additional_info, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.MotorcycleID, p.RenterID, p.OwnerID, p.StartDate, p.EndDate,
		p.DailyRateCents, p.DurationDays, p.BaseAmountCents, p.ServiceFeeCents, p.TotalAmountCents,
		p.Purpose, p.AdditionalInfo, p.Status, now, now)
	return wrapErr("rentals.create", err)
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalProposal, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	p, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr("rentals.get", err)
	}
	return p, nil
}

func (r *rentalRepository) ListApprovedPeriods(ctx context.Context, motorcycleID string) ([]domain.RentalPeriod, error) {
	query := `SELECT id, start_date, end_date FROM rentals WHERE motorcycle_id = $1 AND status = $2`
	rows, err := r.db.QueryContext(ctx, query, motorcycleID, domain.ProposalStatusApproved)
	if err != nil {
		return nil, wrapErr("rentals.approved_periods", err)
	}
	defer rows.Close()

	var periods []domain.RentalPeriod
	for rows.Next() {
		var p domain.RentalPeriod
		if err := rows.Scan(&p.RentalID, &p.StartDate, &p.EndDate); err != nil {
			return nil, wrapErr("rentals.approved_periods", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("rentals.approved_periods", err)
	}
	return periods, nil
}

// Approve holds the no-overlap invariant where it can actually be held:
// inside one transaction, approved rows for the motorcycle are locked and
// re-checked before the status flips. Two racing approvals serialize here,
// and the loser gets the conflict.
func (r *rentalRepository) Approve(ctx context.Context, id string) (*domain.RentalProposal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("rentals.approve", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 FOR UPDATE`
	p, err := scanRental(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr("rentals.approve", err)
	}
	if p.Status != domain.ProposalStatusPending {
		return nil, domain.NewValidationError("status", "proposal is not pending")
	}

	conflictQuery := `SELECT id, start_date, end_date FROM rentals
	                  WHERE motorcycle_id = $1 AND status = $2 AND id <> $3
	                    AND start_date <= $4 AND end_date >= $5
	                  FOR UPDATE`
	rows, err := tx.QueryContext(ctx, conflictQuery, p.MotorcycleID, domain.ProposalStatusApproved, p.ID, p.EndDate, p.StartDate)
	if err != nil {
		return nil, wrapErr("rentals.approve", err)
	}
	var conflicts []domain.RentalPeriod
	for rows.Next() {
		var c domain.RentalPeriod
		if err := rows.Scan(&c.RentalID, &c.StartDate, &c.EndDate); err != nil {
			rows.Close()
			return nil, wrapErr("rentals.approve", err)
		}
		conflicts = append(conflicts, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapErr("rentals.approve", err)
	}
	if len(conflicts) > 0 {
		return nil, &domain.ConflictError{MotorcycleID: p.MotorcycleID, Conflicts: conflicts}
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `UPDATE rentals SET status = $1, updated_on = $2 WHERE id = $3`,
		domain.ProposalStatusApproved, now, p.ID); err != nil {
		return nil, wrapErr("rentals.approve", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, wrapErr("rentals.approve", err)
	}

	p.Status = domain.ProposalStatusApproved
	p.UpdatedOn = now.Format(time.RFC3339)
	return p, nil
}

func (r *rentalRepository) Reject(ctx context.Context, id, reason string) (*domain.RentalProposal, error) {
	query := `UPDATE rentals SET status = $1, rejection_reason = $2, updated_on = $3
	          WHERE id = $4 AND status = $5
	          RETURNING ` + rentalColumns
	p, err := scanRental(r.db.QueryRowContext(ctx, query,
		domain.ProposalStatusRejected, reason, time.Now().UTC(), id, domain.ProposalStatusPending))
	if err != nil {
		return nil, wrapErr("rentals.reject", err)
	}
	return p, nil
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID string, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	return r.list(ctx, "renter_id", renterID, status, page, pageSize)
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID string, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	return r.list(ctx, "owner_id", ownerID, status, page, pageSize)
}

func (r *rentalRepository) list(ctx context.Context, column, userID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE ` + column + ` = $1`
	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, wrapErr("rentals.list", err)
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapErr("rentals.list", err)
	}
	defer rows.Close()

	var proposals []domain.RentalProposal
	for rows.Next() {
		p, err := scanRental(rows)
		if err != nil {
			return nil, 0, wrapErr("rentals.list", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("rentals.list", err)
	}
	return proposals, count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.RentalProposal, error) {
	p := &domain.RentalProposal{}
	var additionalInfo, rejectionReason sql.NullString
	err := row.Scan(&p.ID, &p.MotorcycleID, &p.RenterID, &p.OwnerID, &p.StartDate, &p.EndDate,
		&p.DailyRateCents, &p.DurationDays, &p.BaseAmountCents, &p.ServiceFeeCents, &p.TotalAmountCents,
		&p.Purpose, &additionalInfo, &p.Status, &rejectionReason, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	p.AdditionalInfo = additionalInfo.String
	p.RejectionReason = rejectionReason.String
	return p, nil
}
