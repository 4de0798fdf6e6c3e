package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, rental_id, renter_id, owner_id, amount_cents, due_date, status, paid_on, created_on, updated_on`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = domain.PaymentStatusPending
	}
	query := `INSERT INTO payments (id, rental_id, renter_id, owner_id, amount_cents, due_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.RentalID, p.RenterID, p.OwnerID, p.AmountCents, p.DueDate, p.Status, now, now)
	return wrapErr("payments.create", err)
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr("payments.get", err)
	}
	return p, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id string) error {
	now := time.Now().UTC()
	query := `UPDATE payments SET status=$1, paid_on=$2, updated_on=$3 WHERE id=$4 AND status <> $1`
	_, err := r.db.ExecContext(ctx, query, domain.PaymentStatusPaid, now, now, id)
	return wrapErr("payments.mark_paid", err)
}

func (r *paymentRepository) ListByRenter(ctx context.Context, renterID string, page, pageSize int32) ([]domain.Payment, int32, error) {
	return r.list(ctx, "renter_id", renterID, page, pageSize)
}

func (r *paymentRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Payment, int32, error) {
	return r.list(ctx, "owner_id", ownerID, page, pageSize)
}

func (r *paymentRepository) list(ctx context.Context, column, userID string, page, pageSize int32) ([]domain.Payment, int32, error) {
	offset := (page - 1) * pageSize
	base := `SELECT ` + paymentColumns + ` FROM payments WHERE ` + column + ` = $1`

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM ("+base+") AS sub", userID).Scan(&count); err != nil {
		return nil, 0, wrapErr("payments.list", err)
	}

	rows, err := r.db.QueryContext(ctx, base+" ORDER BY due_date ASC LIMIT $2 OFFSET $3", userID, pageSize, offset)
	if err != nil {
		return nil, 0, wrapErr("payments.list", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, wrapErr("payments.list", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("payments.list", err)
	}
	return payments, count, nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	p := &domain.Payment{}
	var paidOn sql.NullString
	err := row.Scan(&p.ID, &p.RentalID, &p.RenterID, &p.OwnerID, &p.AmountCents,
		&p.DueDate, &p.Status, &paidOn, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if paidOn.Valid {
		p.PaidOn = &paidOn.String
	}
	return p, nil
}
