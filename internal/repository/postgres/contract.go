package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, rental_id, status, signed_on, created_on, updated_on`

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.ContractStatusPending
	}
	query := `INSERT INTO contracts (id, rental_id, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, c.ID, c.RentalID, c.Status, now, now)
	return wrapErr("contracts.create", err)
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr("contracts.get", err)
	}
	return c, nil
}

func (r *contractRepository) GetByRentalID(ctx context.Context, rentalID string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE rental_id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, rentalID))
	if err != nil {
		return nil, wrapErr("contracts.get_by_rental", err)
	}
	return c, nil
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	now := time.Now().UTC()
	var signedOn interface{}
	if status == domain.ContractStatusSigned {
		signedOn = now
	}
	query := `UPDATE contracts SET status=$1, signed_on=COALESCE($2, signed_on), updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, status, signedOn, now, id)
	return wrapErr("contracts.update_status", err)
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	c := &domain.Contract{}
	var signedOn sql.NullString
	err := row.Scan(&c.ID, &c.RentalID, &c.Status, &signedOn, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if signedOn.Valid {
		c.SignedOn = &signedOn.String
	}
	return c, nil
}
