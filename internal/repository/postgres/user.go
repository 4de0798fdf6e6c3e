package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, identity_uid, full_name, email, phone, role, company_name, verified, created_on, updated_on`

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO profiles (id, identity_uid, full_name, email, phone, role, company_name, verified, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.IdentityUID, p.FullName, p.Email, p.Phone, p.Role, p.CompanyName, p.Verified, now, now)
	return wrapErr("profiles.create", err)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr("profiles.get", err)
	}
	return p, nil
}

func (r *profileRepository) GetByIdentityUID(ctx context.Context, uid string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE identity_uid = $1`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		return nil, wrapErr("profiles.get_by_identity", err)
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET full_name=$1, email=$2, phone=$3, role=$4, company_name=$5, verified=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		p.FullName, p.Email, p.Phone, p.Role, p.CompanyName, p.Verified, time.Now().UTC(), p.ID)
	return wrapErr("profiles.update", err)
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	p := &domain.Profile{}
	var phone, company sql.NullString
	err := row.Scan(&p.ID, &p.IdentityUID, &p.FullName, &p.Email, &phone, &p.Role,
		&company, &p.Verified, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	p.Phone = phone.String
	p.CompanyName = company.String
	return p, nil
}
