package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

const motorcycleColumns = `id, owner_id, brand, model, year, color, license_plate, chassis_number, renavam, daily_rate_cents, description, category, city, image_urls, status, created_on, updated_on`

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = domain.MotorcycleStatusAvailable
	}
	query := `INSERT INTO motorcycles (id, owner_id, brand, model, year, color, license_plate, chassis_number, renavam, daily_rate_cents, description, category, city, image_urls, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.OwnerID, m.Brand, m.Model, m.Year, m.Color, m.LicensePlate, m.ChassisNumber,
		m.Renavam, m.DailyRateCents, m.Description, m.Category, m.City,
		pq.Array(m.ImageURLs), m.Status, now, now)
	return wrapErr("motorcycles.create", err)
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE id = $1`
	m, err := scanMotorcycle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr("motorcycles.get", err)
	}
	return m, nil
}

func (r *motorcycleRepository) Update(ctx context.Context, m *domain.Motorcycle) error {
	query := `UPDATE motorcycles SET brand=$1, model=$2, year=$3, color=$4, license_plate=$5, chassis_number=$6, renavam=$7, daily_rate_cents=$8, description=$9, category=$10, city=$11, image_urls=$12, status=$13, updated_on=$14 WHERE id=$15`
	_, err := r.db.ExecContext(ctx, query,
		m.Brand, m.Model, m.Year, m.Color, m.LicensePlate, m.ChassisNumber, m.Renavam,
		m.DailyRateCents, m.Description, m.Category, m.City, pq.Array(m.ImageURLs),
		m.Status, time.Now().UTC(), m.ID)
	return wrapErr("motorcycles.update", err)
}

func (r *motorcycleRepository) SetStatus(ctx context.Context, id string, status domain.MotorcycleStatus) error {
	query := `UPDATE motorcycles SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	return wrapErr("motorcycles.set_status", err)
}

func (r *motorcycleRepository) List(ctx context.Context, f domain.MotorcycleFilters, page, pageSize int32) ([]domain.Motorcycle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE status = $1`
	args := []interface{}{domain.MotorcycleStatusAvailable}
	argIdx := 2

	addFilter := func(clause string, value interface{}) {
		query += fmt.Sprintf(" AND "+clause, argIdx)
		args = append(args, value)
		argIdx++
	}
	if f.City != "" {
		addFilter("city = $%d", f.City)
	}
	if f.Brand != "" {
		addFilter("brand = $%d", f.Brand)
	}
	if f.Category != "" {
		addFilter("category = $%d", f.Category)
	}
	if f.MinPriceCents > 0 {
		addFilter("daily_rate_cents >= $%d", f.MinPriceCents)
	}
	if f.MaxPriceCents > 0 {
		addFilter("daily_rate_cents <= $%d", f.MaxPriceCents)
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, wrapErr("motorcycles.list", err)
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	return r.queryMany(ctx, query, args, count)
}

func (r *motorcycleRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Motorcycle, int32, error) {
	offset := (page - 1) * pageSize
	base := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE owner_id = $1`

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM ("+base+") AS sub", ownerID).Scan(&count); err != nil {
		return nil, 0, wrapErr("motorcycles.list_by_owner", err)
	}

	query := base + " ORDER BY created_on DESC LIMIT $2 OFFSET $3"
	return r.queryMany(ctx, query, []interface{}{ownerID, pageSize, offset}, count)
}

func (r *motorcycleRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM motorcycles WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, wrapErr("motorcycles.categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, wrapErr("motorcycles.categories", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("motorcycles.categories", err)
	}
	return categories, nil
}

func (r *motorcycleRepository) queryMany(ctx context.Context, query string, args []interface{}, count int32) ([]domain.Motorcycle, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapErr("motorcycles.list", err)
	}
	defer rows.Close()

	var motos []domain.Motorcycle
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, 0, wrapErr("motorcycles.list", err)
		}
		motos = append(motos, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("motorcycles.list", err)
	}
	return motos, count, nil
}

func scanMotorcycle(row rowScanner) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	err := row.Scan(&m.ID, &m.OwnerID, &m.Brand, &m.Model, &m.Year, &m.Color,
		&m.LicensePlate, &m.ChassisNumber, &m.Renavam, &m.DailyRateCents,
		&m.Description, &m.Category, &m.City, pq.Array(&m.ImageURLs),
		&m.Status, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}
