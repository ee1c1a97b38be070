package postgres

import (
	"context"
	"database/sql"
	"errors"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/repository"

	"github.com/google/uuid"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, provider_id, name, category, type, price, COALESCE(address, ''), available, created_at`

func scanEquipment(row interface{ Scan(...any) error }) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	err := row.Scan(&e.ID, &e.ProviderID, &e.Name, &e.Category, &e.Type, &e.Price,
		&e.Address, &e.Available, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `INSERT INTO equipments (id, provider_id, name, category, type, price, address, available, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query, e.ID, e.ProviderID, e.Name, string(e.Category), e.Type,
		e.Price, e.Address, e.Available).Scan(&e.CreatedAt)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE id = $1`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipments SET name=$1, category=$2, type=$3, price=$4, address=$5, available=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, e.Name, string(e.Category), e.Type, e.Price, e.Address, e.Available, e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE equipments SET available=$1 WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

func (r *equipmentRepository) ListByProvider(ctx context.Context, providerID string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE provider_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, providerID)
}

func (r *equipmentRepository) CountByProvider(ctx context.Context, providerID string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipments WHERE provider_id = $1`, providerID).Scan(&count)
	return count, err
}

func (r *equipmentRepository) queryList(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so empty result sets serialize as [] rather than null.
	items := []domain.Equipment{}
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.ProviderID, &e.Name, &e.Category, &e.Type, &e.Price,
			&e.Address, &e.Available, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
