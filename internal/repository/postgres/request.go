package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/repository"

	"github.com/google/uuid"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, customer_id, provider_id, equipment_id,
	customer_name, customer_email, customer_mobile, equipment_name,
	status, requested_at, response_date, COALESCE(response_message, ''),
	start_date, end_date, total_days, price_per_day, total_amount,
	urgency, delivery_required, operator_required, COALESCE(special_requirements, ''), message`

func scanRequest(row interface{ Scan(...any) error }) (*domain.RentalRequest, error) {
	rr := &domain.RentalRequest{}
	err := row.Scan(&rr.ID, &rr.CustomerID, &rr.ProviderID, &rr.EquipmentID,
		&rr.CustomerName, &rr.CustomerEmail, &rr.CustomerMobile, &rr.EquipmentName,
		&rr.Status, &rr.RequestedAt, &rr.ResponseDate, &rr.ResponseMessage,
		&rr.StartDate, &rr.EndDate, &rr.TotalDays, &rr.PricePerDay, &rr.TotalAmount,
		&rr.Urgency, &rr.DeliveryRequired, &rr.OperatorRequired, &rr.SpecialRequirements, &rr.Message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rr, nil
}

func (r *requestRepository) Create(ctx context.Context, rr *domain.RentalRequest) error {
	if rr.ID == "" {
		rr.ID = uuid.NewString()
	}
	query := `INSERT INTO requests (id, customer_id, provider_id, equipment_id,
	            customer_name, customer_email, customer_mobile, equipment_name,
	            status, requested_at, start_date, end_date, total_days, price_per_day, total_amount,
	            urgency, delivery_required, operator_required, special_requirements, message)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.ExecContext(ctx, query, rr.ID, rr.CustomerID.String(), rr.ProviderID.String(), rr.EquipmentID,
		rr.CustomerName, rr.CustomerEmail, rr.CustomerMobile, rr.EquipmentName,
		string(rr.Status), rr.RequestedAt, rr.StartDate, rr.EndDate, rr.TotalDays, rr.PricePerDay, rr.TotalAmount,
		string(rr.Urgency), rr.DeliveryRequired, rr.OperatorRequired, rr.SpecialRequirements, rr.Message)
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *requestRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE customer_id = $1 ORDER BY requested_at DESC`
	return r.queryList(ctx, query, customerID)
}

func (r *requestRepository) ListByProvider(ctx context.Context, providerID string) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE provider_id = $1 ORDER BY requested_at DESC`
	return r.queryList(ctx, query, providerID)
}

// Decide runs the status transition and the availability flip in one
// transaction. Only pending requests transition; a vanished equipment row
// does not abort the decision, it is reported through EquipmentSynced.
func (r *requestRepository) Decide(ctx context.Context, id string, status domain.RequestStatus, message string, at time.Time) (*repository.DecisionOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	updateQuery := `UPDATE requests SET status=$1, response_date=$2, response_message=$3
	                WHERE id=$4 AND status='pending'
	                RETURNING ` + requestColumns
	rr, err := scanRequest(tx.QueryRowContext(ctx, updateQuery, string(status), at, message, id))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		// Zero rows: either the request is unknown or already decided.
		var current string
		scanErr := tx.QueryRowContext(ctx, `SELECT status FROM requests WHERE id=$1`, id).Scan(&current)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if scanErr != nil {
			return nil, scanErr
		}
		return nil, domain.ErrRequestNotPending
	}

	available := status == domain.RequestStatusRejected
	res, err := tx.ExecContext(ctx, `UPDATE equipments SET available=$1 WHERE id=$2`, available, rr.EquipmentID)
	if err != nil {
		return nil, err
	}
	flipped, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &repository.DecisionOutcome{Request: rr, EquipmentSynced: flipped > 0}, nil
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *requestRepository) ListApprovedWithAvailableEquipment(ctx context.Context) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumnsPrefixed + `
	          FROM requests r
	          JOIN equipments e ON e.id = r.equipment_id
	          WHERE r.status = 'approved' AND e.available = TRUE`
	return r.queryList(ctx, query)
}

const requestColumnsPrefixed = `r.id, r.customer_id, r.provider_id, r.equipment_id,
	r.customer_name, r.customer_email, r.customer_mobile, r.equipment_name,
	r.status, r.requested_at, r.response_date, COALESCE(r.response_message, ''),
	r.start_date, r.end_date, r.total_days, r.price_per_day, r.total_amount,
	r.urgency, r.delivery_required, r.operator_required, COALESCE(r.special_requirements, ''), r.message`

func (r *requestRepository) queryList(ctx context.Context, query string, args ...any) ([]domain.RentalRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so empty result sets serialize as [] rather than null.
	items := []domain.RentalRequest{}
	for rows.Next() {
		rr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rr)
	}
	return items, rows.Err()
}
