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

type providerRepository struct {
	db *sql.DB
}

func NewProviderRepository(db *sql.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

const providerColumns = `id, name, email, password_hash, phone, address,
	COALESCE(business_name, ''), COALESCE(business_type, ''), COALESCE(license_number, ''),
	COALESCE(service_area, ''), COALESCE(experience, 0), COALESCE(certifications, ''),
	is_active, is_verified, is_email_verified, total_equipment, total_rentals,
	rating, review_count, last_login, created_at, updated_at`

func scanProvider(row interface{ Scan(...any) error }) (*domain.Provider, error) {
	p := &domain.Provider{UserType: domain.UserTypeProvider}
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Phone, &p.Address,
		&p.BusinessName, &p.BusinessType, &p.LicenseNumber,
		&p.ServiceArea, &p.Experience, &p.Certifications,
		&p.IsActive, &p.IsVerified, &p.IsEmailVerified, &p.TotalEquipment, &p.TotalRentals,
		&p.Rating, &p.ReviewCount, &p.LastLogin, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *providerRepository) Create(ctx context.Context, p *domain.Provider) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.UserType = domain.UserTypeProvider
	query := `INSERT INTO providers (id, name, email, password_hash, phone, address,
	            business_name, business_type, license_number, service_area, experience, certifications,
	            is_active, is_verified, is_email_verified, total_equipment, total_rentals,
	            rating, review_count, created_at, updated_at)
	          VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
	          RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, p.ID, p.Name, p.Email, p.PasswordHash, p.Phone, p.Address,
		p.BusinessName, string(p.BusinessType), p.LicenseNumber, p.ServiceArea, p.Experience, p.Certifications,
		p.IsActive, p.IsVerified, p.IsEmailVerified, p.TotalEquipment, p.TotalRentals,
		p.Rating, p.ReviewCount).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *providerRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`
	return scanProvider(r.db.QueryRowContext(ctx, query, id))
}

func (r *providerRepository) GetByEmail(ctx context.Context, email string) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE email = LOWER($1)`
	return scanProvider(r.db.QueryRowContext(ctx, query, email))
}

func (r *providerRepository) Update(ctx context.Context, p *domain.Provider) error {
	query := `UPDATE providers SET name=$1, email=LOWER($2), phone=$3, address=$4,
	            business_name=$5, business_type=$6, license_number=$7, service_area=$8,
	            experience=$9, certifications=$10, updated_at=NOW()
	          WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Email, p.Phone, p.Address,
		p.BusinessName, string(p.BusinessType), p.LicenseNumber, p.ServiceArea,
		p.Experience, p.Certifications, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *providerRepository) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE providers SET last_login=NOW() WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *providerRepository) SetActivationToken(ctx context.Context, id, tokenHash string) error {
	query := `UPDATE providers SET activation_token=$1, updated_at=NOW() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, tokenHash, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *providerRepository) ActivateByToken(ctx context.Context, tokenHash string) (*domain.Provider, error) {
	query := `UPDATE providers SET is_email_verified=TRUE, activation_token=NULL, updated_at=NOW()
	          WHERE activation_token=$1
	          RETURNING ` + providerColumns
	return scanProvider(r.db.QueryRowContext(ctx, query, tokenHash))
}

func (r *providerRepository) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	query := `UPDATE providers SET reset_token=$1, reset_token_expires=$2, updated_at=NOW() WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, tokenHash, expires, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *providerRepository) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) (*domain.Provider, error) {
	query := `UPDATE providers SET password_hash=$1, reset_token=NULL, reset_token_expires=NULL, updated_at=NOW()
	          WHERE reset_token=$2 AND reset_token_expires > NOW()
	          RETURNING ` + providerColumns
	return scanProvider(r.db.QueryRowContext(ctx, query, passwordHash, tokenHash))
}

func (r *providerRepository) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	query := `UPDATE providers SET reset_token=NULL, reset_token_expires=NULL
	          WHERE reset_token IS NOT NULL AND reset_token_expires <= NOW()`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
