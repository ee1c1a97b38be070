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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, email, password_hash, phone, address, is_verified, is_email_verified, rating, review_count, last_login, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{UserType: domain.UserTypeCustomer}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Phone, &c.Address,
		&c.IsVerified, &c.IsEmailVerified, &c.Rating, &c.ReviewCount, &c.LastLogin,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.UserType = domain.UserTypeCustomer
	query := `INSERT INTO customers (id, name, email, password_hash, phone, address, is_verified, is_email_verified, rating, review_count, created_at, updated_at)
	          VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	          RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Email, c.PasswordHash, c.Phone, c.Address,
		c.IsVerified, c.IsEmailVerified, c.Rating, c.ReviewCount).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = LOWER($1)`
	return scanCustomer(r.db.QueryRowContext(ctx, query, email))
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=LOWER($2), phone=$3, address=$4, updated_at=NOW() WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE customers SET last_login=NOW() WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *customerRepository) SetActivationToken(ctx context.Context, id, tokenHash string) error {
	query := `UPDATE customers SET activation_token=$1, updated_at=NOW() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, tokenHash, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) ActivateByToken(ctx context.Context, tokenHash string) (*domain.Customer, error) {
	query := `UPDATE customers SET is_email_verified=TRUE, activation_token=NULL, updated_at=NOW()
	          WHERE activation_token=$1
	          RETURNING ` + customerColumns
	return scanCustomer(r.db.QueryRowContext(ctx, query, tokenHash))
}

func (r *customerRepository) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	query := `UPDATE customers SET reset_token=$1, reset_token_expires=$2, updated_at=NOW() WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, tokenHash, expires, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) (*domain.Customer, error) {
	query := `UPDATE customers SET password_hash=$1, reset_token=NULL, reset_token_expires=NULL, updated_at=NOW()
	          WHERE reset_token=$2 AND reset_token_expires > NOW()
	          RETURNING ` + customerColumns
	return scanCustomer(r.db.QueryRowContext(ctx, query, passwordHash, tokenHash))
}

func (r *customerRepository) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	query := `UPDATE customers SET reset_token=NULL, reset_token_expires=NULL
	          WHERE reset_token IS NOT NULL AND reset_token_expires <= NOW()`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// requireRow maps a zero-row UPDATE/DELETE to domain.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
