package repository

import (
	"context"
	"errors"
	"fmt"

	"laundry_service/internal/model"
	"laundry_service/internal/utils"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicatePhone is returned when the phone unique constraint rejects an insert.
var ErrDuplicatePhone = errors.New("phone already registered")

// CustomerRepository defines operations for customer account data
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
}

type customerRepository struct {
	db DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer account and assigns its ID
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	id := utils.NewRecordID()
	sql := `INSERT INTO customer_accounts (id, name, phone, password_hash) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, sql, id, customer.Name, customer.Phone, customer.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	customer.ID = id
	return nil
}

// FindByPhone retrieves an account by its normalized phone number
func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	c := &model.Customer{}
	sql := `SELECT id, name, phone, password_hash FROM customer_accounts WHERE phone = $1`
	err := r.db.QueryRow(ctx, sql, phone).Scan(&c.ID, &c.Name, &c.Phone, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error, the service decides
		}
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}
	return c, nil
}
