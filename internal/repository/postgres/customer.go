package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, email, phone, national_id, address, registered_on::text, updated_on::text`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.NationalID, &c.Address, &c.RegisteredOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, name, email, phone, national_id, address, registered_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING registered_on::text, updated_on::text`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.NationalID, c.Address, now, now).
		Scan(&c.RegisteredOn, &c.UpdatedOn)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, email))
}

func (r *customerRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE national_id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, nationalID))
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone=$3, address=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.Address, time.Now().UTC(), c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *customerRepository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY registered_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}
