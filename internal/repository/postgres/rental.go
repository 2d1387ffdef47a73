package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, vehicle_id, start_date::text, end_date::text, days, total_price, status, actual_return_date::text, notes, created_on::text, updated_on::text`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.EndDate, &rt.Days, &rt.TotalPrice, &rt.Status, &rt.ActualReturnDate, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Create inserts the rental inside a single transaction: lock the vehicle
// row, re-check the half-open overlap predicate against active rentals,
// then insert. The lock serializes concurrent bookings for one vehicle so
// they cannot both pass the check and both commit.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var vehicleID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, rt.VehicleID).Scan(&vehicleID)
	if err != nil {
		return err
	}

	var conflicts int32
	err = tx.QueryRowContext(ctx, `
		SELECT count(*) FROM rentals
		WHERE vehicle_id = $1 AND status = $2
		  AND NOT (end_date <= $3::date OR start_date >= $4::date)`,
		rt.VehicleID, domain.RentalStatusActive, rt.StartDate, rt.EndDate).Scan(&conflicts)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return domain.ErrRentalConflict
	}

	query := `INSERT INTO rentals (id, customer_id, vehicle_id, start_date, end_date, days, total_price, status, actual_return_date, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8, $9, $10, $11, $12) RETURNING created_on::text, updated_on::text`
	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query, rt.ID, rt.CustomerID, rt.VehicleID, rt.StartDate, rt.EndDate, rt.Days, rt.TotalPrice, rt.Status, rt.ActualReturnDate, rt.Notes, now, now).
		Scan(&rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) GetDetailByID(ctx context.Context, id string) (*domain.RentalDetail, error) {
	query := `
		SELECT r.id, r.customer_id, r.vehicle_id, r.start_date::text, r.end_date::text, r.days, r.total_price, r.status,
		       r.actual_return_date::text, r.notes, r.created_on::text, r.updated_on::text,
		       c.name, c.email, v.brand, v.model, v.plate, v.type
		FROM rentals r
		JOIN customers c ON c.id = r.customer_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1`

	d := &domain.RentalDetail{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.CustomerID, &d.VehicleID, &d.StartDate, &d.EndDate, &d.Days, &d.TotalPrice, &d.Status,
		&d.ActualReturnDate, &d.Notes, &d.CreatedOn, &d.UpdatedOn,
		&d.CustomerName, &d.CustomerEmail, &d.VehicleBrand, &d.VehicleModel, &d.VehiclePlate, &d.VehicleType)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET days=$1, total_price=$2, status=$3, actual_return_date=$4, notes=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, rt.Days, rt.TotalPrice, rt.Status, rt.ActualReturnDate, rt.Notes, time.Now().UTC(), rt.ID)
	return err
}

func (r *rentalRepository) List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.CustomerID != "" {
		query += fmt.Sprintf(` AND customer_id = $%d`, argIdx)
		args = append(args, filter.CustomerID)
		argIdx++
	}
	if filter.VehicleID != "" {
		query += fmt.Sprintf(` AND vehicle_id = $%d`, argIdx)
		args = append(args, filter.VehicleID)
		argIdx++
	}
	if filter.FromDate != "" {
		query += fmt.Sprintf(` AND start_date >= $%d::date`, argIdx)
		args = append(args, filter.FromDate)
		argIdx++
	}
	if filter.ToDate != "" {
		query += fmt.Sprintf(` AND start_date <= $%d::date`, argIdx)
		args = append(args, filter.ToDate)
		argIdx++
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) FindActiveByVehicle(ctx context.Context, vehicleID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE vehicle_id = $1 AND status = $2 ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, vehicleID, domain.RentalStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) CountActiveByVehicle(ctx context.Context, vehicleID string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE vehicle_id = $1 AND status = $2`, vehicleID, domain.RentalStatusActive).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountActiveByCustomer(ctx context.Context, customerID string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE customer_id = $1 AND status = $2`, customerID, domain.RentalStatusActive).Scan(&count)
	return count, err
}
