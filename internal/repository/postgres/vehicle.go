package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, type, brand, model, year, plate, price_per_day, status, features, created_on::text, updated_on::text`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.Type, &v.Brand, &v.Model, &v.Year, &v.Plate, &v.PricePerDay, &v.Status, &v.Features, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, type, brand, model, year, plate, price_per_day, status, features, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING created_on::text, updated_on::text`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, v.ID, v.Type, v.Brand, v.Model, v.Year, v.Plate, v.PricePerDay, v.Status, v.Features, now, now).
		Scan(&v.CreatedOn, &v.UpdatedOn)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, query, id))
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, query, plate))
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand=$1, model=$2, year=$3, price_per_day=$4, status=$5, features=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, v.Brand, v.Model, v.Year, v.PricePerDay, v.Status, v.Features, time.Now().UTC(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, vehicleType domain.VehicleType, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if vehicleType != "" {
		query += ` AND type = $1`
		args = append(args, vehicleType)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
