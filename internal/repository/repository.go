package repository

import (
	"context"

	"vehicle-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, vehicleType domain.VehicleType, status domain.VehicleStatus) ([]domain.Vehicle, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) ([]domain.Customer, error)
}

type RentalRepository interface {
	// Create inserts the rental inside a transaction that locks the
	// vehicle row and re-checks the overlap predicate, so two
	// concurrent bookings for the same vehicle cannot both commit.
	// A lost race surfaces as domain.ErrRentalConflict.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	GetDetailByID(ctx context.Context, id string) (*domain.RentalDetail, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error)
	FindActiveByVehicle(ctx context.Context, vehicleID string) ([]domain.Rental, error)
	CountActiveByVehicle(ctx context.Context, vehicleID string) (int32, error)
	CountActiveByCustomer(ctx context.Context, customerID string) (int32, error)
}
