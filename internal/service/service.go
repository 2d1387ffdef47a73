package service

import (
	"context"

	"vehicle-rental-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password, fullName string, role domain.UserRole) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, string, *domain.User, error) // access, refresh
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
	ListVehicles(ctx context.Context, vehicleType domain.VehicleType, status domain.VehicleStatus) ([]domain.Vehicle, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, search string) ([]domain.Customer, error)
}

type RentalService interface {
	// CheckAvailability never fails on business grounds; an unavailable
	// vehicle comes back as Available=false with a reason. Only malformed
	// dates or storage trouble produce an error.
	CheckAvailability(ctx context.Context, vehicleID, startDate, endDate string) (*domain.VehicleAvailability, error)
	QuoteRental(ctx context.Context, vehicleID, startDate, endDate string) (*domain.RentalQuote, error)
	CreateRental(ctx context.Context, customerID, vehicleID, startDate, endDate, notes string) (*domain.Rental, error)
	ReturnVehicle(ctx context.Context, rentalID, returnDate, notes string) (*domain.Rental, error)
	CancelRental(ctx context.Context, rentalID string) (*domain.Rental, error)
	ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error)
	GetRentalDetail(ctx context.Context, rentalID string) (*domain.RentalDetail, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, toEmail, customerName, vehicleName, startDate, endDate string, totalPrice float64) error
	SendReturnReceipt(ctx context.Context, toEmail, customerName, vehicleName, returnDate string, totalPrice float64) error
	SendOverdueReminder(ctx context.Context, toEmail, customerName, vehicleName, endDate string) error
	SendFleetSummary(ctx context.Context, toEmail string, totalVehicles, activeRentals int32, activeRevenue float64) error
}
