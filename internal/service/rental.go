package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/pricing"
	"vehicle-rental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		emailSvc:     emailSvc,
	}
}

func vehicleName(v *domain.Vehicle) string {
	return fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.Plate)
}

// hasOverlap reports whether any active rental of the vehicle intersects
// the half-open interval [startDate, endDate). Dates must be pre-parsed.
func (s *rentalService) hasOverlap(ctx context.Context, vehicleID, startDate, endDate string) (bool, error) {
	start, err := pricing.ParseDate(startDate)
	if err != nil {
		return false, err
	}
	end, err := pricing.ParseDate(endDate)
	if err != nil {
		return false, err
	}

	active, err := s.rentalRepo.FindActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	for _, rt := range active {
		rStart, err := pricing.ParseDate(rt.StartDate)
		if err != nil {
			return false, err
		}
		rEnd, err := pricing.ParseDate(rt.EndDate)
		if err != nil {
			return false, err
		}
		if pricing.Overlaps(start, end, rStart, rEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (s *rentalService) CheckAvailability(ctx context.Context, vehicleID, startDate, endDate string) (*domain.VehicleAvailability, error) {
	if _, err := pricing.RentalDays(startDate, endDate); err != nil {
		return nil, err
	}

	result := &domain.VehicleAvailability{VehicleID: vehicleID}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			result.Reason = "vehicle not found"
			return result, nil
		}
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		result.Reason = fmt.Sprintf("vehicle not available - status: %s", vehicle.Status)
		return result, nil
	}

	overlap, err := s.hasOverlap(ctx, vehicleID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		result.Reason = "vehicle already booked for those dates"
		return result, nil
	}

	result.Available = true
	return result, nil
}

func (s *rentalService) QuoteRental(ctx context.Context, vehicleID, startDate, endDate string) (*domain.RentalQuote, error) {
	days, err := pricing.RentalDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}

	q := pricing.PriceRental(vehicle.PricePerDay, vehicle.Type, days)
	return &domain.RentalQuote{
		VehicleID:      vehicle.ID,
		PricePerDay:    vehicle.PricePerDay,
		Days:           days,
		TotalPrice:     q.TotalPrice,
		DiscountAmount: q.DiscountAmount,
		DiscountReason: q.DiscountReason,
	}, nil
}

func (s *rentalService) CreateRental(ctx context.Context, customerID, vehicleID, startDate, endDate, notes string) (*domain.Rental, error) {
	days, err := pricing.RentalDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, &domain.VehicleUnavailableError{Reason: fmt.Sprintf("vehicle not available - status: %s", vehicle.Status)}
	}

	overlap, err := s.hasOverlap(ctx, vehicleID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, &domain.VehicleUnavailableError{Reason: "vehicle already booked for those dates"}
	}

	q := pricing.PriceRental(vehicle.PricePerDay, vehicle.Type, days)

	rental := &domain.Rental{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		TotalPrice: q.TotalPrice,
		Status:     domain.RentalStatusActive,
		Notes:      notes,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// A concurrent create can win the vehicle row lock between our
		// overlap check and the insert's re-check.
		if errors.Is(err, domain.ErrRentalConflict) {
			return nil, &domain.VehicleUnavailableError{Reason: domain.ErrRentalConflict.Error()}
		}
		return nil, err
	}

	_ = s.emailSvc.SendRentalConfirmation(ctx, customer.Email, customer.Name, vehicleName(vehicle), startDate, endDate, rental.TotalPrice)

	return rental, nil
}

func (s *rentalService) ReturnVehicle(ctx context.Context, rentalID, returnDate, notes string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	ret, err := pricing.ParseDate(returnDate)
	if err != nil {
		return nil, err
	}
	start, err := pricing.ParseDate(rental.StartDate)
	if err != nil {
		return nil, err
	}
	if ret.Before(start) {
		return nil, domain.ErrReturnBeforeStart
	}

	// Reprice against the actual duration; an early or late return moves
	// the rental in or out of a discount tier.
	days, err := pricing.RentalDays(rental.StartDate, returnDate)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	q := pricing.PriceRental(vehicle.PricePerDay, vehicle.Type, days)

	rental.Days = days
	rental.TotalPrice = q.TotalPrice
	rental.Status = domain.RentalStatusCompleted
	rental.ActualReturnDate = &returnDate
	if notes != "" {
		rental.Notes = notes
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err == nil {
		_ = s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.Name, vehicleName(vehicle), returnDate, rental.TotalPrice)
	}

	return rental, nil
}

func (s *rentalService) CancelRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotCancellable
	}

	rental.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	if filter.Status != "" && !domain.ValidRentalStatus(filter.Status) {
		return nil, fmt.Errorf("%w: invalid rental status: %s", domain.ErrInvalidInput, filter.Status)
	}
	if filter.FromDate != "" {
		if _, err := pricing.ParseDate(filter.FromDate); err != nil {
			return nil, err
		}
	}
	if filter.ToDate != "" {
		if _, err := pricing.ParseDate(filter.ToDate); err != nil {
			return nil, err
		}
	}
	return s.rentalRepo.List(ctx, filter)
}

func (s *rentalService) GetRentalDetail(ctx context.Context, rentalID string) (*domain.RentalDetail, error) {
	detail, err := s.rentalRepo.GetDetailByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return detail, nil
}
