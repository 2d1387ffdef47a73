package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	rentalRepo  repository.RentalRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, rentalRepo repository.RentalRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		rentalRepo:  rentalRepo,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if !domain.ValidVehicleType(vehicle.Type) {
		return fmt.Errorf("%w: invalid vehicle type: %s", domain.ErrInvalidInput, vehicle.Type)
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	if !domain.ValidVehicleStatus(vehicle.Status) {
		return fmt.Errorf("%w: invalid vehicle status: %s", domain.ErrInvalidInput, vehicle.Status)
	}
	if vehicle.PricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidInput)
	}

	_, err := s.vehicleRepo.GetByPlate(ctx, vehicle.Plate)
	if err == nil {
		return domain.ErrPlateTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	vehicle.ID = uuid.NewString()
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	existing, err := s.GetVehicle(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if !domain.ValidVehicleStatus(vehicle.Status) {
		return fmt.Errorf("%w: invalid vehicle status: %s", domain.ErrInvalidInput, vehicle.Status)
	}
	if vehicle.PricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidInput)
	}

	// Type and plate are fixed at registration.
	vehicle.Type = existing.Type
	vehicle.Plate = existing.Plate
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if _, err := s.GetVehicle(ctx, id); err != nil {
		return err
	}

	active, err := s.rentalRepo.CountActiveByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrVehicleHasActiveRentals
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, vehicleType domain.VehicleType, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	if vehicleType != "" && !domain.ValidVehicleType(vehicleType) {
		return nil, fmt.Errorf("%w: invalid vehicle type: %s", domain.ErrInvalidInput, vehicleType)
	}
	if status != "" && !domain.ValidVehicleStatus(status) {
		return nil, fmt.Errorf("%w: invalid vehicle status: %s", domain.ErrInvalidInput, status)
	}
	return s.vehicleRepo.List(ctx, vehicleType, status)
}
