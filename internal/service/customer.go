package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(customer.Email) == "" {
		return fmt.Errorf("%w: customer email is required", domain.ErrInvalidInput)
	}

	_, err := s.customerRepo.GetByEmail(ctx, customer.Email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if customer.NationalID != "" {
		_, err = s.customerRepo.GetByNationalID(ctx, customer.NationalID)
		if err == nil {
			return domain.ErrNationalIDTaken
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}

	customer.ID = uuid.NewString()
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	existing, err := s.GetCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}

	if customer.Email != existing.Email {
		other, err := s.customerRepo.GetByEmail(ctx, customer.Email)
		if err == nil && other.ID != customer.ID {
			return domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}

	// National ID is fixed at registration.
	customer.NationalID = existing.NationalID
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}

	active, err := s.rentalRepo.CountActiveByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrCustomerHasActiveRentals
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, search)
}
