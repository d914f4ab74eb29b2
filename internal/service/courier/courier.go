package courier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
)

// Service coordinates courier business logic and orchestrates repository calls.
// Availability is owned by courier assignment, so it cannot be edited here.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a courier for creation.
func validateCreate(c *domain.Courier) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrInvalid)
	}
	if !domain.ValidatePhone(c.Phone) {
		return fmt.Errorf("%w: phone must look like +5511999998888", apperr.ErrInvalid)
	}
	if c.TransportType == "" {
		c.TransportType = domain.TransportTypeMotorcycle
	}
	if !c.TransportType.Valid() {
		return fmt.Errorf("%w: unknown transport type %q", apperr.ErrInvalid, c.TransportType)
	}
	return nil
}

func validateUpdate(u *domain.PartialCourierUpdate) error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: id is required", apperr.ErrInvalid)
	}
	if u.Name == nil && u.Phone == nil && u.TransportType == nil {
		return fmt.Errorf("%w: nothing to update", apperr.ErrInvalid)
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrInvalid)
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return fmt.Errorf("%w: phone must look like +5511999998888", apperr.ErrInvalid)
	}
	if u.TransportType != nil && !u.TransportType.Valid() {
		return fmt.Errorf("%w: unknown transport type %q", apperr.ErrInvalid, *u.TransportType)
	}
	return nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns couriers, optionally only those in status, with optional pagination.
func (s *Service) List(ctx context.Context, status *domain.CourierStatus, limit, offset *int) ([]domain.Courier, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown courier status %q", apperr.ErrInvalid, *status)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, status, limit, offset)
}

// Create persists a new, available courier and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	c.Status = domain.CourierAvailable
	c.CurrentOrderID = nil

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}

// UpdatePartial applies a partial update to a courier. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}
