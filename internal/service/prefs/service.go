package prefs

import (
	"context"
	"fmt"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
	"service-gestor/internal/service/lifecycle"
)

// MaxLateTolerance bounds late_tolerance_minutes.
const MaxLateTolerance = 120

type store interface {
	Load() (domain.Preferences, error)
	Save(p domain.Preferences) error
}

// Service reads and writes the gestor preferences.
type Service struct {
	store  store
	logger logx.Logger
}

// NewService creates a Service.
func NewService(s store, logger logx.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// Get returns the current preferences.
func (s *Service) Get(ctx context.Context) (domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preferences{}, err
	}
	p, err := s.store.Load()
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return p, nil
}

// Update validates and stores p.
func (s *Service) Update(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preferences{}, err
	}
	if err := Validate(p); err != nil {
		return domain.Preferences{}, err
	}
	if err := s.store.Save(p); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	s.logger.Info("preferences updated",
		logx.Any("auto_cancel_enabled", p.AutoCancelEnabled),
		logx.Int("late_tolerance_minutes", p.LateToleranceMinutes),
		logx.Int("default_prep_time", p.DefaultPrepTime),
	)
	return p, nil
}

// Validate checks the bounds of every numeric setting.
func Validate(p domain.Preferences) error {
	if p.LateToleranceMinutes < 0 || p.LateToleranceMinutes > MaxLateTolerance {
		return fmt.Errorf("%w: late tolerance must be between 0 and %d minutes", apperr.ErrInvalid, MaxLateTolerance)
	}
	if p.DefaultPrepTime < lifecycle.MinPrepTime || p.DefaultPrepTime > lifecycle.MaxPrepTime {
		return fmt.Errorf("%w: default prep time must be between %d and %d minutes",
			apperr.ErrInvalid, lifecycle.MinPrepTime, lifecycle.MaxPrepTime)
	}
	return nil
}
