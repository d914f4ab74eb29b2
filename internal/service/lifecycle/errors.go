package lifecycle

import (
	"fmt"

	"service-gestor/internal/apperr"
)

// Guard failures. Each wraps an apperr sentinel so transport layers can map them.
var (
	ErrTerminal             = fmt.Errorf("%w: order is already finished", apperr.ErrConflict)
	ErrTransitionNotAllowed = fmt.Errorf("%w: transition not allowed", apperr.ErrInvalid)
	ErrPrepTimeOutOfRange   = fmt.Errorf("%w: prep time must be between %d and %d minutes", apperr.ErrInvalid, MinPrepTime, MaxPrepTime)
	ErrReasonTooShort       = fmt.Errorf("%w: rejection reason must have at least %d characters", apperr.ErrInvalid, MinReasonLength)
	ErrNotDeliveryOrder     = fmt.Errorf("%w: only delivery orders go out for delivery", apperr.ErrInvalid)
	ErrDeliveryNeedsRoute   = fmt.Errorf("%w: delivery orders must go out for delivery first", apperr.ErrInvalid)
	ErrAssignmentOnly       = fmt.Errorf("%w: dispatch happens through courier assignment", apperr.ErrInvalid)
	ErrCourierOnly          = fmt.Errorf("%w: only the assigned courier reports this step", apperr.ErrInvalid)
	ErrNotReady             = fmt.Errorf("%w: order must be ready first", apperr.ErrInvalid)
	ErrNotInDelivery        = fmt.Errorf("%w: order must be in delivery first", apperr.ErrInvalid)
	ErrUnknownStatus        = fmt.Errorf("%w: unknown order status", apperr.ErrInvalid)
)
