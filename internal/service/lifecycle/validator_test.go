package lifecycle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/service/lifecycle"
)

type edge struct {
	from domain.OrderStatus
	to   domain.OrderStatus
}

// edges reachable by an operator with guards satisfied for a delivery order.
var operatorEdges = []edge{
	{domain.OrderNew, domain.OrderAccepted},
	{domain.OrderNew, domain.OrderCancelled},
	{domain.OrderAccepted, domain.OrderCancelled},
	{domain.OrderAccepted, domain.OrderPreparing},
	{domain.OrderPreparing, domain.OrderReady},
	{domain.OrderReady, domain.OrderOutForDelivery},
	{domain.OrderPickedUp, domain.OrderOutForDelivery},
	{domain.OrderOutForDelivery, domain.OrderDelivered},
	{domain.OrderArrivedAtCustomer, domain.OrderDelivered},
}

// steps only the assigned courier reports from the street.
var courierSteps = []edge{
	{domain.OrderGoingToStore, domain.OrderArrivedAtStore},
	{domain.OrderArrivedAtStore, domain.OrderPickedUp},
	{domain.OrderOutForDelivery, domain.OrderArrivedAtCustomer},
}

func isOperatorEdge(e edge) bool {
	for _, v := range operatorEdges {
		if v == e {
			return true
		}
	}
	return false
}

func operatorRequest(to domain.OrderStatus) lifecycle.Request {
	return lifecycle.Request{
		To:       to,
		PrepTime: 20,
		Reason:   "out of stock",
		Origin:   lifecycle.OriginOperator,
	}
}

func TestCanTransition_OnlyListedPairsAreAccepted(t *testing.T) {
	t.Parallel()

	for _, from := range domain.OrderStatuses() {
		for _, to := range domain.OrderStatuses() {
			o := domain.Order{Status: from, DeliveryMethod: domain.DeliveryMethodDelivery}
			err := lifecycle.CanTransition(o, operatorRequest(to))
			if isOperatorEdge(edge{from, to}) {
				require.NoErrorf(t, err, "%s -> %s", from, to)
			} else {
				require.Errorf(t, err, "%s -> %s must be rejected", from, to)
			}
		}
	}
}

func TestCanTransition_CourierSteps(t *testing.T) {
	t.Parallel()

	for _, e := range courierSteps {
		o := domain.Order{Status: e.from, DeliveryMethod: domain.DeliveryMethodDelivery}

		err := lifecycle.CanTransition(o, lifecycle.Request{To: e.to, Origin: lifecycle.OriginCourier})
		require.NoErrorf(t, err, "courier %s -> %s", e.from, e.to)

		err = lifecycle.CanTransition(o, operatorRequest(e.to))
		require.ErrorIsf(t, err, lifecycle.ErrCourierOnly, "operator %s -> %s", e.from, e.to)
	}

	// couriers still close their own deliveries, operators can do it from the board
	for _, origin := range []lifecycle.Origin{lifecycle.OriginCourier, lifecycle.OriginOperator} {
		o := domain.Order{Status: domain.OrderArrivedAtCustomer, DeliveryMethod: domain.DeliveryMethodDelivery}
		require.NoError(t, lifecycle.CanTransition(o, lifecycle.Request{To: domain.OrderDelivered, Origin: origin}))
	}
}

func TestCanTransition_TerminalRejectsEveryOrigin(t *testing.T) {
	t.Parallel()

	origins := []lifecycle.Origin{
		lifecycle.OriginOperator, lifecycle.OriginCourier,
		lifecycle.OriginAssignment, lifecycle.OriginSystem,
	}
	for _, terminal := range []domain.OrderStatus{domain.OrderDelivered, domain.OrderCancelled} {
		for _, to := range domain.OrderStatuses() {
			for _, origin := range origins {
				req := lifecycle.Request{To: to, PrepTime: 20, Reason: "exceeded preparation time", Origin: origin}
				err := lifecycle.CanTransition(domain.Order{Status: terminal}, req)
				require.ErrorIs(t, err, lifecycle.ErrTerminal)
				require.ErrorIs(t, err, apperr.ErrConflict)
			}
		}
	}
}

func TestCanTransition_PrepTimeBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prep int
		ok   bool
	}{
		{4, false}, {5, true}, {180, true}, {181, false}, {0, false},
	}
	for _, tc := range cases {
		req := lifecycle.Request{To: domain.OrderAccepted, PrepTime: tc.prep, Origin: lifecycle.OriginOperator}
		err := lifecycle.CanTransition(domain.Order{Status: domain.OrderNew}, req)
		if tc.ok {
			require.NoError(t, err, tc.prep)
		} else {
			require.ErrorIs(t, err, lifecycle.ErrPrepTimeOutOfRange, tc.prep)
			require.ErrorIs(t, err, apperr.ErrInvalid)
		}
	}
}

func TestCanTransition_ReasonBoundaries(t *testing.T) {
	t.Parallel()

	for _, from := range []domain.OrderStatus{domain.OrderNew, domain.OrderAccepted} {
		o := domain.Order{Status: from}

		err := lifecycle.CanTransition(o, lifecycle.Request{To: domain.OrderCancelled, Reason: "abcd", Origin: lifecycle.OriginOperator})
		require.ErrorIs(t, err, lifecycle.ErrReasonTooShort)

		err = lifecycle.CanTransition(o, lifecycle.Request{To: domain.OrderCancelled, Reason: "abcde", Origin: lifecycle.OriginOperator})
		require.NoError(t, err)

		err = lifecycle.CanTransition(o, lifecycle.Request{To: domain.OrderCancelled, Reason: "  ab  ", Origin: lifecycle.OriginOperator})
		require.ErrorIs(t, err, lifecycle.ErrReasonTooShort)

		err = lifecycle.CanTransition(o, lifecycle.Request{To: domain.OrderCancelled, Reason: "sem pão", Origin: lifecycle.OriginOperator})
		require.NoError(t, err)
	}
}

func TestCanTransition_DeliveryMethodGuards(t *testing.T) {
	t.Parallel()

	pickup := domain.Order{Status: domain.OrderReady, DeliveryMethod: domain.DeliveryMethodPickup}
	delivery := domain.Order{Status: domain.OrderReady, DeliveryMethod: domain.DeliveryMethodDelivery}

	require.NoError(t, lifecycle.CanTransition(pickup, operatorRequest(domain.OrderDelivered)))
	require.ErrorIs(t, lifecycle.CanTransition(pickup, operatorRequest(domain.OrderOutForDelivery)), lifecycle.ErrNotDeliveryOrder)

	require.NoError(t, lifecycle.CanTransition(delivery, operatorRequest(domain.OrderOutForDelivery)))
	require.ErrorIs(t, lifecycle.CanTransition(delivery, operatorRequest(domain.OrderDelivered)), lifecycle.ErrDeliveryNeedsRoute)
}

func TestCanTransition_GoingToStoreOnlyThroughAssignment(t *testing.T) {
	t.Parallel()

	o := domain.Order{Status: domain.OrderReady, DeliveryMethod: domain.DeliveryMethodDelivery}

	err := lifecycle.CanTransition(o, operatorRequest(domain.OrderGoingToStore))
	require.ErrorIs(t, err, lifecycle.ErrAssignmentOnly)

	err = lifecycle.CanTransition(o, lifecycle.Request{To: domain.OrderGoingToStore, Origin: lifecycle.OriginAssignment})
	require.NoError(t, err)
}

func TestCanTransition_SystemCancelBypassesLengthGuard(t *testing.T) {
	t.Parallel()

	for _, from := range domain.OrderStatuses() {
		if from.Terminal() {
			continue
		}
		req := lifecycle.Request{To: domain.OrderCancelled, Reason: "late", Origin: lifecycle.OriginSystem}
		require.NoError(t, lifecycle.CanTransition(domain.Order{Status: from}, req), from)
	}

	empty := lifecycle.Request{To: domain.OrderCancelled, Reason: strings.Repeat(" ", 3), Origin: lifecycle.OriginSystem}
	require.Error(t, lifecycle.CanTransition(domain.Order{Status: domain.OrderAccepted}, empty))
}

func TestNextStatuses(t *testing.T) {
	t.Parallel()

	require.ElementsMatch(t,
		[]domain.OrderStatus{domain.OrderAccepted, domain.OrderCancelled},
		lifecycle.NextStatuses(domain.OrderNew, lifecycle.OriginOperator),
	)
	require.Equal(t,
		[]domain.OrderStatus{domain.OrderGoingToStore},
		lifecycle.NextStatuses(domain.OrderReady, lifecycle.OriginAssignment),
	)
	require.Empty(t, lifecycle.NextStatuses(domain.OrderDelivered, lifecycle.OriginOperator))
	require.Empty(t, lifecycle.NextStatuses(domain.OrderGoingToStore, lifecycle.OriginOperator))
	require.Equal(t,
		[]domain.OrderStatus{domain.OrderArrivedAtStore},
		lifecycle.NextStatuses(domain.OrderGoingToStore, lifecycle.OriginCourier),
	)
}
