package usecase

import (
	"context"
	"log/slog"

	"mesaPos/internal/modules/orders/application/port"
	"mesaPos/internal/modules/orders/domain"
	realtime "mesaPos/internal/modules/realtime/application/port"
	realtimedomain "mesaPos/internal/modules/realtime/domain"
)

// StatusChanged is the payload broadcast after a successful transition.
type StatusChanged struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// UpdateOrderStatusUseCase validates the requested transition against the
// order state machine and persists it with compare-and-swap so at most one of
// two racing transitions wins.
type UpdateOrderStatusUseCase struct {
	orders    port.OrderRepository
	publisher realtime.Publisher
}

func NewUpdateOrderStatusUseCase(orders port.OrderRepository, publisher realtime.Publisher) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orders: orders, publisher: publisher}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID int, requested string) error {
	next, ok := domain.ParseStatus(requested)
	if !ok {
		return domain.ErrUnknownStatus
	}

	current, err := uc.orders.GetStatus(ctx, orderID)
	if err != nil {
		return err
	}

	if !current.CanTransitionTo(next) {
		return &domain.InvalidTransitionError{Current: current, Requested: next}
	}

	if err := uc.orders.CompareAndSwapStatus(ctx, orderID, current, next); err != nil {
		return err
	}

	uc.publisher.Publish(ctx, realtimedomain.EventOrderUpdated, StatusChanged{
		ID:     orderID,
		Status: string(next),
	})
	slog.Info("order status updated",
		slog.Int("orderId", orderID),
		slog.String("from", string(current)),
		slog.String("to", string(next)))
	return nil
}
