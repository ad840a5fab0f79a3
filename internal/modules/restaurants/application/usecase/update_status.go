package usecase

import (
	"context"
	"log/slog"

	realtime "mesaPos/internal/modules/realtime/application/port"
	realtimedomain "mesaPos/internal/modules/realtime/domain"
	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

// StatusChanged is the payload broadcast after a successful transition.
type StatusChanged struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// UpdateRestaurantStatusUseCase enforces the approval state machine and
// persists transitions with compare-and-swap.
type UpdateRestaurantStatusUseCase struct {
	restaurants port.RestaurantRepository
	publisher   realtime.Publisher
}

func NewUpdateRestaurantStatusUseCase(restaurants port.RestaurantRepository, publisher realtime.Publisher) *UpdateRestaurantStatusUseCase {
	return &UpdateRestaurantStatusUseCase{restaurants: restaurants, publisher: publisher}
}

func (uc *UpdateRestaurantStatusUseCase) Execute(ctx context.Context, restaurantID int, requested string) error {
	next, ok := domain.ParseApprovalStatus(requested)
	if !ok {
		return domain.ErrUnknownStatus
	}

	current, err := uc.restaurants.GetStatus(ctx, restaurantID)
	if err != nil {
		return err
	}

	if !current.CanTransitionTo(next) {
		return &domain.InvalidTransitionError{Current: current, Requested: next}
	}

	if err := uc.restaurants.CompareAndSwapStatus(ctx, restaurantID, current, next); err != nil {
		return err
	}

	uc.publisher.Publish(ctx, realtimedomain.EventRestaurantUpdated, StatusChanged{
		ID:     restaurantID,
		Status: string(next),
	})
	slog.Info("restaurant status updated",
		slog.Int("restaurantId", restaurantID),
		slog.String("from", string(current)),
		slog.String("to", string(next)))
	return nil
}
