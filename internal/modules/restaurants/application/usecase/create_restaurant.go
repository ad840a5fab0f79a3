package usecase

import (
	"context"
	"errors"
	"log/slog"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

var ErrUnknownOwner = errors.New("owner user does not exist")

type CreateRestaurantInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	UserID  int    `json:"userId"`
}

// CreateRestaurantUseCase registers a restaurant in Pending status and grants
// the creating user the Owner role.
type CreateRestaurantUseCase struct {
	restaurants port.RestaurantRepository
	users       port.UserDirectory
}

func NewCreateRestaurantUseCase(restaurants port.RestaurantRepository, users port.UserDirectory) *CreateRestaurantUseCase {
	return &CreateRestaurantUseCase{restaurants: restaurants, users: users}
}

func (uc *CreateRestaurantUseCase) Execute(ctx context.Context, input CreateRestaurantInput) (*RestaurantCreateView, error) {
	if err := domain.ValidateDetails(input.Name, input.Address); err != nil {
		return nil, err
	}

	if ok, err := uc.users.Exists(ctx, input.UserID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrUnknownOwner
	}

	restaurant := &domain.Restaurant{
		Name:    input.Name,
		Address: input.Address,
		Status:  domain.StatusPending,
	}
	if err := uc.restaurants.Create(ctx, restaurant, input.UserID); err != nil {
		return nil, err
	}

	slog.Info("restaurant created",
		slog.Int("restaurantId", restaurant.ID),
		slog.Int("ownerUserId", input.UserID))

	return &RestaurantCreateView{
		ID:      restaurant.ID,
		Name:    restaurant.Name,
		Address: restaurant.Address,
		Status:  string(restaurant.Status),
	}, nil
}
