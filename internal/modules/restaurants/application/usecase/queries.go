package usecase

import (
	"context"

	"mesaPos/internal/modules/restaurants/application/port"
)

type GetRestaurantUseCase struct {
	restaurants port.RestaurantRepository
}

func NewGetRestaurantUseCase(restaurants port.RestaurantRepository) *GetRestaurantUseCase {
	return &GetRestaurantUseCase{restaurants: restaurants}
}

func (uc *GetRestaurantUseCase) Execute(ctx context.Context, id int) (*RestaurantSummaryView, error) {
	restaurant, err := uc.restaurants.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newSummaryView(restaurant)
	return &view, nil
}

type GetRestaurantDetailUseCase struct {
	restaurants port.RestaurantRepository
}

func NewGetRestaurantDetailUseCase(restaurants port.RestaurantRepository) *GetRestaurantDetailUseCase {
	return &GetRestaurantDetailUseCase{restaurants: restaurants}
}

func (uc *GetRestaurantDetailUseCase) Execute(ctx context.Context, id int) (*RestaurantDetailView, error) {
	restaurant, roles, err := uc.restaurants.GetDetailed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetailView{
		ID:        restaurant.ID,
		Name:      restaurant.Name,
		Address:   restaurant.Address,
		Status:    string(restaurant.Status),
		UserRoles: roles,
	}, nil
}
