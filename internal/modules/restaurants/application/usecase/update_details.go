package usecase

import (
	"context"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

type UpdateDetailsInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UpdateRestaurantDetailsUseCase rewrites name and address; status is never
// touched here.
type UpdateRestaurantDetailsUseCase struct {
	restaurants port.RestaurantRepository
}

func NewUpdateRestaurantDetailsUseCase(restaurants port.RestaurantRepository) *UpdateRestaurantDetailsUseCase {
	return &UpdateRestaurantDetailsUseCase{restaurants: restaurants}
}

func (uc *UpdateRestaurantDetailsUseCase) Execute(ctx context.Context, id int, input UpdateDetailsInput) (*RestaurantSummaryView, error) {
	if err := domain.ValidateDetails(input.Name, input.Address); err != nil {
		return nil, err
	}

	restaurant := &domain.Restaurant{ID: id, Name: input.Name, Address: input.Address}
	if err := uc.restaurants.UpdateDetails(ctx, restaurant); err != nil {
		return nil, err
	}

	view := newSummaryView(restaurant)
	return &view, nil
}
