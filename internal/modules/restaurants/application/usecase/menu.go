package usecase

import (
	"context"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

// GetMenuUseCase serves the public menu: available items only, fronted by a
// read-through cache. Menu writes are out of scope here, so TTL staleness is
// the only invalidation the cache needs.
type GetMenuUseCase struct {
	restaurants port.RestaurantRepository
	cache       port.MenuCache
}

func NewGetMenuUseCase(restaurants port.RestaurantRepository, cache port.MenuCache) *GetMenuUseCase {
	return &GetMenuUseCase{restaurants: restaurants, cache: cache}
}

func (uc *GetMenuUseCase) Execute(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	if ok, err := uc.restaurants.Exists(ctx, restaurantID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrRestaurantNotFound
	}

	if uc.cache != nil {
		if items, hit := uc.cache.Get(ctx, restaurantID); hit {
			return items, nil
		}
	}

	items, err := uc.restaurants.AvailableMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, restaurantID, items)
	}
	return items, nil
}
