package usecase

import (
	"context"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type BrowseInput struct {
	Name     string
	Status   string
	Page     int
	PageSize int
}

// BrowseUseCase lists restaurants for the public directory. The requested
// status filter is honored as written, but the directory additionally pins
// results to Active, so the filter can only ever narrow to nothing.
type BrowseUseCase struct {
	restaurants port.RestaurantRepository
}

func NewBrowseUseCase(restaurants port.RestaurantRepository) *BrowseUseCase {
	return &BrowseUseCase{restaurants: restaurants}
}

func (uc *BrowseUseCase) Execute(ctx context.Context, input BrowseInput) ([]RestaurantSummaryView, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := port.BrowseFilter{
		NameTerms: domain.SearchTerms(input.Name),
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
	}
	if status, ok := domain.ParseApprovalStatus(input.Status); ok {
		filter.Status = &status
	}

	restaurants, err := uc.restaurants.Browse(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]RestaurantSummaryView, 0, len(restaurants))
	for i := range restaurants {
		views = append(views, newSummaryView(&restaurants[i]))
	}
	return views, nil
}
