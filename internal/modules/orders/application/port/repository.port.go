package port

import (
	"context"

	"mesaPos/internal/modules/orders/domain"
)

// MenuItemRef is the slice of menu data the pricing pipeline needs: identity,
// display name and the current price to snapshot.
type MenuItemRef struct {
	ID    int
	Name  string
	Price float64
}

// OrderRepository persists orders transactionally and serializes status
// writes through compare-and-swap.
type OrderRepository interface {
	// Create inserts the order and its items in one transaction, assigning
	// ID and CreatedAtUtc on the passed order.
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id int) (*domain.Order, error)
	GetStatus(ctx context.Context, id int) (domain.Status, error)
	// CompareAndSwapStatus persists next only if the row still holds expected.
	// Returns domain.ErrOrderNotFound or domain.ErrConflictingUpdate.
	CompareAndSwapStatus(ctx context.Context, id int, expected, next domain.Status) error
}

// UserDirectory answers referential checks against the users table.
type UserDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// RestaurantDirectory answers referential checks against the restaurants table.
type RestaurantDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// MenuCatalog fetches the requested menu items that belong to the restaurant
// and are currently available. Missing, unavailable and cross-restaurant ids
// are simply absent from the result.
type MenuCatalog interface {
	AvailableItems(ctx context.Context, restaurantID int, menuItemIDs []int) ([]MenuItemRef, error)
}
