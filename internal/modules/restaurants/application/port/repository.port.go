package port

import (
	"context"

	"mesaPos/internal/modules/restaurants/domain"
)

// BrowseFilter carries the directory query after request-level normalization.
type BrowseFilter struct {
	// NameTerms must all match the restaurant name (case-insensitive
	// substring, AND semantics).
	NameTerms []string
	// Status is the caller-requested filter. The directory always restricts
	// to Active regardless; the field is applied anyway to mirror the
	// documented behavior of the surface this replaces.
	Status *domain.ApprovalStatus
	Offset int
	Limit  int
}

type RestaurantRepository interface {
	// Create inserts the restaurant as Pending and grants the owner role to
	// the creating user in the same transaction.
	Create(ctx context.Context, restaurant *domain.Restaurant, ownerUserID int) error
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	GetDetailed(ctx context.Context, id int) (*domain.Restaurant, []domain.UserRole, error)
	Browse(ctx context.Context, filter BrowseFilter) ([]domain.Restaurant, error)
	Exists(ctx context.Context, id int) (bool, error)
	// UpdateDetails overwrites name and address only.
	UpdateDetails(ctx context.Context, restaurant *domain.Restaurant) error
	GetStatus(ctx context.Context, id int) (domain.ApprovalStatus, error)
	// CompareAndSwapStatus persists next only if the row still holds expected.
	CompareAndSwapStatus(ctx context.Context, id int, expected, next domain.ApprovalStatus) error
	// AvailableMenu returns the available items of the restaurant.
	AvailableMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

// UserDirectory answers referential checks for owner grants.
type UserDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// MenuCache fronts the public menu read path. Both operations are
// best-effort: a cache failure degrades to the database, never to an error.
type MenuCache interface {
	Get(ctx context.Context, restaurantID int) ([]domain.MenuItem, bool)
	Set(ctx context.Context, restaurantID int, items []domain.MenuItem)
}
