package infrastructure

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mesaPos/internal/modules/orders/application/port"
)

// MenuCatalog answers availability lookups against the menu_items table.
type MenuCatalog struct {
	pool *pgxpool.Pool
}

func NewMenuCatalog(pool *pgxpool.Pool) *MenuCatalog {
	return &MenuCatalog{pool: pool}
}

// AvailableItems returns only items that belong to the restaurant and are
// currently available; callers compare counts to detect invalid ids.
func (c *MenuCatalog) AvailableItems(ctx context.Context, restaurantID int, ids []int) ([]port.MenuItemRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := c.pool.Query(ctx, `
		SELECT id, name, price
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available AND id = ANY($2)
		ORDER BY id`, restaurantID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]port.MenuItemRef, 0, len(ids))
	for rows.Next() {
		var item port.MenuItemRef
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ port.MenuCatalog = (*MenuCatalog)(nil)
