package infrastructure

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesaPos/internal/modules/orders/application/port"
	"mesaPos/internal/modules/orders/domain"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts the order and its lines in one transaction so concurrent
// menu price changes cannot split a snapshot.
func (r *PostgresRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, restaurant_id, total, status, created_at_utc)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at_utc`,
		order.UserID, order.RestaurantID, order.Total, order.Status).
		Scan(&order.ID, &order.CreatedAtUtc)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)`,
			order.ID, item.MenuItemID, item.Quantity, item.UnitPrice)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, restaurant_id, total, status, created_at_utc
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Total, &order.Status, &order.CreatedAtUtc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT oi.menu_item_id, mi.name, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) GetStatus(ctx context.Context, id int) (domain.Status, error) {
	var status domain.Status
	err := r.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

// CompareAndSwapStatus guards the write with the expected current status so
// that of two racing transitions at most one succeeds.
func (r *PostgresRepository) CompareAndSwapStatus(ctx context.Context, id int, expected, next domain.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`,
		next, id, expected)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		_, reReadErr := r.GetStatus(ctx, id)
		return swapFailure(reReadErr)
	}
	return nil
}

// swapFailure interprets the status re-read after a zero-row update: a
// missing row or store error surfaces as-is rather than masquerading as a
// conflict; a clean re-read means the row changed under us.
func swapFailure(reReadErr error) error {
	if reReadErr != nil {
		return reReadErr
	}
	return domain.ErrConflictingUpdate
}

var _ port.OrderRepository = (*PostgresRepository)(nil)
