package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, restaurant *domain.Restaurant, ownerUserID int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO restaurants (name, address, status)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id`,
		restaurant.Name, restaurant.Address, restaurant.Status).
		Scan(&restaurant.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_restaurant_roles (user_id, restaurant_id, role)
		VALUES ($1, $2, $3)`,
		ownerUserID, restaurant.ID, domain.RoleOwner)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(address, ''), status
		FROM restaurants WHERE id = $1`, id).
		Scan(&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *PostgresRepository) GetDetailed(ctx context.Context, id int) (*domain.Restaurant, []domain.UserRole, error) {
	restaurant, err := r.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT urr.user_id, u.name, urr.role
		FROM user_restaurant_roles urr
		JOIN users u ON u.id = urr.user_id
		WHERE urr.restaurant_id = $1
		ORDER BY urr.id`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	roles := []domain.UserRole{}
	for rows.Next() {
		var role domain.UserRole
		if err := rows.Scan(&role.UserID, &role.UserName, &role.Role); err != nil {
			return nil, nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return restaurant, roles, nil
}

// Browse composes the directory query: every name term as an ILIKE clause,
// the requested status filter as written, then the hard Active restriction.
func (r *PostgresRepository) Browse(ctx context.Context, filter port.BrowseFilter) ([]domain.Restaurant, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, COALESCE(address, ''), status FROM restaurants WHERE 1=1`)

	args := make([]interface{}, 0, len(filter.NameTerms)+4)
	for _, term := range filter.NameTerms {
		args = append(args, escapeLikeTerm(term))
		fmt.Fprintf(&sb, ` AND name ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		fmt.Fprintf(&sb, ` AND status = $%d`, len(args))
	}
	args = append(args, domain.StatusActive)
	fmt.Fprintf(&sb, ` AND status = $%d`, len(args))

	sb.WriteString(` ORDER BY name ASC`)
	args = append(args, filter.Offset)
	fmt.Fprintf(&sb, ` OFFSET $%d`, len(args))
	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := rows.Scan(&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.Status); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikeTerm neutralizes LIKE metacharacters so a search term always
// matches as a literal substring.
func escapeLikeTerm(term string) string {
	return likeEscaper.Replace(term)
}

func (r *PostgresRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) UpdateDetails(ctx context.Context, restaurant *domain.Restaurant) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE restaurants SET name = $1, address = NULLIF($2, '')
		WHERE id = $3
		RETURNING id, name, COALESCE(address, ''), status`,
		restaurant.Name, restaurant.Address, restaurant.ID).
		Scan(&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRestaurantNotFound
	}
	return err
}

func (r *PostgresRepository) GetStatus(ctx context.Context, id int) (domain.ApprovalStatus, error) {
	var status domain.ApprovalStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM restaurants WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrRestaurantNotFound
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

func (r *PostgresRepository) CompareAndSwapStatus(ctx context.Context, id int, expected, next domain.ApprovalStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE restaurants SET status = $1 WHERE id = $2 AND status = $3`,
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

func (r *PostgresRepository) AvailableMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price, is_available
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.IsAvailable); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ port.RestaurantRepository = (*PostgresRepository)(nil)
