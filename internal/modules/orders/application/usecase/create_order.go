package usecase

import (
	"context"
	"errors"
	"log/slog"

	"mesaPos/internal/modules/orders/application/port"
	"mesaPos/internal/modules/orders/domain"
	realtime "mesaPos/internal/modules/realtime/application/port"
	realtimedomain "mesaPos/internal/modules/realtime/domain"
)

var (
	ErrUnknownUser       = errors.New("user does not exist")
	ErrUnknownRestaurant = errors.New("restaurant does not exist")
)

type CreateOrderLine struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

type CreateOrderInput struct {
	UserID       int               `json:"userId"`
	RestaurantID int               `json:"restaurantId"`
	Items        []CreateOrderLine `json:"items"`
}

// CreateOrderUseCase runs the validation and pricing pipeline: referential
// checks fail fast in a fixed order, menu lookups are all-or-nothing, unit
// prices are snapshotted inside the same transaction that inserts the order.
type CreateOrderUseCase struct {
	orders      port.OrderRepository
	users       port.UserDirectory
	restaurants port.RestaurantDirectory
	menu        port.MenuCatalog
	publisher   realtime.Publisher
}

func NewCreateOrderUseCase(
	orders port.OrderRepository,
	users port.UserDirectory,
	restaurants port.RestaurantDirectory,
	menu port.MenuCatalog,
	publisher realtime.Publisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orders:      orders,
		users:       users,
		restaurants: restaurants,
		menu:        menu,
		publisher:   publisher,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*OrderView, error) {
	if ok, err := uc.users.Exists(ctx, input.UserID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrUnknownUser
	}

	if ok, err := uc.restaurants.Exists(ctx, input.RestaurantID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrUnknownRestaurant
	}

	if len(input.Items) == 0 {
		return nil, domain.ErrItemsRequired
	}
	for _, line := range input.Items {
		if err := domain.ValidateQuantity(line.Quantity); err != nil {
			return nil, err
		}
	}

	distinct := distinctMenuItemIDs(input.Items)
	available, err := uc.menu.AvailableItems(ctx, input.RestaurantID, distinct)
	if err != nil {
		return nil, err
	}
	// All-or-nothing: any missing, unavailable or cross-restaurant id fails
	// the whole request without per-item diagnostics.
	if len(available) != len(distinct) {
		return nil, domain.ErrItemsUnavailable
	}

	byID := make(map[int]port.MenuItemRef, len(available))
	for _, item := range available {
		byID[item.ID] = item
	}

	order := &domain.Order{
		UserID:       input.UserID,
		RestaurantID: input.RestaurantID,
		Status:       domain.StatusPending,
		Items:        make([]domain.OrderItem, 0, len(input.Items)),
	}
	for _, line := range input.Items {
		ref := byID[line.MenuItemID]
		item := domain.OrderItem{
			MenuItemID: ref.ID,
			Name:       ref.Name,
			Quantity:   line.Quantity,
			UnitPrice:  ref.Price,
		}
		order.Items = append(order.Items, item)
		order.Total += item.LineTotal()
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	view := NewOrderView(order)

	// Fire-and-forget: the order is committed, listeners get a best-effort ping.
	uc.publisher.Publish(ctx, realtimedomain.EventOrderCreated, view)
	slog.Info("order created",
		slog.Int("orderId", order.ID),
		slog.Int("restaurantId", order.RestaurantID),
		slog.Float64("total", order.Total))

	return view, nil
}

func distinctMenuItemIDs(lines []CreateOrderLine) []int {
	seen := make(map[int]struct{}, len(lines))
	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.MenuItemID]; dup {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}
