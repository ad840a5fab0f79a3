package domain

import (
	"errors"
	"fmt"
	"time"
)

// MaxQuantity bounds a single order line.
const MaxQuantity = 9999

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemsRequired     = errors.New("items are required")
	ErrInvalidQuantity   = fmt.Errorf("quantity must be between 1 and %d", MaxQuantity)
	ErrItemsUnavailable  = errors.New("one or more menu items are invalid or not available for this restaurant")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrConflictingUpdate = errors.New("order status changed concurrently")

	// ErrInvalidTransition is the errors.Is target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError names the exact rejected move.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Order is priced and persisted atomically with its items; total and unit
// prices are immutable after creation.
type Order struct {
	ID           int         `json:"id"`
	UserID       int         `json:"userId"`
	RestaurantID int         `json:"restaurantId"`
	CreatedAtUtc time.Time   `json:"createdAtUtc"`
	Total        float64     `json:"total"`
	Status       Status      `json:"status"`
	Items        []OrderItem `json:"items"`
}

// OrderItem captures the menu item's price at order-creation time; later menu
// price changes never affect historical orders.
type OrderItem struct {
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// LineTotal is quantity times the snapshotted unit price.
func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// ValidateQuantity checks the per-line quantity bounds.
func ValidateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}
