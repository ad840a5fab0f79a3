package usecase

import (
	"time"

	"mesaPos/internal/modules/orders/domain"
)

// OrderLineView is one priced line of the order response.
type OrderLineView struct {
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}

// OrderView is the order payload returned over HTTP and broadcast on
// OrderCreated; both surfaces carry the exact same shape.
type OrderView struct {
	ID           int             `json:"id"`
	Status       string          `json:"status"`
	Total        float64         `json:"total"`
	CreatedAtUtc time.Time       `json:"createdAtUtc"`
	Items        []OrderLineView `json:"items"`
}

func NewOrderView(order *domain.Order) *OrderView {
	view := &OrderView{
		ID:           order.ID,
		Status:       string(order.Status),
		Total:        order.Total,
		CreatedAtUtc: order.CreatedAtUtc,
		Items:        make([]OrderLineView, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, OrderLineView{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.LineTotal(),
		})
	}
	return view
}
