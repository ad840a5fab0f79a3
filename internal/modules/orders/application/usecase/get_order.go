package usecase

import (
	"context"

	"mesaPos/internal/modules/orders/application/port"
)

type GetOrderUseCase struct {
	orders port.OrderRepository
}

func NewGetOrderUseCase(orders port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{orders: orders}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID int) (*OrderView, error) {
	order, err := uc.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return NewOrderView(order), nil
}
