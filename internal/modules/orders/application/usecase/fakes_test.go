package usecase

import (
	"context"
	"time"

	"mesaPos/internal/modules/orders/application/port"
	"mesaPos/internal/modules/orders/domain"
)

type fakeOrderRepo struct {
	createErr error
	created   *domain.Order

	order  *domain.Order
	getErr error

	status       domain.Status
	getStatusErr error

	casErr      error
	casExpected domain.Status
	casNext     domain.Status
	casCalls    int
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = 101
	order.CreatedAtUtc = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	f.created = order
	return nil
}

func (f *fakeOrderRepo) Get(context.Context, int) (*domain.Order, error) {
	return f.order, f.getErr
}

func (f *fakeOrderRepo) GetStatus(context.Context, int) (domain.Status, error) {
	return f.status, f.getStatusErr
}

func (f *fakeOrderRepo) CompareAndSwapStatus(_ context.Context, _ int, expected, next domain.Status) error {
	f.casCalls++
	f.casExpected = expected
	f.casNext = next
	return f.casErr
}

type fakeDirectory struct {
	exists bool
	err    error
}

func (f *fakeDirectory) Exists(context.Context, int) (bool, error) {
	return f.exists, f.err
}

type fakeMenuCatalog struct {
	items       []port.MenuItemRef
	err         error
	requestedID int
	askedIDs    []int
}

func (f *fakeMenuCatalog) AvailableItems(_ context.Context, restaurantID int, ids []int) ([]port.MenuItemRef, error) {
	f.requestedID = restaurantID
	f.askedIDs = ids
	return f.items, f.err
}

type publishedEvent struct {
	event   string
	payload interface{}
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) Publish(_ context.Context, event string, payload interface{}) {
	f.events = append(f.events, publishedEvent{event: event, payload: payload})
}
