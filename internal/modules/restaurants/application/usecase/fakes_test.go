package usecase

import (
	"context"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

type fakeRestaurantRepo struct {
	createErr    error
	created      *domain.Restaurant
	createdOwner int

	restaurant *domain.Restaurant
	roles      []domain.UserRole
	getErr     error

	browsed    []domain.Restaurant
	browseErr  error
	lastFilter port.BrowseFilter

	exists    bool
	existsErr error

	updateErr error
	updated   *domain.Restaurant

	status       domain.ApprovalStatus
	getStatusErr error

	casErr      error
	casExpected domain.ApprovalStatus
	casNext     domain.ApprovalStatus
	casCalls    int

	menu    []domain.MenuItem
	menuErr error
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant, ownerUserID int) error {
	if f.createErr != nil {
		return f.createErr
	}
	restaurant.ID = 55
	f.created = restaurant
	f.createdOwner = ownerUserID
	return nil
}

func (f *fakeRestaurantRepo) Get(context.Context, int) (*domain.Restaurant, error) {
	return f.restaurant, f.getErr
}

func (f *fakeRestaurantRepo) GetDetailed(context.Context, int) (*domain.Restaurant, []domain.UserRole, error) {
	return f.restaurant, f.roles, f.getErr
}

func (f *fakeRestaurantRepo) Browse(_ context.Context, filter port.BrowseFilter) ([]domain.Restaurant, error) {
	f.lastFilter = filter
	return f.browsed, f.browseErr
}

func (f *fakeRestaurantRepo) Exists(context.Context, int) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeRestaurantRepo) UpdateDetails(_ context.Context, restaurant *domain.Restaurant) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = restaurant
	return nil
}

func (f *fakeRestaurantRepo) GetStatus(context.Context, int) (domain.ApprovalStatus, error) {
	return f.status, f.getStatusErr
}

func (f *fakeRestaurantRepo) CompareAndSwapStatus(_ context.Context, _ int, expected, next domain.ApprovalStatus) error {
	f.casCalls++
	f.casExpected = expected
	f.casNext = next
	return f.casErr
}

func (f *fakeRestaurantRepo) AvailableMenu(context.Context, int) ([]domain.MenuItem, error) {
	return f.menu, f.menuErr
}

type fakeUserDirectory struct {
	exists bool
	err    error
}

func (f *fakeUserDirectory) Exists(context.Context, int) (bool, error) {
	return f.exists, f.err
}

type fakeMenuCache struct {
	items    []domain.MenuItem
	hit      bool
	getCalls int
	set      []domain.MenuItem
	setID    int
}

func (f *fakeMenuCache) Get(context.Context, int) ([]domain.MenuItem, bool) {
	f.getCalls++
	return f.items, f.hit
}

func (f *fakeMenuCache) Set(_ context.Context, restaurantID int, items []domain.MenuItem) {
	f.setID = restaurantID
	f.set = items
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
