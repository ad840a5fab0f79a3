package usecase

import (
	"context"
	"errors"
	"testing"

	"mesaPos/internal/modules/orders/application/port"
	"mesaPos/internal/modules/orders/domain"
	realtimedomain "mesaPos/internal/modules/realtime/domain"
)

func newCreateOrderFixture() (*CreateOrderUseCase, *fakeOrderRepo, *fakeDirectory, *fakeDirectory, *fakeMenuCatalog, *fakePublisher) {
	repo := &fakeOrderRepo{}
	users := &fakeDirectory{exists: true}
	restaurants := &fakeDirectory{exists: true}
	menu := &fakeMenuCatalog{items: []port.MenuItemRef{
		{ID: 1, Name: "Tacos al Pastor", Price: 45.5},
		{ID: 2, Name: "Agua de Horchata", Price: 20},
	}}
	publisher := &fakePublisher{}
	uc := NewCreateOrderUseCase(repo, users, restaurants, menu, publisher)
	return uc, repo, users, restaurants, menu, publisher
}

func TestCreateOrderSuccess(t *testing.T) {
	t.Parallel()

	uc, repo, _, _, menu, publisher := newCreateOrderFixture()
	view, err := uc.Execute(context.Background(), CreateOrderInput{
		UserID:       7,
		RestaurantID: 3,
		Items: []CreateOrderLine{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID != 101 {
		t.Fatalf("expected assigned id 101, got %d", view.ID)
	}
	if view.Status != string(domain.StatusPending) {
		t.Fatalf("new order must be Pending, got %s", view.Status)
	}
	if view.Total != 2*45.5+20 {
		t.Fatalf("total = %v, expected %v", view.Total, 2*45.5+20)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Items))
	}
	if view.Items[0].UnitPrice != 45.5 || view.Items[0].LineTotal != 91 {
		t.Fatalf("unexpected first line: %#v", view.Items[0])
	}
	if menu.requestedID != 3 {
		t.Fatalf("menu lookup used restaurant %d, expected 3", menu.requestedID)
	}
	if repo.created == nil {
		t.Fatal("order was not persisted")
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected one broadcast, got %d", len(publisher.events))
	}
	evt := publisher.events[0]
	if evt.event != realtimedomain.EventOrderCreated {
		t.Fatalf("unexpected event: %s", evt.event)
	}
	if evt.payload != view {
		t.Fatal("broadcast payload must be the same view returned over HTTP")
	}
}

func TestCreateOrderDuplicateLinesKeptCollapsedLookup(t *testing.T) {
	t.Parallel()

	uc, _, _, _, menu, _ := newCreateOrderFixture()
	menu.items = []port.MenuItemRef{{ID: 1, Name: "Tacos al Pastor", Price: 10}}

	view, err := uc.Execute(context.Background(), CreateOrderInput{
		UserID:       7,
		RestaurantID: 3,
		Items: []CreateOrderLine{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 1, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menu.askedIDs) != 1 {
		t.Fatalf("lookup ids = %v, expected deduplicated [1]", menu.askedIDs)
	}
	if len(view.Items) != 2 {
		t.Fatalf("duplicate request lines must stay separate, got %d", len(view.Items))
	}
	if view.Total != 50 {
		t.Fatalf("total = %v, expected 50", view.Total)
	}
}

func TestCreateOrderValidationOrder(t *testing.T) {
	t.Parallel()

	t.Run("unknown user wins over unknown restaurant", func(t *testing.T) {
		uc, _, users, restaurants, _, _ := newCreateOrderFixture()
		users.exists = false
		restaurants.exists = false
		_, err := uc.Execute(context.Background(), CreateOrderInput{UserID: 99, RestaurantID: 99})
		if !errors.Is(err, ErrUnknownUser) {
			t.Fatalf("expected ErrUnknownUser, got %v", err)
		}
	})

	t.Run("unknown restaurant wins over empty items", func(t *testing.T) {
		uc, _, _, restaurants, _, _ := newCreateOrderFixture()
		restaurants.exists = false
		_, err := uc.Execute(context.Background(), CreateOrderInput{UserID: 7, RestaurantID: 99})
		if !errors.Is(err, ErrUnknownRestaurant) {
			t.Fatalf("expected ErrUnknownRestaurant, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		uc, _, _, _, _, _ := newCreateOrderFixture()
		_, err := uc.Execute(context.Background(), CreateOrderInput{UserID: 7, RestaurantID: 3})
		if !errors.Is(err, domain.ErrItemsRequired) {
			t.Fatalf("expected ErrItemsRequired, got %v", err)
		}
	})

	t.Run("quantity out of range", func(t *testing.T) {
		uc, _, _, _, _, _ := newCreateOrderFixture()
		_, err := uc.Execute(context.Background(), CreateOrderInput{
			UserID:       7,
			RestaurantID: 3,
			Items:        []CreateOrderLine{{MenuItemID: 1, Quantity: 0}},
		})
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestCreateOrderUnavailableItemFailsWholeRequest(t *testing.T) {
	t.Parallel()

	uc, repo, _, _, menu, publisher := newCreateOrderFixture()
	// Only one of the two requested ids resolves.
	menu.items = []port.MenuItemRef{{ID: 1, Name: "Tacos al Pastor", Price: 45.5}}

	_, err := uc.Execute(context.Background(), CreateOrderInput{
		UserID:       7,
		RestaurantID: 3,
		Items: []CreateOrderLine{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 42, Quantity: 1},
		},
	})
	if !errors.Is(err, domain.ErrItemsUnavailable) {
		t.Fatalf("expected ErrItemsUnavailable, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("nothing may be persisted when any item is unavailable")
	}
	if len(publisher.events) != 0 {
		t.Fatal("nothing may be broadcast on failure")
	}
}

func TestCreateOrderRepositoryFailure(t *testing.T) {
	t.Parallel()

	uc, repo, _, _, _, publisher := newCreateOrderFixture()
	repo.createErr = errors.New("insert failed")

	_, err := uc.Execute(context.Background(), CreateOrderInput{
		UserID:       7,
		RestaurantID: 3,
		Items:        []CreateOrderLine{{MenuItemID: 1, Quantity: 1}},
	})
	if err == nil || err.Error() != "insert failed" {
		t.Fatalf("expected repository error, got %v", err)
	}
	if len(publisher.events) != 0 {
		t.Fatal("nothing may be broadcast when the insert fails")
	}
}
