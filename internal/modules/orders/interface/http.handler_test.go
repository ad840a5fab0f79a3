package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"mesaPos/internal/modules/orders/application/port"
	"mesaPos/internal/modules/orders/application/usecase"
	"mesaPos/internal/modules/orders/domain"
)

type stubOrderRepo struct {
	order        *domain.Order
	getErr       error
	status       domain.Status
	getStatusErr error
	casErr       error
}

func (s *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = 101
	order.CreatedAtUtc = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return nil
}

func (s *stubOrderRepo) Get(context.Context, int) (*domain.Order, error) {
	return s.order, s.getErr
}

func (s *stubOrderRepo) GetStatus(context.Context, int) (domain.Status, error) {
	return s.status, s.getStatusErr
}

func (s *stubOrderRepo) CompareAndSwapStatus(context.Context, int, domain.Status, domain.Status) error {
	return s.casErr
}

type stubDirectory struct{ exists bool }

func (s stubDirectory) Exists(context.Context, int) (bool, error) { return s.exists, nil }

type stubCatalog struct{ items []port.MenuItemRef }

func (s stubCatalog) AvailableItems(context.Context, int, []int) ([]port.MenuItemRef, error) {
	return s.items, nil
}

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, string, interface{}) {}

func newTestServer(repo *stubOrderRepo, users, restaurants stubDirectory, catalog stubCatalog) *echo.Echo {
	e := echo.New()
	NewHandler(
		usecase.NewCreateOrderUseCase(repo, users, restaurants, catalog, stubPublisher{}),
		usecase.NewGetOrderUseCase(repo),
		usecase.NewUpdateOrderStatusUseCase(repo, stubPublisher{}),
	).Register(e, nil, nil)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderEndpoint(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	catalog := stubCatalog{items: []port.MenuItemRef{{ID: 1, Name: "Tacos al Pastor", Price: 45.5}}}
	e := newTestServer(repo, stubDirectory{exists: true}, stubDirectory{exists: true}, catalog)

	rec := doJSON(e, http.MethodPost, "/orders", `{"userId":7,"restaurantId":3,"items":[{"menuItemId":1,"quantity":2}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, expected 201; body %s", rec.Code, rec.Body.String())
	}

	var view usecase.OrderView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if view.ID != 101 || view.Status != "Pending" || view.Total != 91 {
		t.Fatalf("unexpected view: %#v", view)
	}
}

func TestCreateOrderEndpointFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		users       stubDirectory
		restaurants stubDirectory
		catalog     stubCatalog
		body        string
		expected    int
	}{
		{
			name:        "malformed json",
			users:       stubDirectory{exists: true},
			restaurants: stubDirectory{exists: true},
			body:        `{"userId":`,
			expected:    http.StatusBadRequest,
		},
		{
			name:        "unknown user",
			users:       stubDirectory{exists: false},
			restaurants: stubDirectory{exists: true},
			body:        `{"userId":99,"restaurantId":3,"items":[{"menuItemId":1,"quantity":1}]}`,
			expected:    http.StatusBadRequest,
		},
		{
			name:        "unavailable item",
			users:       stubDirectory{exists: true},
			restaurants: stubDirectory{exists: true},
			catalog:     stubCatalog{},
			body:        `{"userId":7,"restaurantId":3,"items":[{"menuItemId":42,"quantity":1}]}`,
			expected:    http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestServer(&stubOrderRepo{}, tc.users, tc.restaurants, tc.catalog)
			rec := doJSON(e, http.MethodPost, "/orders", tc.body)
			if rec.Code != tc.expected {
				t.Fatalf("status = %d, expected %d; body %s", rec.Code, tc.expected, rec.Body.String())
			}
		})
	}
}

func TestGetOrderEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		repo := &stubOrderRepo{order: &domain.Order{
			ID:     101,
			Status: domain.StatusPending,
			Total:  91,
			Items:  []domain.OrderItem{{MenuItemID: 1, Name: "Tacos al Pastor", Quantity: 2, UnitPrice: 45.5}},
		}}
		e := newTestServer(repo, stubDirectory{}, stubDirectory{}, stubCatalog{})
		rec := doJSON(e, http.MethodGet, "/orders/101", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubOrderRepo{getErr: domain.ErrOrderNotFound}
		e := newTestServer(repo, stubDirectory{}, stubDirectory{}, stubCatalog{})
		rec := doJSON(e, http.MethodGet, "/orders/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, expected 404", rec.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		e := newTestServer(&stubOrderRepo{}, stubDirectory{}, stubDirectory{}, stubCatalog{})
		rec := doJSON(e, http.MethodGet, "/orders/abc", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, expected 404", rec.Code)
		}
	})
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		repo     *stubOrderRepo
		body     string
		expected int
		message  string
	}{
		{
			name:     "accepted",
			repo:     &stubOrderRepo{status: domain.StatusPending},
			body:     `{"status":"Confirmed"}`,
			expected: http.StatusNoContent,
		},
		{
			name:     "unknown status",
			repo:     &stubOrderRepo{status: domain.StatusPending},
			body:     `{"status":"Delivered"}`,
			expected: http.StatusBadRequest,
		},
		{
			name:     "illegal transition",
			repo:     &stubOrderRepo{status: domain.StatusCompleted},
			body:     `{"status":"Pending"}`,
			expected: http.StatusBadRequest,
			message:  "cannot change status from Completed to Pending",
		},
		{
			name:     "not found",
			repo:     &stubOrderRepo{getStatusErr: domain.ErrOrderNotFound},
			body:     `{"status":"Confirmed"}`,
			expected: http.StatusNotFound,
		},
		{
			name:     "concurrent update",
			repo:     &stubOrderRepo{status: domain.StatusPending, casErr: domain.ErrConflictingUpdate},
			body:     `{"status":"Confirmed"}`,
			expected: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestServer(tc.repo, stubDirectory{}, stubDirectory{}, stubCatalog{})
			rec := doJSON(e, http.MethodPatch, "/orders/101/status", tc.body)
			if rec.Code != tc.expected {
				t.Fatalf("status = %d, expected %d; body %s", rec.Code, tc.expected, rec.Body.String())
			}
			if tc.message != "" {
				var body struct {
					Message string `json:"message"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid error body: %v", err)
				}
				if body.Message != tc.message {
					t.Fatalf("message = %q, expected %q", body.Message, tc.message)
				}
			}
		})
	}
}
