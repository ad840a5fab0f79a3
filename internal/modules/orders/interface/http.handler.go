package transport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mesaPos/internal/modules/orders/application/usecase"
	"mesaPos/internal/modules/orders/domain"
	"mesaPos/internal/shared/httputil"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
}

// Handler exposes the order surface: create, read, status transition.
type Handler struct {
	create *usecase.CreateOrderUseCase
	get    *usecase.GetOrderUseCase
	update *usecase.UpdateOrderStatusUseCase
	mapper *httputil.ErrorMapper
}

func NewHandler(
	create *usecase.CreateOrderUseCase,
	get *usecase.GetOrderUseCase,
	update *usecase.UpdateOrderStatusUseCase,
) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrUnknownUser, http.StatusBadRequest, "").
		WithMapping(usecase.ErrUnknownRestaurant, http.StatusBadRequest, "").
		WithMapping(domain.ErrItemsRequired, http.StatusBadRequest, "").
		WithMapping(domain.ErrInvalidQuantity, http.StatusBadRequest, "").
		WithMapping(domain.ErrItemsUnavailable, http.StatusBadRequest, "").
		WithMapping(domain.ErrUnknownStatus, http.StatusBadRequest, "").
		WithMapping(domain.ErrInvalidTransition, http.StatusBadRequest, "").
		WithMapping(domain.ErrOrderNotFound, http.StatusNotFound, "").
		WithMapping(domain.ErrConflictingUpdate, http.StatusConflict, "")
	return &Handler{create: create, get: get, update: update, mapper: mapper}
}

// Register mounts the order routes. authGuard applies to the whole group;
// writeGuard additionally protects order creation. Either may be nil.
func (h *Handler) Register(e *echo.Echo, authGuard, writeGuard echo.MiddlewareFunc) {
	g := e.Group("/orders")
	if authGuard != nil {
		g.Use(authGuard)
	}
	var writeGuards []echo.MiddlewareFunc
	if writeGuard != nil {
		writeGuards = append(writeGuards, writeGuard)
	}
	g.POST("", h.CreateOrder, writeGuards...)
	g.GET("/:id", h.GetOrder)
	g.PATCH("/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request payload"})
	}

	view, err := h.create.Execute(c.Request().Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	}

	view, err := h.get.Execute(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request payload"})
	}

	if err := h.update.Execute(c.Request().Context(), id, req.Status); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fail(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("order request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	return c.JSON(info.Status, errorBody{Message: info.Message})
}
