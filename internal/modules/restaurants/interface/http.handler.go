package transport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mesaPos/internal/modules/restaurants/application/usecase"
	"mesaPos/internal/modules/restaurants/domain"
	"mesaPos/internal/shared/httputil"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
}

// Handler exposes the restaurant surface: create, browse, read, detail,
// details update, status transition and the public menu.
type Handler struct {
	create        *usecase.CreateRestaurantUseCase
	browse        *usecase.BrowseUseCase
	get           *usecase.GetRestaurantUseCase
	detail        *usecase.GetRestaurantDetailUseCase
	updateDetails *usecase.UpdateRestaurantDetailsUseCase
	updateStatus  *usecase.UpdateRestaurantStatusUseCase
	menu          *usecase.GetMenuUseCase
	mapper        *httputil.ErrorMapper
}

func NewHandler(
	create *usecase.CreateRestaurantUseCase,
	browse *usecase.BrowseUseCase,
	get *usecase.GetRestaurantUseCase,
	detail *usecase.GetRestaurantDetailUseCase,
	updateDetails *usecase.UpdateRestaurantDetailsUseCase,
	updateStatus *usecase.UpdateRestaurantStatusUseCase,
	menu *usecase.GetMenuUseCase,
) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrUnknownOwner, http.StatusBadRequest, "").
		WithMapping(domain.ErrInvalidName, http.StatusBadRequest, "").
		WithMapping(domain.ErrInvalidAddress, http.StatusBadRequest, "").
		WithMapping(domain.ErrUnknownStatus, http.StatusBadRequest, "").
		WithMapping(domain.ErrInvalidTransition, http.StatusBadRequest, "").
		WithMapping(domain.ErrRestaurantNotFound, http.StatusNotFound, "").
		WithMapping(domain.ErrConflictingUpdate, http.StatusConflict, "")
	return &Handler{
		create:        create,
		browse:        browse,
		get:           get,
		detail:        detail,
		updateDetails: updateDetails,
		updateStatus:  updateStatus,
		menu:          menu,
		mapper:        mapper,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	g := e.Group("/restaurants")
	g.POST("", h.CreateRestaurant)
	g.GET("", h.BrowseRestaurants)
	g.GET("/:id", h.GetRestaurant)
	g.GET("/:id/detailed", h.GetRestaurantDetail)
	g.PATCH("/:id", h.UpdateDetails)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.GET("/:id/menu", h.GetMenu)
}

func (h *Handler) CreateRestaurant(c echo.Context) error {
	var input usecase.CreateRestaurantInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request payload"})
	}

	view, err := h.create.Execute(c.Request().Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) BrowseRestaurants(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	views, err := h.browse.Execute(c.Request().Context(), usecase.BrowseInput{
		Name:     c.QueryParam("name"),
		Status:   c.QueryParam("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetRestaurant(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "restaurant not found"})
	}

	view, err := h.get.Execute(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) GetRestaurantDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "restaurant not found"})
	}

	view, err := h.detail.Execute(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateDetails(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "restaurant not found"})
	}

	var input usecase.UpdateDetailsInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request payload"})
	}

	view, err := h.updateDetails.Execute(c.Request().Context(), id, input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "restaurant not found"})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request payload"})
	}

	if err := h.updateStatus.Execute(c.Request().Context(), id, req.Status); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetMenu(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Message: "restaurant not found"})
	}

	items, err := h.menu.Execute(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) fail(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("restaurant request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	return c.JSON(info.Status, errorBody{Message: info.Message})
}
