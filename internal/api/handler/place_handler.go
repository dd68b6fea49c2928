package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// PlaceHandler handles HTTP requests for place operations.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// Create handles POST /api/v1/places/.
//
// @Summary      Create a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createPlaceRequest  true   "Place details"
// @Success      201              {object}  domain.PlaceView
// @Failure      400              {object}  errorResponse
// @Router       /places/ [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	var req createPlaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.CreatePlace(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p.View())
}

// List handles GET /api/v1/places/.
//
// @Summary      List places
// @Tags         places
// @Produce      json
// @Success      200  {array}  domain.PlaceView
// @Router       /places/ [get]
func (h *PlaceHandler) List(c echo.Context) error {
	places, err := h.service.GetAllPlaces(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]domain.PlaceView, 0, len(places))
	for _, p := range places {
		out = append(out, p.View())
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/v1/places/:id and returns the expanded detail.
//
// @Summary      Get a place with owner, amenities and reviews
// @Tags         places
// @Produce      json
// @Param        id   path      string  true  "Place id"
// @Success      200  {object}  domain.PlaceDetail
// @Failure      404  {object}  errorResponse
// @Router       /places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	d, err := h.service.GetPlaceDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Update handles PUT /api/v1/places/:id.
//
// @Summary      Update a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Place id"
// @Param        body  body      updatePlaceRequest  true  "Fields to change"
// @Success      200   {object}  domain.PlaceView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /places/{id} [put]
func (h *PlaceHandler) Update(c echo.Context) error {
	var req updatePlaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.UpdatePlace(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.View())
}
