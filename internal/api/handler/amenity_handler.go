package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// AmenityHandler handles HTTP requests for amenity operations.
type AmenityHandler struct {
	service ports.AmenityService
}

func NewAmenityHandler(service ports.AmenityService) *AmenityHandler {
	return &AmenityHandler{service: service}
}

// Create handles POST /api/v1/amenities/.
//
// @Summary      Create an amenity
// @Tags         amenities
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string          false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      amenityRequest  true   "Amenity details"
// @Success      201              {object}  domain.AmenityView
// @Failure      400              {object}  errorResponse
// @Router       /amenities/ [post]
func (h *AmenityHandler) Create(c echo.Context) error {
	var req amenityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.service.CreateAmenity(c.Request().Context(), domain.AmenityInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a.View())
}

// List handles GET /api/v1/amenities/.
//
// @Summary      List amenities
// @Tags         amenities
// @Produce      json
// @Success      200  {array}  domain.AmenityView
// @Router       /amenities/ [get]
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.service.GetAllAmenities(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]domain.AmenityView, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, a.View())
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/v1/amenities/:id.
//
// @Summary      Get an amenity by id
// @Tags         amenities
// @Produce      json
// @Param        id   path      string  true  "Amenity id"
// @Success      200  {object}  domain.AmenityView
// @Failure      404  {object}  errorResponse
// @Router       /amenities/{id} [get]
func (h *AmenityHandler) Get(c echo.Context) error {
	a, err := h.service.GetAmenity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a.View())
}

// Update handles PUT /api/v1/amenities/:id.
//
// @Summary      Update an amenity
// @Tags         amenities
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Amenity id"
// @Param        body  body      updateAmenityRequest  true  "Fields to change"
// @Success      200   {object}  domain.AmenityView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /amenities/{id} [put]
func (h *AmenityHandler) Update(c echo.Context) error {
	var req updateAmenityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.service.UpdateAmenity(c.Request().Context(), c.Param("id"), domain.AmenityPatch{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a.View())
}
