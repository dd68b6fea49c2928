package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

const msgReviewDeleted = "Review deleted successfully"

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /api/v1/reviews/.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string               false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createReviewRequest  true   "Review details"
// @Success      201              {object}  domain.ReviewView
// @Failure      400              {object}  errorResponse
// @Router       /reviews/ [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.service.CreateReview(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r.View())
}

// List handles GET /api/v1/reviews/.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.ReviewView
// @Router       /reviews/ [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.GetAllReviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewViews(reviews))
}

// ListByPlace handles GET /api/v1/places/:id/reviews.
//
// @Summary      List the reviews of a place
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Place id"
// @Success      200  {array}   domain.ReviewView
// @Failure      404  {object}  errorResponse
// @Router       /places/{id}/reviews [get]
func (h *ReviewHandler) ListByPlace(c echo.Context) error {
	reviews, err := h.service.GetReviewsByPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewViews(reviews))
}

// Get handles GET /api/v1/reviews/:id.
//
// @Summary      Get a review by id
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  domain.ReviewView
// @Failure      404  {object}  errorResponse
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	r, err := h.service.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.View())
}

// Update handles PUT /api/v1/reviews/:id.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Review id"
// @Param        body  body      updateReviewRequest  true  "Fields to change"
// @Success      200   {object}  domain.ReviewView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	var req updateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.service.UpdateReview(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.View())
}

// Delete handles DELETE /api/v1/reviews/:id.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msgReviewDeleted})
}

func reviewViews(reviews []*domain.Review) []domain.ReviewView {
	out := make([]domain.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.View())
	}
	return out
}
