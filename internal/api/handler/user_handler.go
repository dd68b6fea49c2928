package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/v1/users/.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createUserRequest  true   "User details"
// @Success      201              {object}  domain.UserView
// @Failure      400              {object}  errorResponse
// @Router       /users/ [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.service.CreateUniqueUser(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u.View())
}

// List handles GET /api/v1/users/.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.UserView
// @Router       /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.GetUsers(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]domain.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, u.View())
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.UserView
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	u, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u.View())
}

// Update handles PUT /api/v1/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.UserView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.service.UpdateUniqueUser(c.Request().Context(), id, req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u.View())
}
