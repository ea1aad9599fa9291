package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

// UserHandler handles the admin-only user directory endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get handles GET /auth/:username (admin only).
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  domain.User
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /auth/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List handles GET /auth (admin only).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "0-based page index"  default(0)
// @Param        size       query     int     false  "Items per page"      default(5)
// @Param        sortBy     query     string  false  "Sort field"          default(username)
// @Param        direction  query     string  false  "asc or desc"         default(desc)
// @Success      200  {object}  paginatedResponse
// @Failure      403  {object}  map[string]string
// @Router       /auth [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := pageRequest(c, "username", true)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPaginatedResponse(result.Items, result.Page, result.TotalPages, result.Total))
}

// Delete handles DELETE /auth/:username (admin only).
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  deleteResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /auth/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: true})
}
