package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

// paginatedResponse is the page envelope for every listing endpoint.
type paginatedResponse struct {
	Items      any   `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	Last       bool  `json:"last"`
}

func newPaginatedResponse(items any, page, totalPages int, total int64) paginatedResponse {
	return paginatedResponse{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
		Last:       page >= totalPages-1,
	}
}

// pageRequest parses the shared pagination query parameters. Page is 0-based;
// direction defaults per endpoint and anything other than "desc" sorts
// ascending, matching the reference API.
func pageRequest(c echo.Context, defaultSort string, defaultDesc bool) (ports.PageRequest, error) {
	page, err := intQuery(c, "page", 0)
	if err != nil || page < 0 {
		return ports.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "page must be a non-negative integer")
	}

	size, err := intQuery(c, "size", 5)
	if err != nil || size < 1 {
		return ports.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
	}

	sortBy := c.QueryParam("sortBy")
	if sortBy == "" {
		sortBy = defaultSort
	}

	desc := defaultDesc
	if direction := c.QueryParam("direction"); direction != "" {
		desc = strings.EqualFold(direction, "desc")
	}

	return ports.PageRequest{Page: page, Size: size, SortBy: sortBy, Desc: desc}, nil
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
