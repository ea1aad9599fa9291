package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NatePombi/inventory-management-system-api/internal/api/middleware"
	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call: its presence proves the resolver ran.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || principal.Username == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}

// ctxRawToken returns the raw bearer token the Auth middleware validated.
func ctxRawToken(c echo.Context) (string, error) {
	raw, ok := c.Get(middleware.RawTokenKey).(string)
	if !ok || raw == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return raw, nil
}
