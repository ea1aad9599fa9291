package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/NatePombi/inventory-management-system-api/internal/api/metrics"
	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
	"github.com/NatePombi/inventory-management-system-api/internal/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	PrincipalKey = "principal"
	RawTokenKey  = "raw_token"
)

// Auth is the request principal resolver: it requires a bearer token,
// validates it, rejects deny-listed tokens and re-resolves the subject
// against the user directory so the principal's role is live rather than
// whatever the token claims. Fail-closed: any failure short-circuits with 401.
func Auth(tokens *token.Service, users ports.UserRepository, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := c.Request().Context()

			revoked, err := denylist.IsRevoked(ctx, raw)
			if err != nil {
				return err
			}
			if revoked {
				metrics.AuthRejectionsTotal.WithLabelValues("revoked").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			user, err := users.FindByUsername(ctx, claims.Username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token subject no longer exists")
				}
				return err
			}

			c.Set(PrincipalKey, domain.Principal{Username: user.Username, Role: user.Role})
			c.Set(RawTokenKey, raw)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.AuthRejectionsTotal.WithLabelValues("invalid_header").Inc()
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
