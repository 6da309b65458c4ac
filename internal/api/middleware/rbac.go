package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movielobby/catalog-api/internal/api/metrics"
	"github.com/movielobby/catalog-api/internal/core/domain"
)

// RequireRole gates a route on the identity attached by Auth. A request
// whose role is not in the allowed set is rejected with 403; the check is a
// pure function of the attached identity and has no other side effects.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("role_denied").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		}
	}
}
