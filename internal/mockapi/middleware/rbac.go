package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/movaro/console/internal/core/domain"
)

// RBAC restricts routes behind Auth to the given roles. Denials surface as
// domain.ErrForbidden and are rendered by the central error handler.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return fmt.Errorf("%w: role %q", domain.ErrForbidden, role)
			}
			return next(c)
		}
	}
}
