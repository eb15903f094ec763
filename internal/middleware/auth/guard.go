package auth

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"product-manager/internal/apperr"
	"product-manager/internal/repo"
	"product-manager/pkg/logging"
	"product-manager/pkg/tokens"
)

const bearerPrefix = "Bearer "

// RoleGuard authenticates requests with a bearer access token and authorizes
// them against a role set. The token carries only the subject; the role is
// resolved from the user record on every request, so a role change or a
// disabled account takes effect without waiting for token expiry.
type RoleGuard struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (g *RoleGuard) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			l := logging.FromContext(ctx).With("middleware", "auth.require_role")

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				l.Warn("auth_failed", "status", 401, "reason", "missing bearer token")
				return apperr.Unauthorized("auth.token.missing")
			}

			claims, err := tokens.AccessClaimsFromToken(strings.TrimPrefix(header, bearerPrefix), g.JWTSecret)
			if err != nil {
				l.Warn("auth_failed", "status", 401, "reason", "invalid token", "error", err)
				return apperr.Unauthorized("auth.token.invalid")
			}

			user, err := g.Repo.FindUserByUsername(ctx, claims.Subject)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					l.Warn("auth_failed", "status", 401, "reason", "token subject unknown")
					return apperr.Unauthorized("user.not.found", claims.Subject)
				}
				return err
			}
			if !user.Enabled {
				l.Warn("auth_failed", "status", 401, "reason", "account disabled", "username", user.Username)
				return apperr.Unauthorized("auth.token.invalid")
			}

			for _, role := range roles {
				if user.Role == role {
					c.Set("username", user.Username)
					c.Set("role", user.Role)
					return next(c)
				}
			}

			l.Warn("auth_failed", "status", 403, "reason", "insufficient role", "username", user.Username, "role", user.Role)
			return apperr.Forbidden("auth.forbidden")
		}
	}
}
