package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenUserIDKey holds the subject claim of the caller's bearer token.
const TokenUserIDKey = "token_user_id"

// RequireBearer rejects requests without a bearer token. The token itself is
// issued and verified by the identity provider; only its subject is extracted
// here so handlers can log when it disagrees with the request body.
func RequireBearer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := jwt.MapClaims{}
			if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
				if sub, err := claims.GetSubject(); err == nil {
					c.Set(TokenUserIDKey, sub)
				}
			}

			return next(c)
		}
	}
}
