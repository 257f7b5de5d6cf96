package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/userdept/admin-system/internal/api/metrics"
	"github.com/userdept/admin-system/internal/core/ports"
)

// Auth validates the bearer JWT, consults the revocation blacklist and
// injects claims into context. Requests without a valid credential never
// reach the handler: the resulting 401 is what tells clients to tear down
// their session.
func Auth(jwtSecret string, blacklist ports.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if blacklist != nil {
				revoked, err := blacklist.IsRevoked(c.Request().Context(), parts[1])
				if err == nil && revoked {
					metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
				}
			}

			c.Set("username", claims["username"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
