package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"chatty/backend/internal/handler"
	"chatty/backend/internal/service"
	"chatty/backend/pkg/logger"
)

// AuthCookieName is the session cookie inspected by the auth middleware.
const AuthCookieName = handler.AuthCookieName

// ContextUserIDKey is the echo context key holding the authenticated user ID.
const ContextUserIDKey = handler.ContextUserIDKey

// JWTAuthMiddleware rejects requests without a valid session token. The token
// is read from the Authorization header first, then the session cookie.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			userID, err := auth.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			c.Set(ContextUserIDKey, userID)
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// RequestLoggerMiddleware logs one line per request.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Debug("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)
			return err
		}
	}
}
