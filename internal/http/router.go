package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/websocket"

	"chatty/backend/internal/handler"
	"chatty/backend/internal/hub"
	"chatty/backend/internal/service"
)

// NewRouter wires all HTTP routes. Auth register/login/logout are public;
// everything else under /api requires a session, as does the websocket.
func NewRouter(
	authHandler *handler.AuthHandler,
	messageHandler *handler.MessageHandler,
	translationHandler *handler.TranslationHandler,
	authService service.AuthService,
	h *hub.Hub,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	jwt := JWTAuthMiddleware(authService)

	authHandler.RegisterRoutes(api.Group("/auth"))
	authHandler.RegisterProtectedRoutes(api.Group("/auth", jwt))
	messageHandler.RegisterRoutes(api.Group("/messages", jwt))
	translationHandler.RegisterRoutes(api.Group("/translation", jwt))

	if h != nil {
		e.GET("/ws", serveWS(h), jwt)
	}

	registerStatic(e, staticDir)
	return e
}

func serveWS(h *hub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, _ := c.Get(ContextUserIDKey).(int64)
		websocket.Handler(func(ws *websocket.Conn) {
			h.Serve(userID, ws)
		}).ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
