package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"chatty/backend/internal/service"
)

// AuthCookieName is the session cookie carrying the JWT. The middleware also
// accepts the token as a bearer header for non-browser clients.
const AuthCookieName = "chatty_token"

const authCookieTTL = 7 * 24 * time.Hour

// ContextUserIDKey is where the auth middleware stores the caller's user ID.
const ContextUserIDKey = "userID"

// currentUserID returns the authenticated caller's ID set by the middleware.
func currentUserID(c echo.Context) int64 {
	id, _ := c.Get(ContextUserIDKey).(int64)
	return id
}

type AuthHandler struct {
	service service.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type updateProfileRequest struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers the unauthenticated auth endpoints.
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}

// RegisterProtectedRoutes registers the endpoints that require a session.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.PUT("/update-profile", h.UpdateProfile)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	resp, err := h.service.Register(c.Request().Context(), req.Username, req.FullName, req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusOK, authResponse{Token: resp.Token, User: toUserResponse(resp.User)})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	resp, err := h.service.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusOK, authResponse{Token: resp.Token, User: toUserResponse(resp.User)})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), currentUserID(c), req.FullName, req.AvatarURL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(authCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
