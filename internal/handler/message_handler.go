package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"chatty/backend/internal/service"
)

type MessageHandler struct {
	service service.MessageService
}

type sendMessageRequest struct {
	Text             string `json:"text"`
	ImageURL         string `json:"imageUrl"`
	AudioURL         string `json:"audioUrl"`
	OriginalLanguage string `json:"originalLanguage"`
}

type editMessageRequest struct {
	Text string `json:"text"`
}

type storeTranslationRequest struct {
	MessageID      int64  `json:"messageId"`
	Language       string `json:"language"`
	TranslatedText string `json:"translatedText"`
}

type cachedTranslationResponse struct {
	Translation string `json:"translation"`
	Cached      bool   `json:"cached"`
}

type clearConversationResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.SidebarUsers)
	g.POST("/send/:id", h.Send)
	g.PATCH("/edit/:id", h.Edit)
	g.DELETE("/delete/:id", h.Delete)
	g.DELETE("/clear/:id", h.Clear)
	g.POST("/translation/store", h.StoreTranslation)
	g.GET("/translation/:messageId/:language", h.GetTranslation)
	// last: catches any other /:id as a conversation lookup
	g.GET("/:id", h.Conversation)
}

func (h *MessageHandler) SidebarUsers(c echo.Context) error {
	users, err := h.service.SidebarUsers(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]userResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *MessageHandler) Conversation(c echo.Context) error {
	otherID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	messages, err := h.service.Conversation(c.Request().Context(), currentUserID(c), otherID)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]messageResponse, 0, len(messages))
	for i := range messages {
		response = append(response, toMessageResponse(&messages[i]))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *MessageHandler) Send(c echo.Context) error {
	receiverID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	message, err := h.service.Send(c.Request().Context(), currentUserID(c), receiverID, service.SendMessageInput{
		Text:             req.Text,
		ImageURL:         req.ImageURL,
		AudioURL:         req.AudioURL,
		OriginalLanguage: req.OriginalLanguage,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toMessageResponse(message))
}

func (h *MessageHandler) Edit(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	var req editMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	message, err := h.service.Edit(c.Request().Context(), id, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toMessageResponse(message))
}

func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MessageHandler) Clear(c echo.Context) error {
	otherID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	deleted, err := h.service.ClearConversation(c.Request().Context(), currentUserID(c), otherID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, clearConversationResponse{DeletedCount: deleted})
}

func (h *MessageHandler) StoreTranslation(c echo.Context) error {
	var req storeTranslationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.MessageID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.StoreTranslation(c.Request().Context(), req.MessageID, req.Language, req.TranslatedText); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTranslation serves the persisted cache only. A miss is a 404 with
// cached=false; it never calls the provider and never touches quota.
func (h *MessageHandler) GetTranslation(c echo.Context) error {
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	language := c.Param("language")

	text, err := h.service.GetTranslation(c.Request().Context(), messageID, language)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, cachedTranslationResponse{Cached: false})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, cachedTranslationResponse{Translation: text, Cached: true})
}
