package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chatty/backend/internal/service"
)

type TranslationHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	MessageID      *int64 `json:"messageId"`
}

type translateResponse struct {
	TranslatedText        string `json:"translatedText"`
	TargetLanguage        string `json:"targetLanguage"`
	Cached                bool   `json:"cached"`
	RemainingTranslations int    `json:"remainingTranslations"`
}

type translationStatsResponse struct {
	DailyTranslationCount int    `json:"dailyTranslationCount"`
	RemainingTranslations int    `json:"remainingTranslations"`
	TranslationEnabled    bool   `json:"translationEnabled"`
	PreferredLanguage     string `json:"preferredLanguage"`
}

type updateTranslationSettingsRequest struct {
	TranslationEnabled *bool   `json:"translationEnabled"`
	PreferredLanguage  *string `json:"preferredLanguage"`
}

type cachedBatchRequest struct {
	MessageIDs     []int64 `json:"messageIds"`
	TargetLanguage string  `json:"targetLanguage"`
}

type cachedBatchResponse struct {
	Translations map[int64]string `json:"translations"`
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/stats", h.Stats)
	g.PUT("/settings", h.UpdateSettings)
	g.POST("/cached", h.CachedBatch)
}

func (h *TranslationHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.service.Translate(c.Request().Context(), currentUserID(c), req.Text, req.TargetLanguage, req.MessageID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{
		TranslatedText:        result.TranslatedText,
		TargetLanguage:        result.TargetLanguage,
		Cached:                result.Cached,
		RemainingTranslations: result.Remaining,
	})
}

func (h *TranslationHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translationStatsResponse{
		DailyTranslationCount: stats.DailyTranslationCount,
		RemainingTranslations: stats.RemainingTranslations,
		TranslationEnabled:    stats.TranslationEnabled,
		PreferredLanguage:     stats.PreferredLanguage,
	})
}

func (h *TranslationHandler) UpdateSettings(c echo.Context) error {
	var req updateTranslationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	user, err := h.service.UpdateSettings(c.Request().Context(), currentUserID(c), req.TranslationEnabled, req.PreferredLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *TranslationHandler) CachedBatch(c echo.Context) error {
	var req cachedBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	translations, err := h.service.CachedBatch(c.Request().Context(), req.MessageIDs, req.TargetLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}
	if translations == nil {
		translations = map[int64]string{}
	}
	return c.JSON(http.StatusOK, cachedBatchResponse{Translations: translations})
}
