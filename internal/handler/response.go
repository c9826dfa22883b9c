package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"chatty/backend/internal/model"
	"chatty/backend/internal/service"
	"chatty/backend/pkg/logger"
)

type errorResponse struct {
	Error         string `json:"error"`
	LimitExceeded bool   `json:"limitExceeded,omitempty"`
}

const quotaExceededMessage = "Daily translation limit exceeded. You can translate up to 15 messages per day."

// writeServiceError maps service sentinel errors onto HTTP status codes.
// Internal detail stays in the log; clients get a stable message per class.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrQuotaExceeded):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: quotaExceededMessage, LimitExceeded: true})
	case errors.Is(err, service.ErrProvider):
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "translation failed"})
	default:
		logger.Error("request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

type userResponse struct {
	ID                    int64   `json:"id"`
	Username              string  `json:"username"`
	Email                 string  `json:"email"`
	FullName              string  `json:"fullName"`
	AvatarURL             *string `json:"avatarUrl,omitempty"`
	TranslationEnabled    bool    `json:"translationEnabled"`
	PreferredLanguage     string  `json:"preferredLanguage"`
	DailyTranslationCount int     `json:"dailyTranslationCount"`
	CreatedAt             string  `json:"createdAt"`
}

func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:                    user.ID,
		Username:              user.Username,
		Email:                 user.Email,
		FullName:              user.FullName,
		AvatarURL:             user.AvatarURL,
		TranslationEnabled:    user.TranslationEnabled,
		PreferredLanguage:     user.PreferredLanguage,
		DailyTranslationCount: user.DailyTranslationCount,
		CreatedAt:             user.CreatedAt.Format(timeLayout),
	}
}

type messageResponse struct {
	ID               int64             `json:"id"`
	SenderID         int64             `json:"senderId"`
	ReceiverID       int64             `json:"receiverId"`
	Text             *string           `json:"text,omitempty"`
	ImageURL         *string           `json:"imageUrl,omitempty"`
	AudioURL         *string           `json:"audioUrl,omitempty"`
	OriginalLanguage string            `json:"originalLanguage"`
	Translations     map[string]string `json:"translations"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

func toMessageResponse(message *model.Message) messageResponse {
	translations := message.Translations
	if translations == nil {
		translations = map[string]string{}
	}
	return messageResponse{
		ID:               message.ID,
		SenderID:         message.SenderID,
		ReceiverID:       message.ReceiverID,
		Text:             message.Text,
		ImageURL:         message.ImageURL,
		AudioURL:         message.AudioURL,
		OriginalLanguage: message.OriginalLanguage,
		Translations:     translations,
		CreatedAt:        message.CreatedAt.Format(timeLayout),
		UpdatedAt:        message.UpdatedAt.Format(timeLayout),
	}
}
