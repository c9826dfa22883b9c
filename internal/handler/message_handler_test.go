package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatty/backend/internal/handler"
	"chatty/backend/internal/model"
	"chatty/backend/internal/service"
	"chatty/backend/internal/service/mock"
)

func testMessage() *model.Message {
	text := "hello"
	return &model.Message{
		ID:               42,
		SenderID:         1,
		ReceiverID:       2,
		Text:             &text,
		OriginalLanguage: model.DefaultLanguage,
		Translations:     map[string]string{},
		CreatedAt:        time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	}
}

func TestMessageHandler_SidebarUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/messages/users", nil)
	c, rec := newAuthedContext(e, req, 1)

	mockService.EXPECT().
		SidebarUsers(gomock.Any(), int64(1)).
		Return([]model.User{{ID: 2, Username: "carol"}}, nil)

	err := h.SidebarUsers(c)
	require.NoError(t, err)

	var resp []handler.UserResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, "carol", resp[0].Username)
}

func TestMessageHandler_Conversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/messages/2", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "2"})

	mockService.EXPECT().
		Conversation(gomock.Any(), int64(1), int64(2)).
		Return([]model.Message{*testMessage()}, nil)

	err := h.Conversation(c)
	require.NoError(t, err)

	var resp []handler.MessageResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, int64(42), resp[0].ID)
}

func TestMessageHandler_Conversation_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/messages/abc", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "abc"})

	err := h.Conversation(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageHandler_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{
		"text": "hello",
	}
	req := newJSONRequest(http.MethodPost, "/api/messages/send/2", reqBody)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "2"})

	mockService.EXPECT().
		Send(gomock.Any(), int64(1), int64(2), service.SendMessageInput{Text: "hello"}).
		Return(testMessage(), nil)

	err := h.Send(c)
	require.NoError(t, err)

	var resp handler.MessageResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, "hello", *resp.Text)
	require.NotNil(t, resp.Translations)
}

func TestMessageHandler_Send_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/messages/send/2", map[string]interface{}{})
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "2"})

	mockService.EXPECT().
		Send(gomock.Any(), int64(1), int64(2), service.SendMessageInput{}).
		Return(nil, service.ErrInvalid)

	err := h.Send(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageHandler_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{"text": "edited"}
	req := newJSONRequest(http.MethodPatch, "/api/messages/edit/42", reqBody)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "42"})

	edited := testMessage()
	editedText := "edited"
	edited.Text = &editedText

	mockService.EXPECT().
		Edit(gomock.Any(), int64(42), "edited").
		Return(edited, nil)

	err := h.Edit(c)
	require.NoError(t, err)

	var resp handler.MessageResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "edited", *resp.Text)
	require.Empty(t, resp.Translations)
}

func TestMessageHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/messages/delete/42", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "42"})

	mockService.EXPECT().
		Delete(gomock.Any(), int64(42)).
		Return(nil)

	err := h.Delete(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMessageHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/messages/delete/42", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "42"})

	mockService.EXPECT().
		Delete(gomock.Any(), int64(42)).
		Return(service.ErrNotFound)

	err := h.Delete(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMessageHandler_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/messages/clear/2", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"id": "2"})

	mockService.EXPECT().
		ClearConversation(gomock.Any(), int64(1), int64(2)).
		Return(int64(7), nil)

	err := h.Clear(c)
	require.NoError(t, err)

	var resp handler.ClearConversationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.EqualValues(t, 7, resp.DeletedCount)
}

func TestMessageHandler_StoreTranslation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{
		"messageId":      42,
		"language":       "Spanish",
		"translatedText": "hola",
	}
	req := newJSONRequest(http.MethodPost, "/api/messages/translation/store", reqBody)
	c, rec := newAuthedContext(e, req, 1)

	mockService.EXPECT().
		StoreTranslation(gomock.Any(), int64(42), "Spanish", "hola").
		Return(nil)

	err := h.StoreTranslation(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMessageHandler_StoreTranslation_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{
		"language":       "Spanish",
		"translatedText": "hola",
	}
	req := newJSONRequest(http.MethodPost, "/api/messages/translation/store", reqBody)
	c, rec := newAuthedContext(e, req, 1)

	err := h.StoreTranslation(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageHandler_GetTranslation_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/messages/translation/42/Spanish", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"messageId": "42", "language": "Spanish"})

	mockService.EXPECT().
		GetTranslation(gomock.Any(), int64(42), "Spanish").
		Return("hola", nil)

	err := h.GetTranslation(c)
	require.NoError(t, err)

	var resp handler.CachedTranslationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "hola", resp.Translation)
	require.True(t, resp.Cached)
}

func TestMessageHandler_GetTranslation_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockMessageService(ctrl)
	h := handler.NewMessageHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/messages/translation/42/Spanish", nil)
	c, rec := newAuthedContext(e, req, 1)
	setPathParams(c, map[string]string{"messageId": "42", "language": "Spanish"})

	mockService.EXPECT().
		GetTranslation(gomock.Any(), int64(42), "Spanish").
		Return("", service.ErrNotFound)

	err := h.GetTranslation(c)
	require.NoError(t, err)

	var resp handler.CachedTranslationResponse
	assertJSONResponse(t, rec, http.StatusNotFound, &resp)
	require.False(t, resp.Cached)
	require.Empty(t, resp.Translation)
}
