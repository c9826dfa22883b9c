//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chatty/backend/internal/model"
	"chatty/backend/internal/repository"
	"chatty/backend/pkg/sanitizer"
)

// Realtime event names pushed to the receiving user's socket.
const (
	EventNewMessage          = "newMessage"
	EventMessageEdited       = "messageEdited"
	EventMessageDeleted      = "messageDeleted"
	EventConversationCleared = "conversationCleared"
)

// Notifier pushes realtime events to a connected user. Delivery is best
// effort; users without an open socket miss the event.
type Notifier interface {
	Emit(userID int64, event string, payload interface{})
}

// MessageService implements direct messaging between two users.
type MessageService interface {
	SidebarUsers(ctx context.Context, userID int64) ([]model.User, error)
	Conversation(ctx context.Context, userID, otherID int64) ([]model.Message, error)
	Send(ctx context.Context, senderID, receiverID int64, input SendMessageInput) (*model.Message, error)
	Edit(ctx context.Context, id int64, text string) (*model.Message, error)
	Delete(ctx context.Context, id int64) error
	ClearConversation(ctx context.Context, userA, userB int64) (int64, error)
	GetTranslation(ctx context.Context, messageID int64, language string) (string, error)
	StoreTranslation(ctx context.Context, messageID int64, language, text string) error
}

type SendMessageInput struct {
	Text             string
	ImageURL         string
	AudioURL         string
	OriginalLanguage string
}

type messageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	notifier Notifier
}

// NewMessageService creates a message service. The notifier may be nil, in
// which case no realtime events are emitted.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, notifier Notifier) MessageService {
	return &messageService{messages: messages, users: users, notifier: notifier}
}

// SidebarUsers returns every user except the caller, without secret fields
// (the repository model carries the hash; handlers never serialize it).
func (s *messageService) SidebarUsers(ctx context.Context, userID int64) ([]model.User, error) {
	users, err := s.users.ListOthers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Conversation returns all messages between the two users in insertion order.
func (s *messageService) Conversation(ctx context.Context, userID, otherID int64) ([]model.Message, error) {
	messages, err := s.messages.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}
	return messages, nil
}

// Send stores a new message and notifies the receiver. At least one of text,
// image, or audio must be present.
func (s *messageService) Send(ctx context.Context, senderID, receiverID int64, input SendMessageInput) (*model.Message, error) {
	text := sanitizer.MessageText(input.Text)
	imageURL := strings.TrimSpace(input.ImageURL)
	audioURL := strings.TrimSpace(input.AudioURL)
	if text == "" && imageURL == "" && audioURL == "" {
		return nil, fmt.Errorf("%w: message needs text, image, or audio", ErrInvalid)
	}

	if receiver, err := s.users.GetByID(ctx, receiverID); err != nil {
		return nil, fmt.Errorf("load receiver: %w", err)
	} else if receiver == nil {
		return nil, ErrNotFound
	}

	originalLanguage := sanitizer.Language(input.OriginalLanguage)
	if originalLanguage == "" {
		originalLanguage = model.DefaultLanguage
	}

	message := model.Message{
		SenderID:         senderID,
		ReceiverID:       receiverID,
		OriginalLanguage: originalLanguage,
		Translations:     map[string]string{},
	}
	if text != "" {
		message.Text = &text
	}
	if imageURL != "" {
		message.ImageURL = &imageURL
	}
	if audioURL != "" {
		message.AudioURL = &audioURL
	}

	created, err := s.messages.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.emit(receiverID, EventNewMessage, created)
	return created, nil
}

// Edit replaces the message text. The whole translations map is cleared in the
// same update because cached translations are stale once the text changes.
func (s *messageService) Edit(ctx context.Context, id int64, text string) (*model.Message, error) {
	text = sanitizer.MessageText(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalid)
	}

	updated, err := s.messages.UpdateText(ctx, id, text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("edit message: %w", err)
	}

	s.emit(updated.ReceiverID, EventMessageEdited, updated)
	return updated, nil
}

// Delete removes a single message.
func (s *messageService) Delete(ctx context.Context, id int64) error {
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load message: %w", err)
	}
	if message == nil {
		return ErrNotFound
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}

	s.emit(message.ReceiverID, EventMessageDeleted, map[string]interface{}{"messageId": message.ID})
	return nil
}

// ClearConversation deletes every message between the two users in either
// direction and reports the deleted count.
func (s *messageService) ClearConversation(ctx context.Context, userA, userB int64) (int64, error) {
	if userA == 0 || userB == 0 {
		return 0, fmt.Errorf("%w: both user ids are required", ErrInvalid)
	}

	deleted, err := s.messages.DeleteConversation(ctx, userA, userB)
	if err != nil {
		return 0, fmt.Errorf("clear conversation: %w", err)
	}

	s.emit(userB, EventConversationCleared, map[string]interface{}{"userId": userA})
	return deleted, nil
}

// GetTranslation returns the cached translation for (messageID, language).
// Fails with ErrNotFound when the message is missing or the language has no
// entry; it never invokes the provider.
func (s *messageService) GetTranslation(ctx context.Context, messageID int64, language string) (string, error) {
	language = sanitizer.Language(language)
	if language == "" {
		return "", fmt.Errorf("%w: language is required", ErrInvalid)
	}

	text, ok, err := s.messages.GetTranslation(ctx, messageID, language)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get translation: %w", err)
	}
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

// StoreTranslation upserts one language entry into a message's translation
// map. Last write wins.
func (s *messageService) StoreTranslation(ctx context.Context, messageID int64, language, text string) error {
	language = sanitizer.Language(language)
	text = strings.TrimSpace(text)
	if language == "" || text == "" {
		return fmt.Errorf("%w: language and translated text are required", ErrInvalid)
	}

	if err := s.messages.PutTranslation(ctx, messageID, language, text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("store translation: %w", err)
	}
	return nil
}

func (s *messageService) emit(userID int64, event string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Emit(userID, event, payload)
	}
}
