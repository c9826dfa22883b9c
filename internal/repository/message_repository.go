//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"chatty/backend/internal/model"
	"chatty/backend/pkg/snowflake"
)

// MessageRepository defines the interface for message storage. Translations
// live in a JSON map column on the message row, so clearing them on edit is a
// single field replacement rather than a join-table sweep.
type MessageRepository interface {
	Create(ctx context.Context, message model.Message) (*model.Message, error)
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	ListConversation(ctx context.Context, userA, userB int64) ([]model.Message, error)
	UpdateText(ctx context.Context, id int64, text string) (*model.Message, error)
	Delete(ctx context.Context, id int64) error
	DeleteConversation(ctx context.Context, userA, userB int64) (int64, error)
	GetTranslation(ctx context.Context, id int64, language string) (string, bool, error)
	PutTranslation(ctx context.Context, id int64, language, text string) error
	CachedTranslations(ctx context.Context, ids []int64, language string) (map[int64]string, error)
}

type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

const messageColumns = `id, sender_id, receiver_id, text, image_url, audio_url,
	original_language, translations, created_at, updated_at`

// Create inserts a new message with an empty translations map.
func (r *messageRepository) Create(ctx context.Context, message model.Message) (*model.Message, error) {
	message.ID = snowflake.NextID()
	now := time.Now().UTC()
	message.CreatedAt = now
	message.UpdatedAt = now
	if message.OriginalLanguage == "" {
		message.OriginalLanguage = model.DefaultLanguage
	}
	if message.Translations == nil {
		message.Translations = map[string]string{}
	}

	translations, err := json.Marshal(message.Translations)
	if err != nil {
		return nil, fmt.Errorf("marshal translations: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, text, image_url, audio_url,
			original_language, translations, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, message.ID, message.SenderID, message.ReceiverID,
		nullableString(message.Text), nullableString(message.ImageURL), nullableString(message.AudioURL),
		message.OriginalLanguage, string(translations), formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// GetByID retrieves a message by ID. Returns nil when the message does not exist.
func (r *messageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	message, err := scanMessage(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return message, nil
}

// ListConversation retrieves all messages between two users, in either
// direction, in insertion order.
func (r *messageRepository) ListConversation(ctx context.Context, userA, userB int64) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY id
	`, userA, userB, userB, userA)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *message)
	}
	return messages, rows.Err()
}

// UpdateText replaces the message text and clears the whole translations map in
// one update: translations are derivative of the text and are stale after an
// edit. Returns the updated message.
func (r *messageRepository) UpdateText(ctx context.Context, id int64, text string) (*model.Message, error) {
	now := formatTime(time.Now())
	result, err := r.db.ExecContext(ctx, `
		UPDATE messages SET text = ?, translations = '{}', updated_at = ? WHERE id = ?
	`, text, now, id)
	if err != nil {
		return nil, err
	}
	if err := requireRow(result); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a message by ID.
func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// DeleteConversation removes every message between two users in either
// direction and reports how many rows were deleted.
func (r *messageRepository) DeleteConversation(ctx context.Context, userA, userB int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
	`, userA, userB, userB, userA)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetTranslation returns the cached translation for (id, language), if any.
// It never reaches out to a provider.
func (r *messageRepository) GetTranslation(ctx context.Context, id int64, language string) (string, bool, error) {
	message, err := r.GetByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	if message == nil {
		return "", false, sql.ErrNoRows
	}
	text, ok := message.TranslationFor(language)
	return text, ok, nil
}

// PutTranslation upserts one language entry into the message's translations
// map. Last write for a given (id, language) wins.
func (r *messageRepository) PutTranslation(ctx context.Context, id int64, language, text string) error {
	message, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return sql.ErrNoRows
	}

	if message.Translations == nil {
		message.Translations = map[string]string{}
	}
	message.Translations[language] = text

	translations, err := json.Marshal(message.Translations)
	if err != nil {
		return fmt.Errorf("marshal translations: %w", err)
	}

	now := formatTime(time.Now())
	result, err := r.db.ExecContext(ctx, `
		UPDATE messages SET translations = ?, updated_at = ? WHERE id = ?
	`, string(translations), now, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// CachedTranslations returns, for the given message IDs, the subset that has a
// cached entry for the language. IDs without an entry are simply absent.
func (r *messageRepository) CachedTranslations(ctx context.Context, ids []int64, language string) (map[int64]string, error) {
	cached := make(map[int64]string)
	if len(ids) == 0 {
		return cached, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, translations FROM messages WHERE id IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		translations, err := unmarshalTranslations(raw)
		if err != nil {
			return nil, err
		}
		if text, ok := translations[language]; ok {
			cached[id] = text
		}
	}
	return cached, rows.Err()
}

func scanMessage(row rowScanner) (*model.Message, error) {
	var m model.Message
	var text, imageURL, audioURL sql.NullString
	var rawTranslations string
	var createdAt, updatedAt string
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &text, &imageURL, &audioURL,
		&m.OriginalLanguage, &rawTranslations, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if text.Valid {
		m.Text = &text.String
	}
	if imageURL.Valid {
		m.ImageURL = &imageURL.String
	}
	if audioURL.Valid {
		m.AudioURL = &audioURL.String
	}
	translations, err := unmarshalTranslations(rawTranslations)
	if err != nil {
		return nil, err
	}
	m.Translations = translations
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}

func unmarshalTranslations(raw string) (map[string]string, error) {
	translations := map[string]string{}
	if raw == "" {
		return translations, nil
	}
	if err := json.Unmarshal([]byte(raw), &translations); err != nil {
		return nil, fmt.Errorf("unmarshal translations: %w", err)
	}
	return translations, nil
}
