package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"chatty/backend/internal/db"
	"chatty/backend/internal/model"
	"chatty/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards global snowflake state across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory sqlite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is unusable inside sync.Once
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared cache mode so concurrent connections see the same in-memory
	// database; the name is unique per test to avoid cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedUser inserts a test user and returns its ID.
func SeedUser(t *testing.T, db *sql.DB, user model.User) int64 {
	t.Helper()

	if user.ID == 0 {
		user.ID = snowflake.NextID()
	}
	if user.Username == "" {
		user.Username = fmt.Sprintf("user%d", user.ID)
	}
	if user.Email == "" {
		user.Email = fmt.Sprintf("%s@example.com", user.Username)
	}
	if user.PasswordHash == "" {
		user.PasswordHash = "x"
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = model.DefaultLanguage
	}

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO users (id, username, email, password_hash, full_name, avatar_url,
			translation_enabled, preferred_language, daily_translation_count, last_translation_date,
			created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FullName, ptrVal(user.AvatarURL),
		boolToInt(user.TranslationEnabled), user.PreferredLanguage,
		user.DailyTranslationCount, user.LastTranslationDate, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user.ID
}

// SeedMessage inserts a test message and returns its ID.
func SeedMessage(t *testing.T, db *sql.DB, message model.Message) int64 {
	t.Helper()

	if message.ID == 0 {
		message.ID = snowflake.NextID()
	}
	if message.OriginalLanguage == "" {
		message.OriginalLanguage = model.DefaultLanguage
	}
	if message.Translations == nil {
		message.Translations = map[string]string{}
	}

	translations, err := json.Marshal(message.Translations)
	if err != nil {
		t.Fatalf("failed to marshal translations: %v", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = db.ExecContext(
		context.Background(),
		`INSERT INTO messages (id, sender_id, receiver_id, text, image_url, audio_url,
			original_language, translations, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		message.ID, message.SenderID, message.ReceiverID,
		ptrVal(message.Text), ptrVal(message.ImageURL), ptrVal(message.AudioURL),
		message.OriginalLanguage, string(translations), now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}

	return message.ID
}
