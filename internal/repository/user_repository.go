//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"chatty/backend/internal/model"
	"chatty/backend/pkg/snowflake"
)

// UserRepository defines the interface for user storage, including the
// per-user translation quota ledger.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListOthers(ctx context.Context, excludeID int64) ([]model.User, error)
	UpdateProfile(ctx context.Context, id int64, fullName *string, avatarURL *string) error
	UpdateTranslationSettings(ctx context.Context, id int64, enabled *bool, preferredLanguage *string) (*model.User, error)
	UpdateTranslationQuota(ctx context.Context, id int64, count int, date string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, password_hash, full_name, avatar_url,
	translation_enabled, preferred_language, daily_translation_count, last_translation_date,
	created_at, updated_at`

// Create inserts a new user. Username and email uniqueness is enforced by the
// schema; violations surface as sqlite constraint errors.
func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	user.ID = snowflake.NextID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = model.DefaultLanguage
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, full_name, avatar_url,
			translation_enabled, preferred_language, daily_translation_count, last_translation_date,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.FullName, nullableString(user.AvatarURL),
		boolToInt(user.TranslationEnabled), user.PreferredLanguage,
		user.DailyTranslationCount, user.LastTranslationDate,
		formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID retrieves a user by ID. Returns nil when the user does not exist.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByUsername retrieves a user by username. Returns nil when not found.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// GetByEmail retrieves a user by email. Returns nil when not found.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email)
	return scanUser(row)
}

// ListOthers retrieves every user except the given one, for the sidebar.
func (r *userRepository) ListOthers(ctx context.Context, excludeID int64) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id != ? ORDER BY username
	`, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateProfile updates the mutable profile fields. Nil fields are left unchanged.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, fullName *string, avatarURL *string) error {
	now := formatTime(time.Now())
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			full_name = COALESCE(?, full_name),
			avatar_url = COALESCE(?, avatar_url),
			updated_at = ?
		WHERE id = ?
	`, nullableString(fullName), nullableString(avatarURL), now, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UpdateTranslationSettings updates the translation preferences. Nil fields are
// left unchanged. Returns the updated user.
func (r *userRepository) UpdateTranslationSettings(ctx context.Context, id int64, enabled *bool, preferredLanguage *string) (*model.User, error) {
	var enabledVal interface{}
	if enabled != nil {
		enabledVal = boolToInt(*enabled)
	}
	now := formatTime(time.Now())
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			translation_enabled = COALESCE(?, translation_enabled),
			preferred_language = COALESCE(?, preferred_language),
			updated_at = ?
		WHERE id = ?
	`, enabledVal, nullableString(preferredLanguage), now, id)
	if err != nil {
		return nil, err
	}
	if err := requireRow(result); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateTranslationQuota persists the quota ledger: the daily counter together
// with the UTC calendar date it belongs to.
func (r *userRepository) UpdateTranslationQuota(ctx context.Context, id int64, count int, date string) error {
	now := formatTime(time.Now())
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET daily_translation_count = ?, last_translation_date = ?, updated_at = ?
		WHERE id = ?
	`, count, date, now, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row *sql.Row) (*model.User, error) {
	user, err := scanUserRows(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func scanUserRows(row rowScanner) (*model.User, error) {
	var u model.User
	var avatarURL sql.NullString
	var translationEnabled int
	var createdAt, updatedAt string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &avatarURL,
		&translationEnabled, &u.PreferredLanguage, &u.DailyTranslationCount, &u.LastTranslationDate,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if avatarURL.Valid {
		u.AvatarURL = &avatarURL.String
	}
	u.TranslationEnabled = translationEnabled != 0
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}
