package model

import "time"

// DailyTranslationLimit is the number of new (non-cached) translations a user
// may bill to quota per UTC calendar day.
const DailyTranslationLimit = 15

// DefaultLanguage is the language assumed when a user or message carries none.
const DefaultLanguage = "English"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	AvatarURL    *string

	TranslationEnabled bool
	PreferredLanguage  string

	// DailyTranslationCount and LastTranslationDate form the quota ledger.
	// The count is only valid for the UTC calendar date stored in
	// LastTranslationDate ("2006-01-02"); any other date means the counter
	// is stale and resets on the next billed translation.
	DailyTranslationCount int
	LastTranslationDate   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
