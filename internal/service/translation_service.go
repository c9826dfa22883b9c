//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"chatty/backend/internal/model"
	"chatty/backend/internal/repository"
	"chatty/backend/internal/service/ai"
	"chatty/backend/pkg/logger"
	"chatty/backend/pkg/sanitizer"
)

// quotaDateLayout is the UTC calendar date the quota ledger is keyed by.
// Rollover is plain string equality on this value.
const quotaDateLayout = "2006-01-02"

// TranslationService orchestrates message translation: persisted cache lookup,
// daily quota enforcement, provider invocation, and cache write-back.
type TranslationService interface {
	Translate(ctx context.Context, userID int64, text, targetLanguage string, messageID *int64) (*TranslateResult, error)
	Stats(ctx context.Context, userID int64) (*TranslationStats, error)
	UpdateSettings(ctx context.Context, userID int64, enabled *bool, preferredLanguage *string) (*model.User, error)
	CachedBatch(ctx context.Context, messageIDs []int64, targetLanguage string) (map[int64]string, error)
}

type TranslateResult struct {
	TranslatedText string
	TargetLanguage string
	Cached         bool
	Remaining      int
}

type TranslationStats struct {
	DailyTranslationCount int
	RemainingTranslations int
	TranslationEnabled    bool
	PreferredLanguage     string
}

type translationService struct {
	users    repository.UserRepository
	messages repository.MessageRepository
	provider ai.Provider
	limiter  *ai.RateLimiter
	timeout  time.Duration
	now      func() time.Time
}

// NewTranslationService creates a translation service. The provider may be nil
// when no AI backend is configured; translation requests then fail with
// ErrProvider while cached lookups keep working.
func NewTranslationService(users repository.UserRepository, messages repository.MessageRepository, provider ai.Provider, limiter *ai.RateLimiter, timeout time.Duration) TranslationService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &translationService{
		users:    users,
		messages: messages,
		provider: provider,
		limiter:  limiter,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Translate handles one translation request end to end.
//
// The sequence is fixed: cache check first (a hit never touches the quota
// ledger), then quota rollover and ceiling check, then the provider call under
// a bounded timeout, then quota increment and cache write-back. The increment
// and the write-back are deliberately not transactional: a failed write-back
// after a successful increment leaves the quota unit consumed.
func (s *translationService) Translate(ctx context.Context, userID int64, text, targetLanguage string, messageID *int64) (*TranslateResult, error) {
	text = strings.TrimSpace(text)
	language := sanitizer.Language(targetLanguage)
	if text == "" || language == "" {
		return nil, fmt.Errorf("%w: text and target language are required", ErrInvalid)
	}

	if messageID != nil {
		message, err := s.messages.GetByID(ctx, *messageID)
		if err != nil {
			return nil, fmt.Errorf("load message: %w", err)
		}
		if cached, ok := message.TranslationFor(language); ok {
			remaining, err := s.remaining(ctx, userID)
			if err != nil {
				return nil, err
			}
			return &TranslateResult{
				TranslatedText: cached,
				TargetLanguage: language,
				Cached:         true,
				Remaining:      remaining,
			}, nil
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	today := s.today()
	count := user.DailyTranslationCount
	if user.LastTranslationDate != today {
		// Rollover: any calendar-day change resets the counter exactly once.
		// The reset is persisted together with the increment below.
		count = 0
	}
	if count >= model.DailyTranslationLimit {
		return nil, ErrQuotaExceeded
	}

	translated, err := s.callProvider(ctx, text, language)
	if err != nil {
		return nil, err
	}

	count++
	if err := s.users.UpdateTranslationQuota(ctx, user.ID, count, today); err != nil {
		return nil, fmt.Errorf("update quota: %w", err)
	}

	if messageID != nil {
		if err := s.messages.PutTranslation(ctx, *messageID, language, translated); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Message vanished between lookup and write-back; the
				// translation still succeeded and the quota unit stands.
				logger.Warn("translation write-back skipped, message missing", "messageId", *messageID)
			} else {
				return nil, fmt.Errorf("store translation: %w", err)
			}
		}
	}

	return &TranslateResult{
		TranslatedText: translated,
		TargetLanguage: language,
		Cached:         false,
		Remaining:      model.DailyTranslationLimit - count,
	}, nil
}

func (s *translationService) callProvider(ctx context.Context, text, language string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrProvider)
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", ErrProvider, err)
		}
	}

	// The provider is the only blocking step in the request; bound it so a
	// hung call cannot hang the request.
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Complete(callCtx, "", ai.TranslatePrompt(text, language))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	translated := ai.CleanTranslation(raw)
	if translated == "" {
		return "", fmt.Errorf("%w: empty response", ErrProvider)
	}
	return translated, nil
}

// Stats returns the user's quota state as a read-only rollover projection: a
// stale ledger reads as a fresh day without persisting anything.
func (s *translationService) Stats(ctx context.Context, userID int64) (*TranslationStats, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	count := user.DailyTranslationCount
	if user.LastTranslationDate != s.today() {
		count = 0
	}

	return &TranslationStats{
		DailyTranslationCount: count,
		RemainingTranslations: model.DailyTranslationLimit - count,
		TranslationEnabled:    user.TranslationEnabled,
		PreferredLanguage:     user.PreferredLanguage,
	}, nil
}

// UpdateSettings applies a partial update of the translation preferences and
// returns the updated user.
func (s *translationService) UpdateSettings(ctx context.Context, userID int64, enabled *bool, preferredLanguage *string) (*model.User, error) {
	if preferredLanguage != nil {
		language := sanitizer.Language(*preferredLanguage)
		if language == "" {
			preferredLanguage = nil
		} else {
			preferredLanguage = &language
		}
	}

	user, err := s.users.UpdateTranslationSettings(ctx, userID, enabled, preferredLanguage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return user, nil
}

// CachedBatch returns cached translations for the subset of the given messages
// that already have an entry for the language. It never calls the provider and
// never touches quota.
func (s *translationService) CachedBatch(ctx context.Context, messageIDs []int64, targetLanguage string) (map[int64]string, error) {
	language := sanitizer.Language(targetLanguage)
	if language == "" {
		return nil, fmt.Errorf("%w: target language is required", ErrInvalid)
	}
	// An empty list is a valid request with nothing cached.
	if len(messageIDs) == 0 {
		return map[int64]string{}, nil
	}

	cached, err := s.messages.CachedTranslations(ctx, messageIDs, language)
	if err != nil {
		return nil, fmt.Errorf("batch lookup: %w", err)
	}
	return cached, nil
}

func (s *translationService) today() string {
	return s.now().UTC().Format(quotaDateLayout)
}

// remaining computes the read-only quota projection used on cache hits.
func (s *translationService) remaining(ctx context.Context, userID int64) (int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return 0, ErrNotFound
	}
	if user.LastTranslationDate != s.today() {
		return model.DailyTranslationLimit, nil
	}
	return model.DailyTranslationLimit - user.DailyTranslationCount, nil
}
