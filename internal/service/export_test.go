package service

import "time"

// Helpers exposing internals to external tests.
var (
	ErrUsernameRequiredHelper = errUsernameRequired
	ErrInvalidUsernameHelper  = errInvalidUsername
	ErrEmailRequiredHelper    = errEmailRequired
	ErrInvalidEmailHelper     = errInvalidEmail
	ErrPasswordRequiredHelper = errPasswordRequired
	ErrPasswordTooShortHelper = errPasswordTooShort
	ErrUserExistsHelper       = errUserExists
	ErrBadCredentialsHelper   = errBadCredentials
)

// SetTranslationClock overrides the translation service clock in tests.
func SetTranslationClock(svc TranslationService, now func() time.Time) {
	if s, ok := svc.(*translationService); ok {
		s.now = now
	}
}
