//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"chatty/backend/internal/model"
	"chatty/backend/internal/repository"
)

const tokenTTL = 7 * 24 * time.Hour

var usernameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{2,31}$`)

var (
	errUsernameRequired = fmt.Errorf("%w: username is required", ErrInvalid)
	errInvalidUsername  = fmt.Errorf("%w: username must start with a letter and contain only lowercase letters, digits, and underscores", ErrInvalid)
	errEmailRequired    = fmt.Errorf("%w: email is required", ErrInvalid)
	errInvalidEmail     = fmt.Errorf("%w: email is invalid", ErrInvalid)
	errPasswordRequired = fmt.Errorf("%w: password is required", ErrInvalid)
	errPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", ErrInvalid)
	errUserExists       = fmt.Errorf("%w: user already exists", ErrConflict)
	errBadCredentials   = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
)

// AuthService implements registration, login, and JWT session tokens.
type AuthService interface {
	Register(ctx context.Context, username, fullName, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, identifier, password string) (*AuthResponse, error)
	// ValidateToken verifies a session token and returns the user ID it
	// was issued for.
	ValidateToken(token string) (int64, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, fullName, avatarURL *string) (*model.User, error)
}

type AuthResponse struct {
	User  *model.User
	Token string
}

type authService struct {
	users  repository.UserRepository
	secret []byte
}

// NewAuthService creates an auth service signing tokens with the given secret.
func NewAuthService(users repository.UserRepository, secret []byte) AuthService {
	return &authService{users: users, secret: secret}
}

func (s *authService) Register(ctx context.Context, username, fullName, email, password string) (*AuthResponse, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)

	if username == "" {
		return nil, errUsernameRequired
	}
	if !usernameRegex.MatchString(username) {
		return nil, errInvalidUsername
	}
	if email == "" {
		return nil, errEmailRequired
	}
	if !strings.Contains(email, "@") {
		return nil, errInvalidEmail
	}
	if password == "" {
		return nil, errPasswordRequired
	}
	if len(password) < 6 {
		return nil, errPasswordTooShort
	}
	if fullName == "" {
		fullName = username
	}

	if existing, err := s.users.GetByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if existing != nil {
		return nil, errUserExists
	}
	if existing, err := s.users.GetByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, errUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Token: token}, nil
}

// Login accepts a username or an email as the identifier.
func (s *authService) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errUsernameRequired
	}
	if password == "" {
		return nil, errPasswordRequired
	}

	var user *model.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.users.GetByUsername(ctx, strings.ToLower(identifier))
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, errBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errBadCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *authService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errBadCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, errBadCredentials
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errBadCredentials
	}
	return userID, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, id int64, fullName, avatarURL *string) (*model.User, error) {
	if fullName != nil {
		trimmed := strings.TrimSpace(*fullName)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrInvalid)
		}
		fullName = &trimmed
	}

	if err := s.users.UpdateProfile(ctx, id, fullName, avatarURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.GetUser(ctx, id)
}

func (s *authService) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
