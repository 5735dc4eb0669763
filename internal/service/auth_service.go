package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"pos-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const tokenTTL = 24 * time.Hour

// Claims is the session token payload.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService registers users, checks credentials, and issues signed session
// tokens. The signing secret is fixed at construction and never mutated.
type AuthService struct {
	users  UserStore
	secret []byte
	now    func() time.Time
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), now: time.Now}
}

// Register creates a user with a bcrypt hash of the password. The plaintext
// is never stored.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Msgf("Error checking username %s", username)
		return nil, err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Msgf("Error checking email %s", email)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed token. An unknown
// username and a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	if username == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		logger.Error().Err(err).Msgf("Error looking up user %s", username)
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing token")
		return "", nil, err
	}

	return token, user, nil
}

// Verify parses and validates a raw token string. Callers strip any
// "Bearer " prefix first.
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int) (*entity.User, error) {
	return s.users.GetUserByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}
	return users, nil
}

// IssueToken signs a fresh session token for an already-authenticated user.
func (s *AuthService) IssueToken(user *entity.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
