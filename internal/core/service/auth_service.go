package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/scribbly/notes-api/internal/core/domain"
	"github.com/scribbly/notes-api/internal/core/ports"
)

// LoginThrottle limits login attempts per email. A nil throttle disables
// the check.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
}

// AuthService implements registration, login and identity lookup.
type AuthService struct {
	repo        ports.UserRepository
	throttle    LoginThrottle
	jwtSecret   string
	registerTTL time.Duration
	loginTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, throttle LoginThrottle, jwtSecret string, registerTTL, loginTTL time.Duration, log zerolog.Logger) *AuthService {
	if registerTTL <= 0 {
		registerTTL = 600 * time.Hour
	}
	if loginTTL <= 0 {
		loginTTL = 60 * time.Hour
	}
	return &AuthService{
		repo:        repo,
		throttle:    throttle,
		jwtSecret:   jwtSecret,
		registerTTL: registerTTL,
		loginTTL:    loginTTL,
		log:         log,
	}
}

// Register creates a new account and mints a session token for it.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.User, string, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedOn:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(created.ID, s.registerTTL)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", created.ID).Msg("account created")
	return created, token, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
		} else if !ok {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(user.ID, s.loginTTL)
}

// GetUser re-fetches the account by id so stale token claims never leak.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// generateToken mints an HS256 token carrying only the user identity.
func (s *AuthService) generateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
