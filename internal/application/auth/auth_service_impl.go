package authservice

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/pkg/config"
)

const tokenIssuer = "pairscope"

var errPasswordNotConfigured = errors.New("dashboard password not configured")

type AuthService struct {
	password   string
	secret     []byte
	sessionTTL time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService builds the session issuer. Without a configured JWT secret a
// random one is generated, so sessions do not survive a restart.
func NewAuthService(cfg config.AuthConfig, logger zerolog.Logger) (*AuthService, error) {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		generated, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = generated
		logger.Warn().Msg("JWT secret not configured, using an ephemeral secret")
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}

	return &AuthService{
		password:   cfg.Password,
		secret:     secret,
		sessionTTL: ttl,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if s.password == "" {
		s.logger.Error().Msg("Dashboard password not configured")
		return "", time.Time{}, errPasswordNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.logger.Warn().Msg("Login attempt with invalid password")
		return "", time.Time{}, domain.ErrInvalidPassword
	}

	now := s.now()
	expirationTime := now.Add(s.sessionTTL)
	claim := &domain.Claim{
		Authenticated: true,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign token")
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info().Str("session_id", claim.Id).Time("expires_at", expirationTime).Msg("Session issued")
	return tokenString, expirationTime, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.Claim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*domain.Claim)
	if !ok {
		return nil, fmt.Errorf("invalid claims format")
	}

	if claims.ExpiresAt < s.now().Unix() {
		return nil, fmt.Errorf("token expired")
	}

	if claims.Issuer != tokenIssuer {
		return nil, fmt.Errorf("invalid issuer")
	}

	if !claims.Authenticated {
		return nil, domain.ErrUnauthenticated
	}

	return claims, nil
}

func randomSecret() ([]byte, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return []byte(hex.EncodeToString(buf)), nil
}
