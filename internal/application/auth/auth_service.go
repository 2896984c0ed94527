package authservice

import (
	"context"
	"time"

	"github.com/tuncanbit/pairscope/internal/domain"
)

type IAuthService interface {
	// Login checks the dashboard password and issues a signed session token
	Login(ctx context.Context, password string) (string, time.Time, error)

	// VerifyToken validates a session token and returns its claims
	VerifyToken(ctx context.Context, tokenString string) (*domain.Claim, error)
}
