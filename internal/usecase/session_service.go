package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/user"
)

type LoginInput struct {
	Email    string
	Password string
}

type SessionService struct {
	provider Provider
}

func NewSessionService(provider Provider) *SessionService {
	return &SessionService{provider: provider}
}

// Login exchanges credentials for an upstream bearer token. Nothing is stored
// server side, the caller keeps the token.
func (s *SessionService) Login(ctx context.Context, input LoginInput) (user.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return user.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	session, err := s.provider.Login(ctx, email, input.Password)
	if err != nil {
		return user.Session{}, fmt.Errorf("login: %w", err)
	}
	return session, nil
}
