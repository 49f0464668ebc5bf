package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/user"
	usecasemock "github.com/riskibarqy/fantasy-dashboard/internal/mocks/usecase"
)

func TestSessionService_Login(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewProvider(t)
	service := NewSessionService(provider)

	session := user.Session{Credentials: user.Credentials{BearerToken: "abc"}, Profile: user.Profile{ID: "u1"}}
	provider.On("Login", mock.Anything, "ada@example.com", "pw").Return(session, nil).Once()

	got, err := service.Login(t.Context(), LoginInput{Email: " ada@example.com ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionService_Login_RejectsBlankInput(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewProvider(t)
	service := NewSessionService(provider)

	_, err := service.Login(t.Context(), LoginInput{Email: "ada@example.com"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSessionService_Login_WrapsProviderError(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewProvider(t)
	service := NewSessionService(provider)
	provider.On("Login", mock.Anything, "ada@example.com", "bad").Return(user.Session{}, ErrAuthenticationRejected).Once()

	_, err := service.Login(t.Context(), LoginInput{Email: "ada@example.com", Password: "bad"})
	require.ErrorIs(t, err, ErrAuthenticationRejected)
}
