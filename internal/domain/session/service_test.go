package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, s *Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Login(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *Session) bool {
		return s.Credential == "secret123" && s.Authenticated && len(s.ID) == 64 && !s.CreatedAt.IsZero()
	})).Return(nil)

	token, err := service.Login(context.Background(), "  secret123 ")
	require.NoError(t, err)
	// base64 от 32 байт - 44 символа
	assert.Len(t, token, 44)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_Blank(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "empty", secret: ""},
		{name: "spaces", secret: "   "},
		{name: "tabs and newlines", secret: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			token, err := service.Login(context.Background(), tt.secret)

			assert.ErrorIs(t, err, ErrEmptyCredential)
			assert.Empty(t, token)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Login_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))

	_, err := service.Login(context.Background(), "secret")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_Current(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	var stored *Session
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*Session)
	}).Return(nil)

	token, err := service.Login(context.Background(), "secret123")
	require.NoError(t, err)

	mockRepo.On("Get", mock.Anything, HashToken(token)).Return(stored, nil)

	sess, err := service.Current(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "secret123", sess.Credential)

	mockRepo.AssertExpectations(t)
}

func TestService_Current_NotAuthenticated(t *testing.T) {
	tests := []struct {
		name  string
		token string
		setup func(m *MockRepository)
	}{
		{
			name:  "empty token",
			token: "",
			setup: func(m *MockRepository) {},
		},
		{
			name:  "unknown token",
			token: "nope",
			setup: func(m *MockRepository) {
				m.On("Get", mock.Anything, HashToken("nope")).Return(nil, ErrNotFound)
			},
		},
		{
			name:  "session without auth flag",
			token: "half",
			setup: func(m *MockRepository) {
				m.On("Get", mock.Anything, HashToken("half")).Return(&Session{Credential: "x"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo)
			service := NewService(mockRepo, slog.Default())

			sess, err := service.Current(context.Background(), tt.token)

			assert.Nil(t, sess)
			assert.ErrorIs(t, err, ErrNotAuthenticated)
		})
	}
}

func TestService_Logout(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, HashToken("tok")).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, HashToken("gone")).Return(ErrNotFound).Once()

	assert.NoError(t, service.Logout(context.Background(), "tok"))
	assert.NoError(t, service.Logout(context.Background(), "gone"))
	assert.NoError(t, service.Logout(context.Background(), ""))

	mockRepo.AssertExpectations(t)
}

func TestCredentialFromContext(t *testing.T) {
	_, err := CredentialFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	ctx := WithSession(context.Background(), &Session{Credential: "k", Authenticated: false})
	_, err = CredentialFromContext(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	ctx = WithSession(context.Background(), &Session{Credential: "k", Authenticated: true})
	cred, err := CredentialFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "k", cred)
}
