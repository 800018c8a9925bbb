package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		prepareMock   func(repo *MockRepo, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name:     "Successful registration",
			userName: "maria",
			email:    "maria@example.com",
			password: "Str0ng!pass",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("Str0ng!pass").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
			},
		},
		{
			name:          "Name with punctuation rejected",
			userName:      "maria!",
			email:         "maria@example.com",
			password:      "Str0ng!pass",
			expectedError: domain.ErrInvalidName,
		},
		{
			name:          "Malformed email rejected",
			userName:      "maria",
			email:         "not-an-email",
			password:      "Str0ng!pass",
			expectedError: domain.ErrInvalidEmail,
		},
		{
			name:          "Short password rejected",
			userName:      "maria",
			email:         "maria@example.com",
			password:      "S1!a",
			expectedError: domain.ErrWeakPassword,
		},
		{
			name:          "Password without special character rejected",
			userName:      "maria",
			email:         "maria@example.com",
			password:      "Str0ngpass1",
			expectedError: domain.ErrWeakPassword,
		},
		{
			name:          "Password without digit rejected",
			userName:      "maria",
			email:         "maria@example.com",
			password:      "Strong!pass",
			expectedError: domain.ErrWeakPassword,
		},
		{
			name:     "Duplicate email",
			userName: "maria",
			email:    "maria@example.com",
			password: "Str0ng!pass",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: domain.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hashService, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo, hashService)
			}

			user, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
				assert.Equal(t, "hashed", user.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(&domain.User{
					ID: 1, Email: "maria@example.com", PasswordHash: "hashed",
				}, nil)
				hashService.EXPECT().ComparePassword("hashed", "Str0ng!pass").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(&domain.User{
					ID: 1, Email: "maria@example.com", PasswordHash: "hashed",
				}, nil)
				hashService.EXPECT().ComparePassword("hashed", "Str0ng!pass").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hashService, _ := NewMock(t)
			tt.prepareMock(repo, hashService)

			user, err := service.Authenticate(context.Background(), "maria@example.com", "Str0ng!pass")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestUserExists(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(&domain.User{ID: 1}, nil)
	exists, err := service.UserExists(context.Background(), "maria@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	exists, err = service.UserExists(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserID(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(&domain.User{ID: 1}, nil)
	id, err := service.UserID(context.Background(), "maria@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, id)

	repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	_, err = service.UserID(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(jwtService *auth.MockJWTServiceInterface)
		expectErr   bool
	}{
		{
			name: "Token generated",
			prepareMock: func(jwtService *auth.MockJWTServiceInterface) {
				jwtService.EXPECT().GenerateJWT(1, gomock.AssignableToTypeOf(time.Time{})).Return("some-jwt-token", nil)
			},
			expectErr: false,
		},
		{
			name: "Generation error",
			prepareMock: func(jwtService *auth.MockJWTServiceInterface) {
				jwtService.EXPECT().GenerateJWT(1, gomock.AssignableToTypeOf(time.Time{})).Return("", errors.New("sign error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, jwtService := NewMock(t)
			tt.prepareMock(jwtService)

			token, err := service.GenerateToken(1)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "some-jwt-token", token)
			}
		})
	}
}
