package service_test

import (
	"context"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"videohub/internal/model"
	"videohub/internal/security"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func userResult(args mock.Arguments) (*model.User, error) {
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	return userResult(m.Called(ctx, exec, user))
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	return userResult(m.Called(ctx, exec, uuid))
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	return userResult(m.Called(ctx, exec, username, email))
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	args := m.Called(ctx, exec, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateFullname(ctx context.Context, exec sqlx.ExtContext, uuid, fullname string) (*model.User, error) {
	return userResult(m.Called(ctx, exec, uuid, fullname))
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, exec sqlx.ExtContext, uuid, avatarURL string) (*model.User, error) {
	return userResult(m.Called(ctx, exec, uuid, avatarURL))
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, exec sqlx.ExtContext, uuid, coverImageURL string) (*model.User, error) {
	return userResult(m.Called(ctx, exec, uuid, coverImageURL))
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid, newPasswordHash string) error {
	return m.Called(ctx, exec, uuid, newPasswordHash).Error(0)
}

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID, refreshToken string) error {
	return m.Called(ctx, exec, userUUID, refreshToken).Error(0)
}

func (m *MockSessionRepository) RotateRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID, presented, next string) error {
	return m.Called(ctx, exec, userUUID, presented, next).Error(0)
}

func (m *MockSessionRepository) ClearRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID string) error {
	return m.Called(ctx, exec, userUUID).Error(0)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokensPair(user *model.User) (*model.TokensPair, error) {
	args := m.Called(user)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseAccessToken(tokenStr string) (*security.AccessClaims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.AccessClaims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseRefreshToken(tokenStr string) (*security.RefreshClaims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.RefreshClaims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockCacheRepository) GetUser(ctx context.Context, uuid string) (*model.User, error) {
	return userResult(m.Called(ctx, uuid))
}

func (m *MockCacheRepository) DeleteUser(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

// MockMediaStorage
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
