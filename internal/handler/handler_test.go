package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"videohub/config"
	"videohub/internal/model"
	"videohub/internal/model/requestresponse"
	"videohub/internal/security"
)

const aliceUUID = "3f0c2a4e-1d2b-4c5d-8e9f-0a1b2c3d4e5f"

// ===== MOCKS =====

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Login(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	args := m.Called(ctx, identifier, password)
	if r, ok := args.Get(0).(*model.LoginResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, userUUID string) error {
	return m.Called(ctx, userUUID).Error(0)
}

type MockUserService struct {
	mock.Mock
}

func userResult(args mock.Arguments) (*model.User, error) {
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, error) {
	return userResult(m.Called(ctx, input))
}

func (m *MockUserService) GetUser(ctx context.Context, uuid string) (*model.User, error) {
	return userResult(m.Called(ctx, uuid))
}

func (m *MockUserService) UpdateAccount(ctx context.Context, uuid, fullname, email string) (*model.User, error) {
	return userResult(m.Called(ctx, uuid, fullname, email))
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error) {
	return userResult(m.Called(ctx, uuid, file))
}

func (m *MockUserService) UpdateCoverImage(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error) {
	return userResult(m.Called(ctx, uuid, file))
}

func (m *MockUserService) ChangePassword(ctx context.Context, uuid, oldPassword, newPassword string) error {
	return m.Called(ctx, uuid, oldPassword, newPassword).Error(0)
}

// ===== HELPERS =====

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func alice() *model.User {
	now := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	return &model.User{
		UUID:      aliceUUID,
		Username:  "alice",
		Email:     "alice@x.com",
		Fullname:  "Alice Liddell",
		Avatar:    "https://cdn.example.com/avatars/alice.png",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newCookieManager() *security.CookieManager {
	return security.NewCookieManager(&config.CookieConfig{Secure: true, Path: "/"})
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, user *model.User) *http.Request {
	return req.WithContext(security.WithUser(req.Context(), user))
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) requestresponse.ErrorResponse {
	t.Helper()
	var resp requestresponse.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	result := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		result[c.Name] = c
	}
	return result
}

func assertCookiesCleared(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	cookies := responseCookies(rec)
	for _, name := range []string{security.AccessTokenCookie, security.RefreshTokenCookie} {
		c, ok := cookies[name]
		require.True(t, ok, name)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func noBody() *strings.Reader {
	return strings.NewReader("")
}
