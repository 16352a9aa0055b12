package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"videohub/internal/handler"
	"videohub/internal/model"
	"videohub/internal/model/requestresponse"
	"videohub/internal/util"
)

func registerFields() map[string]string {
	return map[string]string{
		"fullname": "Alice Liddell",
		"email":    "alice@x.com",
		"username": "alice",
		"password": "secretpw",
	}
}

func TestUserHandler_RegisterUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockUserService)
		h := handler.NewUserHandler(svc)

		svc.On("Register", mock.Anything, mock.MatchedBy(func(in *model.RegisterInput) bool {
			if in.Avatar == nil || in.CoverImage != nil {
				return false
			}
			return in.Fullname == "Alice Liddell" &&
				in.Email == "alice@x.com" &&
				in.Username == "alice" &&
				in.Password == "secretpw" &&
				in.Avatar.Filename == "me.png" &&
				in.Avatar.ContentType == "image/png" &&
				in.Avatar.Size == int64(len(pngBytes)) &&
				in.Avatar.Body != nil
		})).Return(alice(), nil)

		req := multipartRequest(t, http.MethodPost, "/api/v1/auth/register", registerFields(),
			formFile{field: "avatar", filename: "me.png", content: pngBytes})
		rec := httptest.NewRecorder()
		h.RegisterUser(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "alice", body["data"]["username"])
		assert.Equal(t, aliceUUID, body["data"]["uuid"])
		assert.NotContains(t, body["data"], "passwordHash")
		assert.NotContains(t, body["data"], "password")
		assert.NotContains(t, body["data"], "refreshToken")
		svc.AssertExpectations(t)
	})

	t.Run("missing avatar is passed through", func(t *testing.T) {
		svc := new(MockUserService)
		h := handler.NewUserHandler(svc)

		svc.On("Register", mock.Anything, mock.MatchedBy(func(in *model.RegisterInput) bool {
			return in.Avatar == nil
		})).Return(nil, util.BadRequest("avatar file is required", nil))

		req := multipartRequest(t, http.MethodPost, "/api/v1/auth/register", registerFields())
		rec := httptest.NewRecorder()
		h.RegisterUser(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "avatar file is required", decodeError(t, rec).Error.Text)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := new(MockUserService)
		h := handler.NewUserHandler(svc)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, util.Conflict("user with email or username already exists", nil))

		req := multipartRequest(t, http.MethodPost, "/api/v1/auth/register", registerFields(),
			formFile{field: "avatar", filename: "me.png", content: pngBytes})
		rec := httptest.NewRecorder()
		h.RegisterUser(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		svc := new(MockUserService)
		h := handler.NewUserHandler(svc)

		req := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", registerFields())
		rec := httptest.NewRecorder()
		h.RegisterUser(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_GetCurrentUser(t *testing.T) {
	h := handler.NewUserHandler(new(MockUserService))

	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), alice()))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, aliceUUID, resp.Data.UUID)
	assert.Equal(t, "alice@x.com", resp.Data.Email)
	assert.Equal(t, "2025-08-23T12:00:00Z", resp.Data.CreatedAt)

	rec = httptest.NewRecorder()
	h.GetCurrentUser(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdateAccount(t *testing.T) {
	svc := new(MockUserService)
	h := handler.NewUserHandler(svc)

	updated := alice()
	updated.Fullname = "Alice L."
	svc.On("UpdateAccount", mock.Anything, aliceUUID, "Alice L.", "").Return(updated, nil)
	svc.On("UpdateAccount", mock.Anything, aliceUUID, "Alice L.", "new@x.com").
		Return(nil, util.BadRequest("email cannot be changed", nil))

	req := asUser(jsonRequest(t, http.MethodPatch, "/api/v1/me", requestresponse.UpdateAccountRequest{Fullname: "Alice L."}), alice())
	rec := httptest.NewRecorder()
	h.UpdateAccount(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Alice L.", resp.Data.Fullname)

	req = asUser(jsonRequest(t, http.MethodPatch, "/api/v1/me", requestresponse.UpdateAccountRequest{Fullname: "Alice L.", Email: "new@x.com"}), alice())
	rec = httptest.NewRecorder()
	h.UpdateAccount(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email cannot be changed", decodeError(t, rec).Error.Text)
}

func TestUserHandler_UpdateImages(t *testing.T) {
	t.Run("avatar", func(t *testing.T) {
		svc := new(MockUserService)
		h := handler.NewUserHandler(svc)

		updated := alice()
		updated.Avatar = "https://cdn.example.com/avatars/new.png"
		svc.On("UpdateAvatar", mock.Anything, aliceUUID, mock.MatchedBy(func(f *model.MediaFile) bool {
			return f.Filename == "new.png" && f.ContentType == "image/png"
		})).Return(updated, nil)

		req := multipartRequest(t, http.MethodPatch, "/api/v1/me/avatar", nil,
			formFile{field: "avatar", filename: "new.png", content: pngBytes})
		rec := httptest.NewRecorder()
		h.UpdateAvatar(rec, asUser(req, alice()))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp requestresponse.UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, updated.Avatar, resp.Data.Avatar)
	})

	t.Run("cover image missing", func(t *testing.T) {
		svc := new(MockUserService)
		h := handler.NewUserHandler(svc)

		req := multipartRequest(t, http.MethodPatch, "/api/v1/me/coverImage", map[string]string{"note": "empty"})
		rec := httptest.NewRecorder()
		h.UpdateCoverImage(rec, asUser(req, alice()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "coverImage file is required", decodeError(t, rec).Error.Text)
		svc.AssertNotCalled(t, "UpdateCoverImage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := handler.NewUserHandler(new(MockUserService))

		req := multipartRequest(t, http.MethodPatch, "/api/v1/me/avatar", nil,
			formFile{field: "avatar", filename: "new.png", content: pngBytes})
		rec := httptest.NewRecorder()
		h.UpdateAvatar(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_ChangePassword(t *testing.T) {
	svc := new(MockUserService)
	h := handler.NewUserHandler(svc)

	svc.On("ChangePassword", mock.Anything, aliceUUID, "secretpw", "n3w-secretpw").Return(nil)
	svc.On("ChangePassword", mock.Anything, aliceUUID, "wrongpass", "n3w-secretpw").
		Return(util.Unauthorized("invalid old password", nil))

	req := asUser(jsonRequest(t, http.MethodPost, "/api/v1/me/password",
		requestresponse.ChangePasswordRequest{OldPassword: "secretpw", NewPassword: "n3w-secretpw"}), alice())
	rec := httptest.NewRecorder()
	h.ChangePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.ChangePasswordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Data.Updated)

	req = asUser(jsonRequest(t, http.MethodPost, "/api/v1/me/password",
		requestresponse.ChangePasswordRequest{OldPassword: "wrongpass", NewPassword: "n3w-secretpw"}), alice())
	rec = httptest.NewRecorder()
	h.ChangePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodPost, "/api/v1/me/password", strings.NewReader("nope")), alice())
	rec = httptest.NewRecorder()
	h.ChangePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
