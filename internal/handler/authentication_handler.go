package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"videohub/internal/model/requestresponse"
	"videohub/internal/ports"
	"videohub/internal/security"
	"videohub/internal/util"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookies *security.CookieManager
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	cookies *security.CookieManager,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		cookies,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт access и refresh токены по username (или email) и паролю. Токены также выставляются в HttpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный пароль"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	result, err := h.AuthenticationService.Login(r.Context(), identifier, req.Password)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	h.cookies.SetAuthCookies(w, result.Tokens)

	sendJSON(w, http.StatusOK, requestresponse.LoginResponse{
		Data: requestresponse.LoginData{
			User:         requestresponse.UserDataFromModel(result.User),
			AccessToken:  result.Tokens.AccessToken,
			RefreshToken: result.Tokens.RefreshToken,
		},
	})
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает refresh-токен пользователя и очищает cookie с токенами. Повторный вызов не является ошибкой
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.WriteError(w, err)
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), user.UUID); err != nil {
		util.WriteError(w, err)
		return
	}

	h.cookies.ClearAuthCookies(w)

	resp := requestresponse.LogoutResponse{}
	resp.Data.LoggedOut = true
	sendJSON(w, http.StatusOK, resp)
}

// RenewToken godoc
// @Summary Обновление токенов
// @Description Обменивает refresh-токен (cookie refreshToken или поле тела) на новую пару. Старый refresh-токен после этого недействителен
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса, если нет cookie"
// @Success 200 {object} requestresponse.RefreshTokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Токен невалиден, просрочен или уже использован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/renew-token [post]
func (h *AuthenticationHandler) RenewToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := security.ReadRefreshToken(r)
	if refreshToken == "" {
		var req requestresponse.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
		refreshToken = req.RefreshToken
	}

	tokens, err := h.AuthenticationService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		if util.KindOf(err) == util.KindUnauthorized {
			h.cookies.ClearAuthCookies(w)
		}
		util.WriteError(w, err)
		return
	}

	h.cookies.SetAuthCookies(w, tokens)

	resp := requestresponse.RefreshTokenResponse{}
	resp.Data.AccessToken = tokens.AccessToken
	resp.Data.RefreshToken = tokens.RefreshToken
	sendJSON(w, http.StatusOK, resp)
}
