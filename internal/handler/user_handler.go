package handler

import (
	"context"
	"net/http"

	"videohub/internal/model"
	"videohub/internal/model/requestresponse"
	"videohub/internal/ports"
	"videohub/internal/security"
	"videohub/internal/util"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя. Аватар обязателен, обложка опциональна. Username и email приводятся к нижнему регистру
// @Tags Users
// @Accept mpfd
// @Produce json
// @Param fullname formData string true "Полное имя"
// @Param email formData string true "Email"
// @Param username formData string true "Имя пользователя"
// @Param password formData string true "Пароль"
// @Param avatar formData file true "Аватар"
// @Param coverImage formData file false "Обложка канала"
// @Success 201 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пустые поля или нет аватара"
// @Failure 409 {object} requestresponse.ErrorResponse "Username или email уже заняты"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}

	avatar, closeAvatar, err := readMediaFile(r, "avatar")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid avatar file")
		return
	}
	defer closeAvatar()

	coverImage, closeCover, err := readMediaFile(r, "coverImage")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid cover image file")
		return
	}
	defer closeCover()

	user, err := h.UserService.Register(r.Context(), &model.RegisterInput{
		Fullname:   r.FormValue("fullname"),
		Email:      r.FormValue("email"),
		Username:   r.FormValue("username"),
		Password:   r.FormValue("password"),
		Avatar:     avatar,
		CoverImage: coverImage,
	})
	if err != nil {
		util.WriteError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, userResponse(user))
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает публичный профиль владельца access-токена
// @Tags Users
// @Produce json
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.WriteError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, userResponse(user))
}

// UpdateAccount godoc
// @Summary Обновление профиля
// @Description Меняет полное имя. Email неизменяем: можно передать только текущий
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateAccountRequest true "Тело запроса"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/me [patch]
func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	current, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.WriteError(w, err)
		return
	}

	var req requestresponse.UpdateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.UpdateAccount(r.Context(), current.UUID, req.Fullname, req.Email)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, userResponse(user))
}

// UpdateAvatar godoc
// @Summary Замена аватара
// @Tags Users
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Новый аватар"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/me/avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, "avatar", h.UserService.UpdateAvatar)
}

// UpdateCoverImage godoc
// @Summary Замена обложки канала
// @Tags Users
// @Accept mpfd
// @Produce json
// @Param coverImage formData file true "Новая обложка"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/me/coverImage [patch]
func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, "coverImage", h.UserService.UpdateCoverImage)
}

type imageUpdater func(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error)

func (h *UserHandler) replaceImage(w http.ResponseWriter, r *http.Request, field string, update imageUpdater) {
	current, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.WriteError(w, err)
		return
	}

	if !parseMultipart(w, r) {
		return
	}

	file, closeFile, err := readMediaFile(r, field)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid "+field+" file")
		return
	}
	defer closeFile()

	if file == nil {
		sendErrorResponse(w, http.StatusBadRequest, field+" file is required")
		return
	}

	user, err := update(r.Context(), current.UUID, file)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, userResponse(user))
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description Требует текущий пароль. Активная сессия не отзывается
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.ChangePasswordRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ChangePasswordResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный текущий пароль"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/me/password [post]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	current, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.WriteError(w, err)
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), current.UUID, req.OldPassword, req.NewPassword); err != nil {
		util.WriteError(w, err)
		return
	}

	resp := requestresponse.ChangePasswordResponse{}
	resp.Data.Updated = true
	sendJSON(w, http.StatusOK, resp)
}
