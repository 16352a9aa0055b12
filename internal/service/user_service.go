package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"videohub/config"
	"videohub/internal/model"
	"videohub/internal/ports"
	"videohub/internal/repository"
	"videohub/internal/security"
	"videohub/internal/util"
)

const (
	minPasswordLength = 8
	minUsernameLength = 3
	maxUsernameLength = 30

	avatarPrefix     = "avatars"
	coverImagePrefix = "covers"
)

type UserService struct {
	db              sqlx.ExtContext
	userRepository  ports.UserRepository
	cacheRepository ports.CacheRepository
	storage         ports.MediaStorage
	verifier        ports.CredentialVerifier
	timeout         time.Duration
}

func NewUserService(
	db sqlx.ExtContext,
	userRepository ports.UserRepository,
	cacheRepository ports.CacheRepository,
	storage ports.MediaStorage,
	verifier ports.CredentialVerifier,
	cfg *config.AuthConfig,
) *UserService {
	timeout := config.MustDuration(cfg.RequestTimeout)

	return &UserService{
		db:              db,
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		storage:         storage,
		verifier:        verifier,
		timeout:         timeout,
	}
}

// Register : создаёт пользователя. Аватар обязателен, обложка нет
func (s *UserService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	fullname := strings.TrimSpace(input.Fullname)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.ToLower(strings.TrimSpace(input.Username))

	if fullname == "" || email == "" || username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, util.BadRequest("all fields are required", nil)
	}
	if err := validateUsername(username); err != nil {
		return nil, util.BadRequest(err.Error(), nil)
	}
	if err := validateEmail(email); err != nil {
		return nil, util.BadRequest(err.Error(), nil)
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, util.BadRequest(err.Error(), nil)
	}

	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, s.db, username, email)
	if err != nil {
		return nil, util.Internal("[UserService] ошибка проверки существования пользователя", err)
	}
	if exists {
		return nil, util.Conflict("user with email or username already exists", nil)
	}

	if input.Avatar == nil {
		return nil, util.BadRequest("avatar file is required", nil)
	}
	if err := validateImage(input.Avatar); err != nil {
		return nil, util.BadRequest(err.Error(), nil)
	}
	if input.CoverImage != nil {
		if err := validateImage(input.CoverImage); err != nil {
			return nil, util.BadRequest(err.Error(), nil)
		}
	}

	hash, err := s.verifier.Hash(ctx, input.Password)
	if err != nil {
		return nil, util.Internal("[UserService] не удалось создать хэш пароля", err)
	}

	userUUID := uuid.New().String()
	var uploadedKeys []string

	avatarKey := mediaKey(avatarPrefix, userUUID, input.Avatar.Filename)
	avatarURL, err := s.storage.Upload(ctx, avatarKey, input.Avatar.Body, input.Avatar.Size, input.Avatar.ContentType)
	if err != nil {
		return nil, util.Internal("[UserService] не удалось загрузить аватар", err)
	}
	uploadedKeys = append(uploadedKeys, avatarKey)

	var coverImageURL string
	if input.CoverImage != nil {
		coverKey := mediaKey(coverImagePrefix, userUUID, input.CoverImage.Filename)
		coverImageURL, err = s.storage.Upload(ctx, coverKey, input.CoverImage.Body, input.CoverImage.Size, input.CoverImage.ContentType)
		if err != nil {
			s.cleanupUploads(ctx, uploadedKeys)
			return nil, util.Internal("[UserService] не удалось загрузить обложку", err)
		}
		uploadedKeys = append(uploadedKeys, coverKey)
	}

	created, err := s.userRepository.CreateUser(ctx, s.db, &model.User{
		UUID:         userUUID,
		Username:     username,
		Email:        email,
		Fullname:     fullname,
		Avatar:       avatarURL,
		CoverImage:   coverImageURL,
		PasswordHash: hash,
	})
	if err != nil {
		s.cleanupUploads(ctx, uploadedKeys)
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, util.Conflict("user with email or username already exists", err)
		}
		return nil, util.Internal("[UserService] ошибка создания пользователя", err)
	}

	log.Printf("[UserService] зарегистрирован пользователь %s (%s)", created.UUID, created.Username)
	return created.Public(), nil
}

// cleanupUploads : удаляет файлы, загруженные для несостоявшейся операции
func (s *UserService) cleanupUploads(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.DeleteObject(context.WithoutCancel(ctx), key); err != nil {
			log.Printf("[UserService] не удалось удалить %s из хранилища: %v", key, err)
		}
	}
}

func (s *UserService) GetUser(ctx context.Context, uuid string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.userRepository.FindByUUID(ctx, s.db, uuid)
	if err != nil {
		return nil, mapUserLookupError(err)
	}
	return user.Public(), nil
}

// ResolveIdentity : профиль для middleware. Сначала Redis, затем БД
func (s *UserService) ResolveIdentity(ctx context.Context, uuid string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	cached, err := s.cacheRepository.GetUser(ctx, uuid)
	if err != nil {
		log.Printf("[UserService] ошибка чтения кэша: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db, uuid)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	if err := s.cacheRepository.SetUser(ctx, user); err != nil {
		log.Printf("[UserService] ошибка кэширования пользователя: %v", err)
	}

	return user.Public(), nil
}

// UpdateAccount : меняет отображаемое имя. Username и email после регистрации не меняются
func (s *UserService) UpdateAccount(ctx context.Context, uuid, fullname, email string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	fullname = strings.TrimSpace(fullname)
	if fullname == "" {
		return nil, util.BadRequest("fullname is required", nil)
	}

	current, err := s.userRepository.FindByUUID(ctx, s.db, uuid)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	email = strings.TrimSpace(email)
	if email != "" && !strings.EqualFold(email, current.Email) {
		return nil, util.BadRequest("email cannot be changed", nil)
	}

	updated, err := s.userRepository.UpdateFullname(ctx, s.db, uuid, fullname)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	s.invalidateCache(ctx, uuid)
	return updated.Public(), nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error) {
	if file == nil {
		return nil, util.BadRequest("avatar file is required", nil)
	}
	return s.replaceImage(ctx, uuid, file, avatarPrefix, s.userRepository.UpdateAvatar)
}

func (s *UserService) UpdateCoverImage(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error) {
	if file == nil {
		return nil, util.BadRequest("cover image file is required", nil)
	}
	return s.replaceImage(ctx, uuid, file, coverImagePrefix, s.userRepository.UpdateCoverImage)
}

type imageColumnUpdater func(ctx context.Context, exec sqlx.ExtContext, uuid, url string) (*model.User, error)

func (s *UserService) replaceImage(ctx context.Context, uuid string, file *model.MediaFile, prefix string, update imageColumnUpdater) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := validateImage(file); err != nil {
		return nil, util.BadRequest(err.Error(), nil)
	}

	key := mediaKey(prefix, uuid, file.Filename)
	url, err := s.storage.Upload(ctx, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		return nil, util.Internal("[UserService] ошибка загрузки файла", err)
	}

	updated, err := update(ctx, s.db, uuid, url)
	if err != nil {
		s.cleanupUploads(ctx, []string{key})
		return nil, mapUserLookupError(err)
	}

	s.invalidateCache(ctx, uuid)
	return updated.Public(), nil
}

// ChangePassword : меняет пароль после проверки текущего
func (s *UserService) ChangePassword(ctx context.Context, uuid, oldPassword, newPassword string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if oldPassword == "" || newPassword == "" {
		return util.BadRequest("old and new passwords are required", nil)
	}
	if err := validatePassword(newPassword); err != nil {
		return util.BadRequest(err.Error(), nil)
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db, uuid)
	if err != nil {
		return mapUserLookupError(err)
	}

	if !s.verifier.Verify(ctx, oldPassword, user.PasswordHash) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return util.Internal("[UserService] проверка пароля прервана", ctxErr)
		}
		return util.Unauthorized("invalid old password", nil)
	}

	hash, err := s.verifier.Hash(ctx, newPassword)
	if err != nil {
		return util.Internal("[UserService] не удалось создать хэш пароля", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, s.db, uuid, hash); err != nil {
		return mapUserLookupError(err)
	}

	log.Printf("[UserService] пользователь %s сменил пароль", uuid)
	return nil
}

func (s *UserService) invalidateCache(ctx context.Context, uuid string) {
	if err := s.cacheRepository.DeleteUser(ctx, uuid); err != nil {
		log.Printf("[UserService] ошибка инвалидации кэша: %v", err)
	}
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return util.NotFound("user does not exist", err)
	}
	return util.Internal("[UserService] ошибка обращения к БД", err)
}

func mediaKey(prefix, userUUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s%s", prefix, userUUID, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	}
	for _, c := range username {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '.' && c != '-' {
			return fmt.Errorf("username may contain only letters, digits, '_', '.' and '-'")
		}
	}
	return nil
}

func validateEmail(email string) error {
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > security.MaxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes", security.MaxPasswordBytes)
	}
	return nil
}

func validateImage(file *model.MediaFile) error {
	if file.Body == nil || file.Size <= 0 {
		return fmt.Errorf("uploaded file is empty")
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return fmt.Errorf("uploaded file must be an image")
	}
	return nil
}
