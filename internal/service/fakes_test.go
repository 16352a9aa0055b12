package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"videohub/internal/model"
	"videohub/internal/repository"
)

// memoryStore : пользователи и сессии в памяти с той же семантикой compare-and-set,
// что и у SessionRepository поверх Postgres
type memoryStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemoryStore(users ...*model.User) *memoryStore {
	store := &memoryStore{users: make(map[string]*model.User)}
	for _, u := range users {
		copied := *u
		store.users[u.UUID] = &copied
	}
	return store
}

func (s *memoryStore) snapshot(u *model.User) *model.User {
	copied := *u
	if u.RefreshToken != nil {
		token := *u.RefreshToken
		copied.RefreshToken = &token
	}
	return &copied
}

func (s *memoryStore) storedRefreshToken(uuid string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[uuid]; ok && u.RefreshToken != nil {
		token := *u.RefreshToken
		return &token
	}
	return nil
}

func (s *memoryStore) CreateUser(_ context.Context, _ sqlx.ExtContext, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) {
			return nil, repository.ErrUserAlreadyExists
		}
	}
	created := *user
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.users[user.UUID] = &created
	return s.snapshot(&created), nil
}

func (s *memoryStore) FindByUUID(_ context.Context, _ sqlx.ExtContext, uuid string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uuid]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return s.snapshot(u), nil
}

func (s *memoryStore) FindByUsernameOrEmail(_ context.Context, _ sqlx.ExtContext, username, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if (username != "" && strings.EqualFold(u.Username, username)) || (email != "" && strings.EqualFold(u.Email, email)) {
			return s.snapshot(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memoryStore) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	_, err := s.FindByUsernameOrEmail(ctx, exec, username, email)
	if err == repository.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *memoryStore) update(uuid string, apply func(u *model.User)) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uuid]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	apply(u)
	u.UpdatedAt = time.Now()
	return s.snapshot(u), nil
}

func (s *memoryStore) UpdateFullname(_ context.Context, _ sqlx.ExtContext, uuid, fullname string) (*model.User, error) {
	return s.update(uuid, func(u *model.User) { u.Fullname = fullname })
}

func (s *memoryStore) UpdateAvatar(_ context.Context, _ sqlx.ExtContext, uuid, avatarURL string) (*model.User, error) {
	return s.update(uuid, func(u *model.User) { u.Avatar = avatarURL })
}

func (s *memoryStore) UpdateCoverImage(_ context.Context, _ sqlx.ExtContext, uuid, coverImageURL string) (*model.User, error) {
	return s.update(uuid, func(u *model.User) { u.CoverImage = coverImageURL })
}

func (s *memoryStore) UpdatePassword(_ context.Context, _ sqlx.ExtContext, uuid, newPasswordHash string) error {
	_, err := s.update(uuid, func(u *model.User) { u.PasswordHash = newPasswordHash })
	return err
}

func (s *memoryStore) SaveRefreshToken(_ context.Context, _ sqlx.ExtContext, userUUID, refreshToken string) error {
	_, err := s.update(userUUID, func(u *model.User) { u.RefreshToken = &refreshToken })
	return err
}

func (s *memoryStore) RotateRefreshToken(_ context.Context, _ sqlx.ExtContext, userUUID, presented, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userUUID]
	if !ok || u.RefreshToken == nil || *u.RefreshToken != presented {
		return repository.ErrStaleRefreshToken
	}
	u.RefreshToken = &next
	return nil
}

func (s *memoryStore) ClearRefreshToken(_ context.Context, _ sqlx.ExtContext, userUUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userUUID]; ok {
		u.RefreshToken = nil
	}
	return nil
}
