package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

// UserRepository penyimpanan pengguna dalam memori, key email (lowercase).
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository membuat repository kosong.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]entity.User)}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := r.users[key]; exists {
		return domain.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	r.users[key] = *u
	return nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}
