package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-lugares/internal/domain"
	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria para el driver "memory" (solo desarrollo).
type UserRepo struct {
	mu      sync.Mutex
	byEmail map[string]entity.User
}

// NewUserRepository construye el repositorio de usuarios en memoria.
func NewUserRepository() *UserRepo {
	return &UserRepo{byEmail: make(map[string]entity.User)}
}

// Create persiste el usuario; email duplicado devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = *user
	return nil
}

// FindByEmail devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}
