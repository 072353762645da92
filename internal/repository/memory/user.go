package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/medsync/booking-api/internal/model"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

// UserRepository holds patient fixtures, the admin account and any
// users appended through registration. Fixture records keep their seed
// order; registered users append after them.
type UserRepository struct {
	mu       sync.RWMutex
	patients []*model.Patient
	users    []*model.User
	byID     map[string]*model.User
}

func NewUserRepository(patients []*model.Patient, admin *model.User) *UserRepository {
	r := &UserRepository{
		patients: patients,
		byID:     make(map[string]*model.User),
	}
	for _, p := range patients {
		u := p.User
		r.users = append(r.users, &u)
		r.byID[u.ID] = &u
	}
	if admin != nil {
		r.users = append(r.users, admin)
		r.byID[admin.ID] = admin
	}
	return r
}

func (r *UserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("user", nil)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user", nil)
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.EmailInUse(user.Email)
		}
	}
	r.users = append(r.users, user)
	r.byID[user.ID] = user
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) Patients(ctx context.Context) ([]*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Patient, len(r.patients))
	copy(out, r.patients)
	return out, nil
}
