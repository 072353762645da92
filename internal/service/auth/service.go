package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/medsync/booking-api/internal/fixture"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository"
	"github.com/medsync/booking-api/pkg/auth"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

// Fixture accounts have no stored hash; they authenticate against a
// fixed sentinel. Accounts created through Register are bcrypt-hashed.
const (
	sentinelPassword = "password"
	adminPassword    = "admin123"
	bcryptCost       = 12
)

type Service struct {
	users   repository.UserRepository
	doctors repository.DoctorRepository
	jwtSvc  auth.JWTService

	// revoked holds token IDs invalidated by logout until they would
	// have expired anyway.
	revoked     *gocache.Cache
	tokenExpiry time.Duration

	// latency defers login and register resolution. Zero disables it.
	latency time.Duration

	// inFlight rejects a duplicate login/register for an email while
	// one is still resolving, the server analog of a disabled submit
	// control.
	mu       sync.Mutex
	inFlight map[string]struct{}

	now func() time.Time
}

func NewService(users repository.UserRepository, doctors repository.DoctorRepository,
	jwtSvc auth.JWTService, tokenExpiry, latency time.Duration) *Service {
	return &Service{
		users:       users,
		doctors:     doctors,
		jwtSvc:      jwtSvc,
		revoked:     gocache.New(tokenExpiry, 10*time.Minute),
		tokenExpiry: tokenExpiry,
		latency:     latency,
		inFlight:    make(map[string]struct{}),
		now:         time.Now,
	}
}

// Login resolves the account by scanning patients, then doctors, then
// the admin, then registered users, and verifies the password. The
// role is whatever table matched; it is never supplied by the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*model.SessionResponse, error) {
	if err := s.acquire(email); err != nil {
		return nil, err
	}
	defer s.release(email)

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	user, err := s.resolveAccount(ctx, email)
	if err != nil {
		return nil, apperrors.InvalidCredentials()
	}
	if !s.passwordMatches(user, password) {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.jwtSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	return &model.SessionResponse{Token: token, User: user}, nil
}

// Register fabricates a new account with a role-prefix+timestamp id,
// stores a bcrypt hash and immediately establishes a session.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.SessionResponse, error) {
	if err := s.acquire(req.Email); err != nil {
		return nil, err
	}
	defer s.release(req.Email)

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if _, err := s.resolveAccount(ctx, req.Email); err == nil {
		return nil, apperrors.EmailInUse(req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &model.User{
		ID:           fmt.Sprintf("%c%d", req.Role[0], now.UnixMilli()),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	return &model.SessionResponse{Token: token, User: user}, nil
}

// Logout revokes the session token. The revocation outlives the call
// only as long as the token itself would.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtSvc.Validate(token)
	if err != nil {
		return apperrors.Unauthenticated("invalid session")
	}
	s.revoked.Set(claims.ID, struct{}{}, s.tokenExpiry)
	return nil
}

// ValidateSession restores the user carried by a non-revoked token.
func (s *Service) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtSvc.Validate(token)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid session")
	}
	if _, gone := s.revoked.Get(claims.ID); gone {
		return nil, apperrors.Unauthenticated("session has been logged out")
	}
	return claims.User(), nil
}

func (s *Service) resolveAccount(ctx context.Context, email string) (*model.User, error) {
	patients, err := s.users.Patients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	for _, p := range patients {
		if strings.EqualFold(p.Email, email) {
			u := p.User
			return &u, nil
		}
	}

	if doctor, err := s.doctors.GetByEmail(ctx, email); err == nil {
		u := doctor.User
		return &u, nil
	}

	// Admin and registered users share the user table.
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NotFound("account", err)
	}
	return user, nil
}

func (s *Service) passwordMatches(user *model.User, password string) bool {
	if user.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
	}
	sentinel := sentinelPassword
	if strings.EqualFold(user.Email, fixture.AdminEmail) {
		sentinel = adminPassword
	}
	return subtle.ConstantTimeCompare([]byte(sentinel), []byte(password)) == 1
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) acquire(email string) error {
	key := strings.ToLower(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return apperrors.Conflict("a request for this account is already in progress")
	}
	s.inFlight[key] = struct{}{}
	return nil
}

func (s *Service) release(email string) {
	key := strings.ToLower(email)
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}
