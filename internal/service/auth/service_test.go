package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsync/booking-api/internal/fixture"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository/memory"
	"github.com/medsync/booking-api/pkg/auth"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

func newTestService() *Service {
	users := memory.NewUserRepository(fixture.Patients(), fixture.Admin())
	doctors := memory.NewDoctorRepository(fixture.Doctors(), fixture.Specializations())
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(users, doctors, jwtSvc, time.Hour, 0)
}

func TestLoginPatientBySentinel(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login(context.Background(), "john.doe@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "p1", session.User.ID)
	assert.Equal(t, model.RolePatient, session.User.Role)
	assert.NotEmpty(t, session.Token)
}

func TestLoginDoctorRoleInferredByTableScan(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login(context.Background(), "sarah.johnson@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "d1", session.User.ID)
	assert.Equal(t, model.RoleDoctor, session.User.Role)
}

func TestLoginAdmin(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login(context.Background(), "admin@medsync.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, session.User.Role)

	// The shared sentinel does not open the admin account.
	_, err = svc.Login(context.Background(), "admin@medsync.com", "password")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "john.doe@example.com", "wrong")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "password")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestRegisterEstablishesSession(t *testing.T) {
	svc := newTestService()

	session, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "password",
		Role:     model.RolePatient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, model.RolePatient, session.User.Role)
	assert.Equal(t, byte('p'), session.User.ID[0])

	// The session is immediately valid.
	user, err := svc.ValidateSession(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()

	req := &model.RegisterRequest{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "password",
		Role:     model.RolePatient,
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailInUse))
}

func TestRegisterRejectsFixtureEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Impostor",
		Email:    "sarah.johnson@example.com",
		Password: "password",
		Role:     model.RoleDoctor,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailInUse))
}

func TestRegisteredUserLogsInWithOwnPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "s3cret-pass",
		Role:     model.RoleDoctor,
	})
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), "jane@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleDoctor, session.User.Role)

	// The fixture sentinel does not work for registered accounts.
	_, err = svc.Login(context.Background(), "jane@example.com", "password")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login(context.Background(), "john.doe@example.com", "password")
	require.NoError(t, err)

	_, err = svc.ValidateSession(context.Background(), session.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))

	_, err = svc.ValidateSession(context.Background(), session.Token)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthenticated))
}

func TestConcurrentLoginForSameEmailIsRejected(t *testing.T) {
	svc := newTestService()
	svc.latency = 100 * time.Millisecond

	errs := make(chan error, 1)
	go func() {
		_, err := svc.Login(context.Background(), "john.doe@example.com", "password")
		errs <- err
	}()

	// Give the first attempt time to take the slot.
	time.Sleep(20 * time.Millisecond)
	_, err := svc.Login(context.Background(), "john.doe@example.com", "password")
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))

	require.NoError(t, <-errs)
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	svc := newTestService()
	svc.latency = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "john.doe@example.com", "password")
	assert.ErrorIs(t, err, context.Canceled)
}
