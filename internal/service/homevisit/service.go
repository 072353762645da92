package homevisit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository"
	"github.com/medsync/booking-api/internal/service/notification"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

type Service struct {
	repo     repository.HomeVisitRepository
	doctors  repository.DoctorRepository
	notifier *notification.Service
	now      func() time.Time
	loc      *time.Location
}

func NewService(repo repository.HomeVisitRepository, doctors repository.DoctorRepository,
	notifier *notification.Service) *Service {
	return &Service{
		repo:     repo,
		doctors:  doctors,
		notifier: notifier,
		now:      time.Now,
		loc:      time.Local,
	}
}

// Create files a pending home visit request. Field lengths are checked
// at the binding layer; the requested date must not be in the past.
func (s *Service) Create(ctx context.Context, user *model.User, req *model.CreateHomeVisitRequest) (*model.HomeVisit, error) {
	if user == nil {
		return nil, apperrors.Unauthenticated("please login to request a home visit")
	}

	doctor, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if _, err := time.ParseInLocation(model.DateLayout, req.Date, s.loc); err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}
	if req.Date < now.In(s.loc).Format(model.DateLayout) {
		return nil, apperrors.BadRequest("date must not be in the past", nil)
	}

	hv := &model.HomeVisit{
		ID:         "hv" + uuid.New().String()[:8],
		DoctorID:   doctor.ID,
		PatientID:  user.ID,
		DoctorName: doctor.Name,
		Address:    req.Address,
		Reason:     req.Reason,
		Date:       req.Date,
		Time:       req.Time,
		Status:     model.HomeVisitStatusPending,
		CreatedAt:  now,
	}
	if err := s.repo.Create(ctx, hv); err != nil {
		return nil, fmt.Errorf("failed to store home visit request: %w", err)
	}

	s.notifier.Push(ctx, user.ID, "Request submitted",
		fmt.Sprintf("Your home visit request has been sent to %s", doctor.Name))
	s.notifier.Push(ctx, doctor.ID, "Home visit requested",
		fmt.Sprintf("%s requested a home visit on %s at %s", user.Name, hv.Date, hv.Time))

	return hv, nil
}

// ListForUser returns the requests visible to the user: their own for
// patients, requests addressed to them for doctors.
func (s *Service) ListForUser(ctx context.Context, user *model.User) ([]*model.HomeVisit, error) {
	if user == nil {
		return nil, apperrors.Unauthenticated("")
	}
	if user.Role == model.RoleDoctor {
		return s.repo.ListByDoctor(ctx, user.ID)
	}
	return s.repo.ListByPatient(ctx, user.ID)
}
