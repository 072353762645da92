package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository"
	"github.com/medsync/booking-api/internal/service/notification"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	doctors  repository.DoctorRepository
	notifier *notification.Service

	// lastID guards against two bookings landing on the same
	// nanosecond timestamp.
	idMu   sync.Mutex
	lastID int64

	now func() time.Time
	loc *time.Location
}

func NewService(repo repository.AppointmentRepository, doctors repository.DoctorRepository,
	notifier *notification.Service) *Service {
	return &Service{
		repo:     repo,
		doctors:  doctors,
		notifier: notifier,
		now:      time.Now,
		loc:      time.Local,
	}
}

// Book appends a new scheduled appointment for the authenticated user.
// Display names are denormalized at booking time. Double-booking a slot
// is not rejected here; the matching weekly slot is flagged best
// effort so availability reflects it.
func (s *Service) Book(ctx context.Context, user *model.User, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	if user == nil {
		return nil, apperrors.Unauthenticated("please login to book an appointment")
	}

	doctor, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	apt := &model.Appointment{
		ID:          s.nextID(now),
		DoctorID:    doctor.ID,
		PatientID:   user.ID,
		DoctorName:  doctor.Name,
		PatientName: user.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      model.AppointmentStatusScheduled,
		Notes:       req.Notes,
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Best effort: once the ledger entry exists the booking stands,
	// whether or not a weekly slot could be flagged.
	if date, err := time.ParseInLocation(model.DateLayout, req.Date, s.loc); err == nil {
		day := model.WeekdayName(date.Weekday())
		_, _ = s.doctors.MarkSlotBooked(ctx, doctor.ID, day, req.StartTime, req.EndTime)
	}

	s.notifier.Push(ctx, user.ID, "Appointment booked",
		fmt.Sprintf("Your appointment with %s on %s at %s has been scheduled", doctor.Name, apt.Date, apt.StartTime))
	s.notifier.Push(ctx, doctor.ID, "New appointment",
		fmt.Sprintf("%s booked %s at %s", user.Name, apt.Date, apt.StartTime))

	return apt, nil
}

// Cancel transitions an appointment to cancelled. Only the owning
// patient, the appointment's doctor or an admin may cancel; cancelling
// an already-cancelled appointment is a no-op.
func (s *Service) Cancel(ctx context.Context, actor *model.User, id string) error {
	if actor == nil {
		return apperrors.Unauthenticated("please login to cancel an appointment")
	}

	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin && actor.ID != apt.PatientID && actor.ID != apt.DoctorID {
		return apperrors.Forbidden("only a participant may cancel this appointment")
	}
	if apt.Status == model.AppointmentStatusCancelled {
		return nil
	}

	apt.Status = model.AppointmentStatusCancelled
	if err := s.repo.Update(ctx, apt); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.notifier.Push(ctx, apt.PatientID, "Appointment cancelled",
		fmt.Sprintf("Your appointment with %s on %s has been cancelled", apt.DoctorName, apt.Date))
	s.notifier.Push(ctx, apt.DoctorID, "Appointment cancelled",
		fmt.Sprintf("The appointment with %s on %s has been cancelled", apt.PatientName, apt.Date))

	return nil
}

// ListForUser returns the role-scoped appointment subset: a doctor's
// ledger entries, a patient's own bookings, or everything for admins.
func (s *Service) ListForUser(ctx context.Context, user *model.User) ([]*model.Appointment, error) {
	if user == nil {
		return nil, apperrors.Unauthenticated("")
	}
	switch user.Role {
	case model.RoleDoctor:
		return s.repo.ListByDoctor(ctx, user.ID)
	case model.RoleAdmin:
		return s.repo.List(ctx)
	default:
		return s.repo.ListByPatient(ctx, user.ID)
	}
}

// Classify partitions appointments relative to now. "Today" is date
// equality while still scheduled, regardless of time of day, and takes
// precedence over the time comparison; "upcoming" is a scheduled start
// strictly after now; everything else is "past". The buckets are
// disjoint and cover the input.
func (s *Service) Classify(appointments []*model.Appointment, now time.Time) model.AppointmentBuckets {
	var b model.AppointmentBuckets
	today := now.In(s.loc).Format(model.DateLayout)
	for _, a := range appointments {
		switch {
		case a.Status == model.AppointmentStatusScheduled && a.Date == today:
			b.Today = append(b.Today, a)
		case a.Status == model.AppointmentStatusScheduled && s.startsAfter(a, now):
			b.Upcoming = append(b.Upcoming, a)
		default:
			b.Past = append(b.Past, a)
		}
	}
	return b
}

// Buckets returns the current user's classified appointments.
func (s *Service) Buckets(ctx context.Context, user *model.User) (*model.AppointmentBuckets, error) {
	appointments, err := s.ListForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	b := s.Classify(appointments, s.now())
	return &b, nil
}

// Summary computes the dashboard counters for the current user.
// Distinct patients are counted for doctors only.
func (s *Service) Summary(ctx context.Context, user *model.User) (*model.AppointmentSummary, error) {
	appointments, err := s.ListForUser(ctx, user)
	if err != nil {
		return nil, err
	}

	b := s.Classify(appointments, s.now())
	summary := &model.AppointmentSummary{
		TodayCount:    len(b.Today),
		UpcomingCount: len(b.Upcoming),
		PastCount:     len(b.Past),
	}
	if user.Role == model.RoleDoctor {
		patients := make(map[string]struct{})
		for _, a := range appointments {
			patients[a.PatientID] = struct{}{}
		}
		summary.DistinctPatients = len(patients)
	}
	return summary, nil
}

// Availability returns the doctor's slots for the date's weekday, with
// the booked flag overlaid from scheduled ledger entries overlapping
// the slot on that date.
func (s *Service) Availability(ctx context.Context, doctorID, dateStr string) ([]model.TimeSlot, error) {
	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	date, err := time.ParseInLocation(model.DateLayout, dateStr, s.loc)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}

	appointments, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	day := model.WeekdayName(date.Weekday())
	var slots []model.TimeSlot
	for _, avail := range doctor.Availability {
		if avail.Day != day {
			continue
		}
		for _, slot := range avail.Slots {
			for _, a := range appointments {
				if a.Status != model.AppointmentStatusScheduled || a.Date != dateStr {
					continue
				}
				if overlaps(slot.StartTime, slot.EndTime, a.StartTime, a.EndTime) {
					slot.IsBooked = true
					break
				}
			}
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// Activity returns the whole ledger as an activity feed, newest first.
func (s *Service) Activity(ctx context.Context) ([]*model.BookingActivity, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	feed := make([]*model.BookingActivity, 0, len(appointments))
	for _, a := range appointments {
		feed = append(feed, &model.BookingActivity{
			ID:          a.ID,
			PatientName: a.PatientName,
			DoctorName:  a.DoctorName,
			Date:        a.CreatedAt,
			Status:      a.Status,
			Type:        model.ActivityType(a.Status),
		})
	}
	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Date.After(feed[j].Date) })
	return feed, nil
}

func (s *Service) startsAfter(a *model.Appointment, now time.Time) bool {
	start, err := a.StartsAt(s.loc)
	if err != nil {
		return false
	}
	return start.After(now)
}

// Wall-clock strings in 15:04 form compare correctly as strings.
func overlaps(start, end, otherStart, otherEnd string) bool {
	return start < otherEnd && otherStart < end
}

func (s *Service) nextID(now time.Time) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := now.UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return fmt.Sprintf("a%d", id)
}
