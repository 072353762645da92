package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsync/booking-api/internal/fixture"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository"
	"github.com/medsync/booking-api/internal/repository/memory"
	"github.com/medsync/booking-api/internal/service/notification"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

var testNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.Local) // a Monday

func newTestService(seed []*model.Appointment) (*Service, *memory.AppointmentRepository, *memory.DoctorRepository) {
	aptRepo := memory.NewAppointmentRepository(seed)
	docRepo := memory.NewDoctorRepository(fixture.Doctors(), fixture.Specializations())
	svc := NewService(aptRepo, docRepo, notification.NewService(time.Minute))
	svc.now = func() time.Time { return testNow }
	return svc, aptRepo, docRepo
}

func patient() *model.User {
	return &model.User{ID: "p1", Name: "John Doe", Email: "john.doe@example.com", Role: model.RolePatient}
}

func bookReq(date string) *model.BookAppointmentRequest {
	return &model.BookAppointmentRequest{
		DoctorID:  "d1",
		Date:      date,
		StartTime: "09:00",
		EndTime:   "09:30",
	}
}

func TestBookAppointment(t *testing.T) {
	svc, repo, _ := newTestService(nil)

	apt, err := svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
	assert.Equal(t, "d1", apt.DoctorID)
	assert.Equal(t, "p1", apt.PatientID)
	assert.Equal(t, "Dr. Sarah Johnson", apt.DoctorName)
	assert.Equal(t, "John Doe", apt.PatientName)
	assert.Equal(t, testNow, apt.CreatedAt)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookRequiresAuthentication(t *testing.T) {
	svc, repo, _ := newTestService(nil)

	_, err := svc.Book(context.Background(), nil, bookReq("2025-06-23"))
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthenticated))

	all, _ := repo.List(context.Background())
	assert.Empty(t, all)
}

func TestBookUnknownDoctor(t *testing.T) {
	svc, repo, _ := newTestService(nil)

	req := bookReq("2025-06-23")
	req.DoctorID = "d999"
	_, err := svc.Book(context.Background(), patient(), req)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

	all, _ := repo.List(context.Background())
	assert.Empty(t, all)
}

func TestBookAssignsUniqueIDs(t *testing.T) {
	svc, _, _ := newTestService(nil)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		apt, err := svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
		require.NoError(t, err)
		_, dup := seen[apt.ID]
		assert.False(t, dup, "duplicate appointment id %s", apt.ID)
		seen[apt.ID] = struct{}{}
	}
}

func TestBookMarksMatchingSlot(t *testing.T) {
	svc, _, docRepo := newTestService(nil)

	// 2025-06-23 is a Monday; d1 offers 09:00-09:30 on Mondays.
	_, err := svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
	require.NoError(t, err)

	doctor, err := docRepo.Get(context.Background(), "d1")
	require.NoError(t, err)
	for _, avail := range doctor.Availability {
		if avail.Day != model.Monday {
			continue
		}
		assert.True(t, avail.Slots[0].IsBooked)
		assert.False(t, avail.Slots[1].IsBooked)
	}
}

func TestBookDoesNotPreventDoubleBooking(t *testing.T) {
	svc, repo, _ := newTestService(nil)

	_, err := svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
	require.NoError(t, err)

	all, _ := repo.List(context.Background())
	assert.Len(t, all, 2)
}

// flagFailingDoctors simulates a directory whose slot flagging is
// unavailable while everything else works.
type flagFailingDoctors struct {
	repository.DoctorRepository
}

func (f flagFailingDoctors) MarkSlotBooked(ctx context.Context, doctorID, day, startTime, endTime string) (bool, error) {
	return false, apperrors.Internal(nil)
}

func TestBookSucceedsWhenSlotFlaggingFails(t *testing.T) {
	aptRepo := memory.NewAppointmentRepository(nil)
	docRepo := memory.NewDoctorRepository(fixture.Doctors(), fixture.Specializations())
	svc := NewService(aptRepo, docRepo, notification.NewService(time.Minute))
	svc.now = func() time.Time { return testNow }
	svc.doctors = flagFailingDoctors{docRepo}

	apt, err := svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)

	all, err := aptRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConcurrentCancelAndListing(t *testing.T) {
	svc, _, _ := newTestService(fixture.Appointments(testNow))

	doctor := &model.User{ID: "d1", Role: model.RoleDoctor}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = svc.Cancel(context.Background(), patient(), "a1")
		}()
		go func() {
			defer wg.Done()
			if b, err := svc.Buckets(context.Background(), doctor); assert.NoError(t, err) {
				for _, a := range append(append(b.Today, b.Upcoming...), b.Past...) {
					assert.NotEmpty(t, a.Status)
				}
			}
		}()
	}
	wg.Wait()

	apt, err := svc.repo.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, apt.Status)
}

func TestCancelUnknownAppointmentLeavesLedgerUnchanged(t *testing.T) {
	seed := fixture.Appointments(testNow)
	svc, repo, _ := newTestService(seed)

	before, _ := repo.List(context.Background())
	statuses := make(map[string]model.AppointmentStatus, len(before))
	for _, a := range before {
		statuses[a.ID] = a.Status
	}

	err := svc.Cancel(context.Background(), patient(), "a999")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

	after, _ := repo.List(context.Background())
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, statuses[after[i].ID], after[i].Status)
		assert.Equal(t, *before[i], *after[i])
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestService(fixture.Appointments(testNow))

	require.NoError(t, svc.Cancel(context.Background(), patient(), "a1"))
	first, _ := repo.Get(context.Background(), "a1")
	assert.Equal(t, model.AppointmentStatusCancelled, first.Status)

	require.NoError(t, svc.Cancel(context.Background(), patient(), "a1"))
	second, _ := repo.Get(context.Background(), "a1")
	assert.Equal(t, first, second)
}

func TestCancelOwnershipCheck(t *testing.T) {
	svc, repo, _ := newTestService(fixture.Appointments(testNow))

	// a1 belongs to p1 and d1; p2 may not cancel it.
	stranger := &model.User{ID: "p2", Name: "Jane Smith", Role: model.RolePatient}
	err := svc.Cancel(context.Background(), stranger, "a1")
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

	apt, _ := repo.Get(context.Background(), "a1")
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)

	// The appointment's doctor may.
	doctor := &model.User{ID: "d1", Name: "Dr. Sarah Johnson", Role: model.RoleDoctor}
	require.NoError(t, svc.Cancel(context.Background(), doctor, "a1"))

	// An admin may cancel anything.
	admin := &model.User{ID: "admin1", Role: model.RoleAdmin}
	require.NoError(t, svc.Cancel(context.Background(), admin, "a2"))
}

func TestListForUserScopesByRole(t *testing.T) {
	svc, _, _ := newTestService(fixture.Appointments(testNow))

	doctor := &model.User{ID: "d1", Role: model.RoleDoctor}
	forDoctor, err := svc.ListForUser(context.Background(), doctor)
	require.NoError(t, err)
	require.NotEmpty(t, forDoctor)
	for _, a := range forDoctor {
		assert.Equal(t, "d1", a.DoctorID)
	}

	forPatient, err := svc.ListForUser(context.Background(), patient())
	require.NoError(t, err)
	require.NotEmpty(t, forPatient)
	for _, a := range forPatient {
		assert.Equal(t, "p1", a.PatientID)
	}

	admin := &model.User{ID: "admin1", Role: model.RoleAdmin}
	forAdmin, err := svc.ListForUser(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, forAdmin, 4)
}

func TestClassifyPartitionIsTotalAndDisjoint(t *testing.T) {
	svc, _, _ := newTestService(nil)

	day := func(offset int) string { return testNow.AddDate(0, 0, offset).Format(model.DateLayout) }
	appointments := []*model.Appointment{
		{ID: "c1", Date: day(0), StartTime: "09:00", Status: model.AppointmentStatusScheduled},
		{ID: "c2", Date: day(0), StartTime: "17:00", Status: model.AppointmentStatusScheduled},
		{ID: "c3", Date: day(1), StartTime: "09:00", Status: model.AppointmentStatusScheduled},
		{ID: "c4", Date: day(-1), StartTime: "09:00", Status: model.AppointmentStatusScheduled},
		{ID: "c5", Date: day(-3), StartTime: "09:00", Status: model.AppointmentStatusCompleted},
		{ID: "c6", Date: day(2), StartTime: "09:00", Status: model.AppointmentStatusCancelled},
		{ID: "c7", Date: day(-5), StartTime: "09:00", Status: model.AppointmentStatusNoShow},
	}

	b := svc.Classify(appointments, testNow)

	seen := make(map[string]int)
	for _, a := range b.Today {
		seen[a.ID]++
	}
	for _, a := range b.Upcoming {
		seen[a.ID]++
	}
	for _, a := range b.Past {
		seen[a.ID]++
	}
	require.Len(t, seen, len(appointments), "classification must cover every appointment")
	for id, n := range seen {
		assert.Equal(t, 1, n, "appointment %s classified %d times", id, n)
	}
}

func TestClassifyTodayTakesPrecedenceOverStartedAt(t *testing.T) {
	svc, _, _ := newTestService(nil)

	today := testNow.Format(model.DateLayout)
	// Started this morning, before the fixed noon "now": still today,
	// because the today predicate checks only the calendar date.
	started := &model.Appointment{ID: "c1", Date: today, StartTime: "09:00", Status: model.AppointmentStatusScheduled}
	b := svc.Classify([]*model.Appointment{started}, testNow)

	require.Len(t, b.Today, 1)
	assert.Empty(t, b.Upcoming)
	assert.Empty(t, b.Past)
}

func TestClassifyCancelledTodayIsPast(t *testing.T) {
	svc, _, _ := newTestService(nil)

	today := testNow.Format(model.DateLayout)
	cancelled := &model.Appointment{ID: "c1", Date: today, StartTime: "17:00", Status: model.AppointmentStatusCancelled}
	b := svc.Classify([]*model.Appointment{cancelled}, testNow)

	assert.Empty(t, b.Today)
	assert.Empty(t, b.Upcoming)
	assert.Len(t, b.Past, 1)
}

func TestSummaryCountsDistinctPatients(t *testing.T) {
	svc, _, _ := newTestService(fixture.Appointments(testNow))

	doctor := &model.User{ID: "d1", Role: model.RoleDoctor}
	summary, err := svc.Summary(context.Background(), doctor)
	require.NoError(t, err)

	// d1's seed ledger has p1 today and p2 in two days.
	assert.Equal(t, 1, summary.TodayCount)
	assert.Equal(t, 1, summary.UpcomingCount)
	assert.Equal(t, 0, summary.PastCount)
	assert.Equal(t, 2, summary.DistinctPatients)
}

func TestAvailabilityOverlaysLedger(t *testing.T) {
	svc, _, _ := newTestService(nil)

	// Monday 2025-06-23: all of d1's slots start free.
	slots, err := svc.Availability(context.Background(), "d1", "2025-06-23")
	require.NoError(t, err)
	require.Len(t, slots, 4)
	for _, s := range slots {
		assert.False(t, s.IsBooked)
	}

	_, err = svc.Book(context.Background(), patient(), bookReq("2025-06-23"))
	require.NoError(t, err)

	slots, err = svc.Availability(context.Background(), "d1", "2025-06-23")
	require.NoError(t, err)
	assert.True(t, slots[0].IsBooked)
	assert.False(t, slots[1].IsBooked)

	// The same weekday one week later is unaffected by the ledger;
	// only the weekly slot flag carries over.
	slots, err = svc.Availability(context.Background(), "d1", "2025-06-30")
	require.NoError(t, err)
	assert.True(t, slots[0].IsBooked)
}

func TestAvailabilityUnknownDoctor(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Availability(context.Background(), "d999", "2025-06-23")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestActivityIsNewestFirst(t *testing.T) {
	svc, _, _ := newTestService(fixture.Appointments(testNow))

	feed, err := svc.Activity(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 4)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i-1].Date.Before(feed[i].Date))
	}

	types := make(map[string]bool)
	for _, f := range feed {
		types[f.Type] = true
	}
	assert.True(t, types[model.ActivityNewBooking])
	assert.True(t, types[model.ActivityCompleted])
	assert.True(t, types[model.ActivityCancellation])
}
