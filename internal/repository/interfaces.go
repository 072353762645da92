package repository

import (
	"context"

	"github.com/medsync/booking-api/internal/model"
)

// DoctorRepository serves the doctor directory. The directory is
// fixture-backed and append-free; the only mutation is the slot booked
// flag.
type DoctorRepository interface {
	List(ctx context.Context) ([]*model.Doctor, error)
	Get(ctx context.Context, id string) (*model.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
	Specializations(ctx context.Context) ([]*model.Specialization, error)
	// MarkSlotBooked flags the weekly slot matching day/start/end.
	// It reports whether a matching slot was found.
	MarkSlotBooked(ctx context.Context, doctorID, day, startTime, endTime string) (bool, error)
}

// UserRepository serves patient fixtures, the admin account and users
// created through registration.
type UserRepository interface {
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]*model.User, error)
	Patients(ctx context.Context) ([]*model.Patient, error)
}

// AppointmentRepository owns the appointment ledger. Entries are only
// ever appended or status-mutated, never deleted.
type AppointmentRepository interface {
	List(ctx context.Context) ([]*model.Appointment, error)
	Get(ctx context.Context, id string) (*model.Appointment, error)
	Create(ctx context.Context, apt *model.Appointment) error
	Update(ctx context.Context, apt *model.Appointment) error
	ListByDoctor(ctx context.Context, doctorID string) ([]*model.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error)
}

// HomeVisitRepository stores home visit requests.
type HomeVisitRepository interface {
	Create(ctx context.Context, hv *model.HomeVisit) error
	ListByPatient(ctx context.Context, patientID string) ([]*model.HomeVisit, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*model.HomeVisit, error)
}
