package memory

import (
	"context"
	"sync"

	"github.com/medsync/booking-api/internal/model"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

// AppointmentRepository is the append-only ledger. Insertion order is
// preserved; Update replaces an entry in place. Every record that
// crosses the repository boundary is a detached copy, so callers can
// read and mutate results without holding any lock.
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments []*model.Appointment
	byID         map[string]*model.Appointment
}

func NewAppointmentRepository(seed []*model.Appointment) *AppointmentRepository {
	r := &AppointmentRepository{
		byID: make(map[string]*model.Appointment, len(seed)),
	}
	for _, a := range seed {
		c := cloneAppointment(a)
		r.appointments = append(r.appointments, c)
		r.byID[c.ID] = c
	}
	return r
}

func cloneAppointment(a *model.Appointment) *model.Appointment {
	c := *a
	return &c
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Appointment, len(r.appointments))
	for i, a := range r.appointments {
		out[i] = cloneAppointment(a)
	}
	return out, nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return cloneAppointment(a), nil
}

func (r *AppointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[apt.ID]; exists {
		return apperrors.Conflict("appointment id already exists")
	}
	c := cloneAppointment(apt)
	r.appointments = append(r.appointments, c)
	r.byID[c.ID] = c
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, apt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[apt.ID]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	c := cloneAppointment(apt)
	r.byID[c.ID] = c
	for i, a := range r.appointments {
		if a.ID == c.ID {
			r.appointments[i] = c
			break
		}
	}
	return nil
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Appointment, error) {
	return r.listWhere(func(a *model.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	return r.listWhere(func(a *model.Appointment) bool { return a.PatientID == patientID })
}

func (r *AppointmentRepository) listWhere(keep func(*model.Appointment) bool) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Appointment
	for _, a := range r.appointments {
		if keep(a) {
			out = append(out, cloneAppointment(a))
		}
	}
	return out, nil
}
