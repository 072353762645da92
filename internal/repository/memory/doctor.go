// Package memory provides fixture-backed in-memory repositories. The
// process owns all state; nothing survives a restart except what the
// client carries in its session token. Records returned to callers are
// detached copies: the only live structs are the repository's own, and
// those are mutated exclusively under its write lock.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/medsync/booking-api/internal/model"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

type DoctorRepository struct {
	mu              sync.RWMutex
	doctors         []*model.Doctor
	byID            map[string]*model.Doctor
	specializations []*model.Specialization
}

func NewDoctorRepository(doctors []*model.Doctor, specializations []*model.Specialization) *DoctorRepository {
	r := &DoctorRepository{
		doctors:         doctors,
		byID:            make(map[string]*model.Doctor, len(doctors)),
		specializations: specializations,
	}
	for _, d := range doctors {
		r.byID[d.ID] = d
	}
	return r
}

// cloneDoctor deep-copies the availability schedule, the one part of a
// doctor record that mutates after seeding (the slot booked flag).
func cloneDoctor(d *model.Doctor) *model.Doctor {
	c := *d
	c.Qualifications = append([]string(nil), d.Qualifications...)
	c.Availability = make([]model.Availability, len(d.Availability))
	for i, avail := range d.Availability {
		c.Availability[i] = model.Availability{
			Day:   avail.Day,
			Slots: append([]model.TimeSlot(nil), avail.Slots...),
		}
	}
	return &c
}

// List returns the directory in its canonical fixture order.
func (r *DoctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Doctor, len(r.doctors))
	for i, d := range r.doctors {
		out[i] = cloneDoctor(d)
	}
	return out, nil
}

func (r *DoctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return cloneDoctor(d), nil
}

func (r *DoctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.doctors {
		if strings.EqualFold(d.Email, email) {
			return cloneDoctor(d), nil
		}
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func (r *DoctorRepository) Specializations(ctx context.Context) ([]*model.Specialization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Specialization, len(r.specializations))
	copy(out, r.specializations)
	return out, nil
}

func (r *DoctorRepository) MarkSlotBooked(ctx context.Context, doctorID, day, startTime, endTime string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[doctorID]
	if !ok {
		return false, apperrors.NotFound("doctor", nil)
	}
	for ai := range d.Availability {
		if d.Availability[ai].Day != day {
			continue
		}
		for si := range d.Availability[ai].Slots {
			slot := &d.Availability[ai].Slots[si]
			if slot.StartTime == startTime && slot.EndTime == endTime {
				slot.IsBooked = true
				return true, nil
			}
		}
	}
	return false, nil
}
