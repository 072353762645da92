package memory

import (
	"context"
	"sync"

	"github.com/medsync/booking-api/internal/model"
)

type HomeVisitRepository struct {
	mu     sync.RWMutex
	visits []*model.HomeVisit
}

func NewHomeVisitRepository() *HomeVisitRepository {
	return &HomeVisitRepository{}
}

func (r *HomeVisitRepository) Create(ctx context.Context, hv *model.HomeVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.visits = append(r.visits, hv)
	return nil
}

func (r *HomeVisitRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.HomeVisit, error) {
	return r.listWhere(func(hv *model.HomeVisit) bool { return hv.PatientID == patientID })
}

func (r *HomeVisitRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*model.HomeVisit, error) {
	return r.listWhere(func(hv *model.HomeVisit) bool { return hv.DoctorID == doctorID })
}

func (r *HomeVisitRepository) listWhere(keep func(*model.HomeVisit) bool) ([]*model.HomeVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.HomeVisit
	for _, hv := range r.visits {
		if keep(hv) {
			out = append(out, hv)
		}
	}
	return out, nil
}
