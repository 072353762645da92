// Package directory serves the browsable doctor directory. Filtered
// views are pure functions of the fixture list and the criteria; the
// dataset is small enough that nothing is cached.
package directory

import (
	"context"
	"fmt"

	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

// Filter returns the doctors satisfying every set criterion, in the
// directory's original order. Unmatched criteria yield an empty list,
// never an error.
func (s *Service) Filter(ctx context.Context, f model.DoctorFilter) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	filtered := make([]*model.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if f.Matches(d) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Specializations(ctx context.Context) ([]*model.Specialization, error) {
	return s.repo.Specializations(ctx)
}
