package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsync/booking-api/internal/fixture"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository/memory"
)

func newService() *Service {
	repo := memory.NewDoctorRepository(fixture.Doctors(), fixture.Specializations())
	return NewService(repo)
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	svc := newService()

	doctors, err := svc.Filter(context.Background(), model.DoctorFilter{})
	require.NoError(t, err)
	assert.Len(t, doctors, len(fixture.Doctors()))
}

func TestFilterBySpecialization(t *testing.T) {
	svc := newService()

	doctors, err := svc.Filter(context.Background(), model.DoctorFilter{Specialization: "Cardiology"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)

	// "all" disables the specialization predicate.
	doctors, err = svc.Filter(context.Background(), model.DoctorFilter{Specialization: "all"})
	require.NoError(t, err)
	assert.Len(t, doctors, len(fixture.Doctors()))
}

func TestFilterByNameIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newService()

	doctors, err := svc.Filter(context.Background(), model.DoctorFilter{Name: "sArAh"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "sarah.johnson@example.com", doctors[0].Email)
}

func TestFilterByMinRating(t *testing.T) {
	svc := newService()

	doctors, err := svc.Filter(context.Background(), model.DoctorFilter{MinRating: 4.7})
	require.NoError(t, err)
	require.NotEmpty(t, doctors)
	for _, d := range doctors {
		assert.GreaterOrEqual(t, d.Rating, 4.7)
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	svc := newService()

	doctors, err := svc.Filter(context.Background(), model.DoctorFilter{
		Specialization: "Cardiology",
		Name:           "johnson",
		MinRating:      4.5,
	})
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	// Any predicate failing empties the result.
	doctors, err = svc.Filter(context.Background(), model.DoctorFilter{
		Specialization: "Cardiology",
		Name:           "chen",
	})
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestFilterPreservesOriginalOrder(t *testing.T) {
	svc := newService()

	all, err := svc.Filter(context.Background(), model.DoctorFilter{})
	require.NoError(t, err)

	filtered, err := svc.Filter(context.Background(), model.DoctorFilter{MinRating: 4.6})
	require.NoError(t, err)

	// The filtered view must be a subsequence of the full directory.
	i := 0
	for _, d := range all {
		if i < len(filtered) && filtered[i].ID == d.ID {
			i++
		}
	}
	assert.Equal(t, len(filtered), i, "filtered result is not a subsequence of the directory")
}

func TestFilterUnmatchedCriteriaYieldEmpty(t *testing.T) {
	svc := newService()

	doctors, err := svc.Filter(context.Background(), model.DoctorFilter{Specialization: "Podiatry"})
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestGetUnknownDoctor(t *testing.T) {
	svc := newService()

	_, err := svc.Get(context.Background(), "d999")
	assert.Error(t, err)
}

func TestSpecializations(t *testing.T) {
	svc := newService()

	specs, err := svc.Specializations(context.Background())
	require.NoError(t, err)
	assert.Len(t, specs, len(fixture.Specializations()))
}
