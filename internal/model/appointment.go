package model

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// Date and wall-clock layouts used throughout the ledger.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is a ledger entry. Display names are denormalized from
// the doctor and patient at booking time. Entries are never deleted;
// the only mutation after creation is a status transition.
type Appointment struct {
	ID          string            `json:"id"`
	DoctorID    string            `json:"doctor_id"`
	PatientID   string            `json:"patient_id"`
	DoctorName  string            `json:"doctor_name"`
	PatientName string            `json:"patient_name"`
	Date        string            `json:"date"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// StartsAt resolves the appointment's calendar date and start time
// into a single instant in the given location.
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, a.Date+" "+a.StartTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment time %q %q: %w", a.Date, a.StartTime, err)
	}
	return t, nil
}

// BookAppointmentRequest carries the booking parameters.
type BookAppointmentRequest struct {
	DoctorID  string `json:"doctor_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"required,datetime=15:04"`
	Notes     string `json:"notes" binding:"max=1000"`
}

// AppointmentBuckets partitions a role-scoped appointment set relative
// to a fixed now. The three buckets are disjoint and their union is the
// full input set.
type AppointmentBuckets struct {
	Today    []*Appointment `json:"today"`
	Upcoming []*Appointment `json:"upcoming"`
	Past     []*Appointment `json:"past"`
}

// AppointmentSummary holds dashboard counts for one user.
// DistinctPatients is populated for doctors only.
type AppointmentSummary struct {
	TodayCount       int `json:"today_count"`
	UpcomingCount    int `json:"upcoming_count"`
	PastCount        int `json:"past_count"`
	DistinctPatients int `json:"distinct_patients,omitempty"`
}

// Booking activity types shown on the admin dashboard.
const (
	ActivityNewBooking   = "New Booking"
	ActivityCancellation = "Cancellation"
	ActivityCompleted    = "Completed"
	ActivityNoShow       = "No Show"
)

// BookingActivity is one row of the admin activity feed.
type BookingActivity struct {
	ID          string            `json:"id"`
	PatientName string            `json:"patient_name"`
	DoctorName  string            `json:"doctor_name"`
	Date        time.Time         `json:"date"`
	Status      AppointmentStatus `json:"status"`
	Type        string            `json:"type"`
}

// ActivityType maps an appointment status to its activity feed label.
func ActivityType(status AppointmentStatus) string {
	switch status {
	case AppointmentStatusCancelled:
		return ActivityCancellation
	case AppointmentStatusCompleted:
		return ActivityCompleted
	case AppointmentStatusNoShow:
		return ActivityNoShow
	default:
		return ActivityNewBooking
	}
}
