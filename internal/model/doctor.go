package model

import (
	"strings"
	"time"
)

// Weekday names used by the weekly availability schedule.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// WeekdayName maps a time.Weekday to the schedule's lowercase day name.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// Doctor is a user with role=doctor plus practice details and a weekly
// availability schedule.
type Doctor struct {
	User
	Specialization  string         `json:"specialization"`
	Qualifications  []string       `json:"qualifications"`
	Experience      int            `json:"experience"`
	Bio             string         `json:"bio"`
	Phone           string         `json:"phone,omitempty"`
	Address         string         `json:"address,omitempty"`
	ConsultationFee float64        `json:"consultation_fee,omitempty"`
	Rating          float64        `json:"rating"`
	ReviewCount     int            `json:"review_count"`
	Availability    []Availability `json:"availability"`
}

// Availability holds the ordered slots a doctor offers on one weekday.
type Availability struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"slots"`
}

// TimeSlot is a fixed weekly interval a doctor may offer for booking.
// Times are wall-clock strings in 15:04 form.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}

// Specialization is a browsable medical specialty.
type Specialization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// DoctorFilter holds directory search criteria. The three predicates
// combine with logical AND; a zero value matches everything.
type DoctorFilter struct {
	Specialization string  `form:"specialization"`
	Name           string  `form:"name"`
	MinRating      float64 `form:"min_rating"`
}

// Matches reports whether d satisfies every set predicate.
// Specialization "all" or "" means no specialization filter, an empty
// name matches all names, and a zero rating threshold keeps everyone.
func (f DoctorFilter) Matches(d *Doctor) bool {
	if f.Specialization != "" && f.Specialization != "all" && d.Specialization != f.Specialization {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.MinRating > 0 && d.Rating < f.MinRating {
		return false
	}
	return true
}
