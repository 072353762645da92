package model

import "time"

type HomeVisitStatus string

const (
	HomeVisitStatusPending  HomeVisitStatus = "pending"
	HomeVisitStatusAccepted HomeVisitStatus = "accepted"
	HomeVisitStatusDeclined HomeVisitStatus = "declined"
)

// HomeVisit is a patient's request for a doctor to visit at home.
type HomeVisit struct {
	ID         string          `json:"id"`
	DoctorID   string          `json:"doctor_id"`
	PatientID  string          `json:"patient_id"`
	DoctorName string          `json:"doctor_name"`
	Address    string          `json:"address"`
	Reason     string          `json:"reason"`
	Date       string          `json:"date"`
	Time       string          `json:"time"`
	Status     HomeVisitStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateHomeVisitRequest carries a home visit request form. Address and
// reason must be long enough to be actionable.
type CreateHomeVisitRequest struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	Address  string `json:"address" binding:"required,min=10"`
	Reason   string `json:"reason" binding:"required,min=10"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time" binding:"required,datetime=15:04"`
}
