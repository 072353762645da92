// Package fixture holds the hardcoded seed records that stand in for a
// real data store. Every call returns a fresh copy so callers can hold
// mutable state (slot flags, appended entries) without bleeding between
// instances.
package fixture

import (
	"time"

	"github.com/medsync/booking-api/internal/model"
)

// Well-known fixture accounts.
const (
	AdminEmail = "admin@medsync.com"
)

func slots(doctorID, day string, times ...string) model.Availability {
	a := model.Availability{Day: day}
	for i := 0; i+1 < len(times); i += 2 {
		a.Slots = append(a.Slots, model.TimeSlot{
			ID:        doctorID + "-" + day[:3] + "-" + times[i],
			StartTime: times[i],
			EndTime:   times[i+1],
		})
	}
	return a
}

// Doctors returns the seeded doctor directory in its canonical order.
func Doctors() []*model.Doctor {
	return []*model.Doctor{
		{
			User: model.User{
				ID:    "d1",
				Name:  "Dr. Sarah Johnson",
				Email: "sarah.johnson@example.com",
				Role:  model.RoleDoctor,
			},
			Specialization:  "Cardiology",
			Qualifications:  []string{"MBBS", "MD", "FACC"},
			Experience:      12,
			Bio:             "Board-certified cardiologist focused on preventive care and cardiac rehabilitation.",
			Phone:           "+1 555 0101",
			Address:         "120 Heartland Ave, Springfield",
			ConsultationFee: 150,
			Rating:          4.8,
			ReviewCount:     124,
			Availability: []model.Availability{
				slots("d1", model.Monday, "09:00", "09:30", "09:30", "10:00", "10:00", "10:30", "10:30", "11:00"),
				slots("d1", model.Wednesday, "14:00", "14:30", "14:30", "15:00", "15:00", "15:30"),
				slots("d1", model.Friday, "09:00", "09:30", "09:30", "10:00"),
			},
		},
		{
			User: model.User{
				ID:    "d2",
				Name:  "Dr. Michael Chen",
				Email: "michael.chen@example.com",
				Role:  model.RoleDoctor,
			},
			Specialization:  "Dermatology",
			Qualifications:  []string{"MBBS", "MD"},
			Experience:      8,
			Bio:             "Dermatologist specializing in medical and cosmetic skin care.",
			Phone:           "+1 555 0102",
			Address:         "45 Elm Street, Springfield",
			ConsultationFee: 120,
			Rating:          4.6,
			ReviewCount:     98,
			Availability: []model.Availability{
				slots("d2", model.Tuesday, "10:00", "10:30", "10:30", "11:00", "11:00", "11:30"),
				slots("d2", model.Thursday, "13:00", "13:30", "13:30", "14:00"),
			},
		},
		{
			User: model.User{
				ID:    "d3",
				Name:  "Dr. Emily Rodriguez",
				Email: "emily.rodriguez@example.com",
				Role:  model.RoleDoctor,
			},
			Specialization:  "Pediatrics",
			Qualifications:  []string{"MBBS", "DCH", "MD"},
			Experience:      10,
			Bio:             "Pediatrician caring for newborns through adolescents, with a focus on developmental health.",
			Phone:           "+1 555 0103",
			Address:         "89 Maple Road, Springfield",
			ConsultationFee: 100,
			Rating:          4.9,
			ReviewCount:     156,
			Availability: []model.Availability{
				slots("d3", model.Monday, "08:00", "08:30", "08:30", "09:00"),
				slots("d3", model.Tuesday, "08:00", "08:30", "08:30", "09:00"),
				slots("d3", model.Saturday, "10:00", "10:30", "10:30", "11:00", "11:00", "11:30"),
			},
		},
		{
			User: model.User{
				ID:    "d4",
				Name:  "Dr. James Wilson",
				Email: "james.wilson@example.com",
				Role:  model.RoleDoctor,
			},
			Specialization:  "Orthopedics",
			Qualifications:  []string{"MBBS", "MS Ortho"},
			Experience:      15,
			Bio:             "Orthopedic surgeon with a sports injury practice.",
			Phone:           "+1 555 0104",
			Address:         "7 Oak Lane, Springfield",
			ConsultationFee: 180,
			Rating:          4.5,
			ReviewCount:     87,
			Availability: []model.Availability{
				slots("d4", model.Wednesday, "09:00", "09:45", "09:45", "10:30"),
				slots("d4", model.Friday, "14:00", "14:45", "14:45", "15:30"),
			},
		},
		{
			User: model.User{
				ID:    "d5",
				Name:  "Dr. Aisha Patel",
				Email: "aisha.patel@example.com",
				Role:  model.RoleDoctor,
			},
			Specialization:  "Neurology",
			Qualifications:  []string{"MBBS", "MD", "DM Neurology"},
			Experience:      9,
			Bio:             "Neurologist treating headache, epilepsy and movement disorders.",
			Phone:           "+1 555 0105",
			Address:         "230 Cedar Blvd, Springfield",
			ConsultationFee: 160,
			Rating:          4.7,
			ReviewCount:     110,
			Availability: []model.Availability{
				slots("d5", model.Monday, "11:00", "11:30", "11:30", "12:00"),
				slots("d5", model.Thursday, "09:00", "09:30", "09:30", "10:00", "10:00", "10:30"),
			},
		},
	}
}

// Patients returns the seeded patient accounts.
func Patients() []*model.Patient {
	return []*model.Patient{
		{
			User: model.User{
				ID:    "p1",
				Name:  "John Doe",
				Email: "john.doe@example.com",
				Role:  model.RolePatient,
			},
			Phone:          "+1 555 0201",
			DateOfBirth:    "1988-04-12",
			Gender:         "male",
			Address:        "14 Birch Street, Springfield",
			MedicalHistory: []string{"hypertension"},
		},
		{
			User: model.User{
				ID:    "p2",
				Name:  "Jane Smith",
				Email: "jane.smith@example.com",
				Role:  model.RolePatient,
			},
			Phone:       "+1 555 0202",
			DateOfBirth: "1992-09-30",
			Gender:      "female",
			Address:     "77 Willow Court, Springfield",
		},
	}
}

// Admin returns the seeded administrator account.
func Admin() *model.User {
	return &model.User{
		ID:    "admin1",
		Name:  "System Administrator",
		Email: AdminEmail,
		Role:  model.RoleAdmin,
	}
}

// Specializations returns the browsable specialty list.
func Specializations() []*model.Specialization {
	return []*model.Specialization{
		{ID: "s1", Name: "Cardiology", Icon: "heart"},
		{ID: "s2", Name: "Dermatology", Icon: "scan"},
		{ID: "s3", Name: "Pediatrics", Icon: "baby"},
		{ID: "s4", Name: "Orthopedics", Icon: "bone"},
		{ID: "s5", Name: "Neurology", Icon: "brain"},
		{ID: "s6", Name: "General Medicine", Icon: "stethoscope"},
	}
}

// Appointments returns the seed ledger. Dates are derived from now so
// the seeded entries exercise every classification bucket regardless of
// when the process starts.
func Appointments(now time.Time) []*model.Appointment {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(model.DateLayout)
	}
	return []*model.Appointment{
		{
			ID:          "a1",
			DoctorID:    "d1",
			PatientID:   "p1",
			DoctorName:  "Dr. Sarah Johnson",
			PatientName: "John Doe",
			Date:        day(0),
			StartTime:   "09:00",
			EndTime:     "09:30",
			Status:      model.AppointmentStatusScheduled,
			CreatedAt:   now.AddDate(0, 0, -3),
		},
		{
			ID:          "a2",
			DoctorID:    "d1",
			PatientID:   "p2",
			DoctorName:  "Dr. Sarah Johnson",
			PatientName: "Jane Smith",
			Date:        day(2),
			StartTime:   "14:00",
			EndTime:     "14:30",
			Status:      model.AppointmentStatusScheduled,
			CreatedAt:   now.AddDate(0, 0, -2),
		},
		{
			ID:          "a3",
			DoctorID:    "d2",
			PatientID:   "p1",
			DoctorName:  "Dr. Michael Chen",
			PatientName: "John Doe",
			Date:        day(-7),
			StartTime:   "10:00",
			EndTime:     "10:30",
			Status:      model.AppointmentStatusCompleted,
			Notes:       "Follow-up in six months.",
			CreatedAt:   now.AddDate(0, 0, -14),
		},
		{
			ID:          "a4",
			DoctorID:    "d3",
			PatientID:   "p2",
			DoctorName:  "Dr. Emily Rodriguez",
			PatientName: "Jane Smith",
			Date:        day(-2),
			StartTime:   "08:00",
			EndTime:     "08:30",
			Status:      model.AppointmentStatusCancelled,
			CreatedAt:   now.AddDate(0, 0, -5),
		},
	}
}
