package models

import "hospital-admin-backend/pkg/utils"

// Appointment represents the appointments table. PatientID and DoctorID are
// stored as plain integers; parent existence is not enforced.
type Appointment struct {
	AppointmentID   FlexInt `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	PatientID       FlexInt `gorm:"column:patient_id" json:"patient_id"`
	DoctorID        FlexInt `gorm:"column:doctor_id" json:"doctor_id"`
	AppointmentDate string  `gorm:"column:appointment_date;type:date" json:"appointment_date"`
	AppointmentTime string  `gorm:"column:appointment_time;size:10" json:"appointment_time"`
	Status          string  `gorm:"size:20" json:"status"`
	Reason          string  `gorm:"size:255" json:"reason"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a Appointment) Sanitized() Appointment {
	a.AppointmentDate = utils.SanitizeText(a.AppointmentDate)
	a.AppointmentTime = utils.SanitizeText(a.AppointmentTime)
	a.Status = utils.SanitizeText(a.Status)
	a.Reason = utils.SanitizeText(a.Reason)
	return a
}

func (a Appointment) ResourceID() int {
	return int(a.AppointmentID)
}
