package models

import "hospital-admin-backend/pkg/utils"

// Inpatient represents the inpatients table
type Inpatient struct {
	InpatientID   FlexInt `gorm:"column:inpatient_id;primaryKey;autoIncrement" json:"inpatient_id"`
	PatientID     FlexInt `gorm:"column:patient_id" json:"patient_id"`
	DoctorID      FlexInt `gorm:"column:doctor_id" json:"doctor_id"`
	AdmissionDate string  `gorm:"column:admission_date;type:date" json:"admission_date"`
	DischargeDate *string `gorm:"column:discharge_date;type:date" json:"discharge_date"`
	RoomNumber    string  `gorm:"column:room_number;size:10" json:"room_number"`
	Diagnosis     string  `gorm:"size:255" json:"diagnosis"`
}

func (Inpatient) TableName() string {
	return "inpatients"
}

func (i Inpatient) Sanitized() Inpatient {
	i.AdmissionDate = utils.SanitizeText(i.AdmissionDate)
	if i.DischargeDate != nil {
		d := utils.SanitizeText(*i.DischargeDate)
		i.DischargeDate = &d
	}
	i.RoomNumber = utils.SanitizeText(i.RoomNumber)
	i.Diagnosis = utils.SanitizeText(i.Diagnosis)
	return i
}

func (i Inpatient) ResourceID() int {
	return int(i.InpatientID)
}
