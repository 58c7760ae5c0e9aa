package models

import "hospital-admin-backend/pkg/utils"

// Prescription represents the prescriptions table
type Prescription struct {
	PrescriptionID   FlexInt `gorm:"column:prescription_id;primaryKey;autoIncrement" json:"prescription_id"`
	PatientID        FlexInt `gorm:"column:patient_id" json:"patient_id"`
	DoctorID         FlexInt `gorm:"column:doctor_id" json:"doctor_id"`
	MedicationID     FlexInt `gorm:"column:medication_id" json:"medication_id"`
	Dosage           string  `gorm:"size:50" json:"dosage"`
	Frequency        string  `gorm:"size:50" json:"frequency"`
	Duration         string  `gorm:"size:50" json:"duration"`
	PrescriptionDate string  `gorm:"column:prescription_date;type:date" json:"prescription_date"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

func (p Prescription) Sanitized() Prescription {
	p.Dosage = utils.SanitizeText(p.Dosage)
	p.Frequency = utils.SanitizeText(p.Frequency)
	p.Duration = utils.SanitizeText(p.Duration)
	p.PrescriptionDate = utils.SanitizeText(p.PrescriptionDate)
	return p
}

func (p Prescription) ResourceID() int {
	return int(p.PrescriptionID)
}
