package models

import "hospital-admin-backend/pkg/utils"

// MedicalRecord represents the medical_records table
type MedicalRecord struct {
	RecordID   FlexInt `gorm:"column:record_id;primaryKey;autoIncrement" json:"record_id"`
	PatientID  FlexInt `gorm:"column:patient_id" json:"patient_id"`
	DoctorID   FlexInt `gorm:"column:doctor_id" json:"doctor_id"`
	RecordDate string  `gorm:"column:record_date;type:date" json:"record_date"`
	Notes      string  `gorm:"type:text" json:"notes"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

func (m MedicalRecord) Sanitized() MedicalRecord {
	m.RecordDate = utils.SanitizeText(m.RecordDate)
	m.Notes = utils.SanitizeText(m.Notes)
	return m
}

func (m MedicalRecord) ResourceID() int {
	return int(m.RecordID)
}
