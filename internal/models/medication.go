package models

import "hospital-admin-backend/pkg/utils"

// Medication represents the medications table
type Medication struct {
	MedicationID FlexInt   `gorm:"column:medication_id;primaryKey;autoIncrement" json:"medication_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Dosage       string    `gorm:"size:50" json:"dosage"`
	Price        FlexFloat `gorm:"type:decimal(10,2)" json:"price"`
}

func (Medication) TableName() string {
	return "medications"
}

func (m Medication) Sanitized() Medication {
	m.Name = utils.SanitizeText(m.Name)
	m.Dosage = utils.SanitizeText(m.Dosage)
	return m
}

func (m Medication) ResourceID() int {
	return int(m.MedicationID)
}
