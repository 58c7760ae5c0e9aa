package models

import "hospital-admin-backend/pkg/utils"

// Patient represents the patients table
type Patient struct {
	PatientID FlexInt `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	DOB       string  `gorm:"column:dob;type:date" json:"dob"`
	Gender    string  `gorm:"size:10" json:"gender"`
	Phone     string  `gorm:"size:20" json:"phone"`
	Email     string  `gorm:"size:100" json:"email"`
	Address   string  `gorm:"size:255" json:"address"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p Patient) Sanitized() Patient {
	p.Name = utils.SanitizeText(p.Name)
	p.DOB = utils.SanitizeText(p.DOB)
	p.Gender = utils.SanitizeText(p.Gender)
	p.Phone = utils.SanitizeText(p.Phone)
	p.Email = utils.SanitizeText(p.Email)
	p.Address = utils.SanitizeText(p.Address)
	return p
}

func (p Patient) ResourceID() int {
	return int(p.PatientID)
}
