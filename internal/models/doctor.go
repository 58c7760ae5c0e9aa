package models

import "hospital-admin-backend/pkg/utils"

// Doctor represents the doctors table
type Doctor struct {
	DoctorID       FlexInt `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	Specialization string  `gorm:"size:100" json:"specialization"`
	LicenseNumber  string  `gorm:"column:license_number;size:50" json:"license_number"`
	Phone          string  `gorm:"size:20" json:"phone"`
	Email          string  `gorm:"size:100" json:"email"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) Sanitized() Doctor {
	d.Name = utils.SanitizeText(d.Name)
	d.Specialization = utils.SanitizeText(d.Specialization)
	d.LicenseNumber = utils.SanitizeText(d.LicenseNumber)
	d.Phone = utils.SanitizeText(d.Phone)
	d.Email = utils.SanitizeText(d.Email)
	return d
}

func (d Doctor) ResourceID() int {
	return int(d.DoctorID)
}
