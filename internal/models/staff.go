package models

import "hospital-admin-backend/pkg/utils"

// Staff represents the staff table
type Staff struct {
	StaffID      FlexInt `gorm:"column:staff_id;primaryKey;autoIncrement" json:"staff_id"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	Position     string  `gorm:"size:50" json:"position"`
	DepartmentID FlexInt `gorm:"column:department_id" json:"department_id"`
	Phone        string  `gorm:"size:20" json:"phone"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s Staff) Sanitized() Staff {
	s.Name = utils.SanitizeText(s.Name)
	s.Position = utils.SanitizeText(s.Position)
	s.Phone = utils.SanitizeText(s.Phone)
	return s
}

func (s Staff) ResourceID() int {
	return int(s.StaffID)
}
