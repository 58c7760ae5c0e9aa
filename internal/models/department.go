package models

import "hospital-admin-backend/pkg/utils"

// Department represents the departments table
type Department struct {
	DepartmentID FlexInt `gorm:"column:department_id;primaryKey;autoIncrement" json:"department_id"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	Description  string  `gorm:"size:255" json:"description"`
}

func (Department) TableName() string {
	return "departments"
}

func (d Department) Sanitized() Department {
	d.Name = utils.SanitizeText(d.Name)
	d.Description = utils.SanitizeText(d.Description)
	return d
}

func (d Department) ResourceID() int {
	return int(d.DepartmentID)
}
