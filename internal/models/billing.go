package models

import "hospital-admin-backend/pkg/utils"

// Billing represents the billing table
type Billing struct {
	BillingID     FlexInt   `gorm:"column:billing_id;primaryKey;autoIncrement" json:"billing_id"`
	PatientID     FlexInt   `gorm:"column:patient_id" json:"patient_id"`
	AppointmentID FlexInt   `gorm:"column:appointment_id" json:"appointment_id"`
	Amount        FlexFloat `gorm:"type:decimal(10,2)" json:"amount"`
	BillDate      string    `gorm:"column:bill_date;type:date" json:"bill_date"`
	Status        string    `gorm:"size:20" json:"status"`
}

func (Billing) TableName() string {
	return "billing"
}

func (b Billing) Sanitized() Billing {
	b.BillDate = utils.SanitizeText(b.BillDate)
	b.Status = utils.SanitizeText(b.Status)
	return b
}

func (b Billing) ResourceID() int {
	return int(b.BillingID)
}
