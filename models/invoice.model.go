package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is issued once per completed payment.
type Invoice struct {
	gorm.Model
	PaymentID     uint      `json:"payment_id" gorm:"uniqueIndex;not null"`
	InvoiceNumber string    `json:"invoice_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	IssuedDate    time.Time `json:"issued_date" gorm:"not null"`
	PDFURL        string    `json:"pdf_url" gorm:"type:varchar(255);default:''"`
	Payment       Payment   `json:"-" gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}
