package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentStatus defines the status of a payment attempt
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// GatewaySSLCommerz is the only gateway currently wired in.
const GatewaySSLCommerz = "sslcommerz"

// Payment is one payment attempt tied 1:1 to an enrollment. TransactionID is
// derived from the enrollment id ("txn_<enrollment_id>"), so re-initiating
// payment for the same enrollment reuses the existing row.
type Payment struct {
	gorm.Model
	EnrollmentID    uint           `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	StudentID       uint           `json:"student_id" gorm:"index;not null"`
	TutorID         uint           `json:"tutor_id" gorm:"index;not null"`
	Amount          float64        `json:"amount" gorm:"type:numeric(10,2);not null"`
	Status          PaymentStatus  `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	TransactionID   string         `json:"transaction_id" gorm:"type:varchar(255);uniqueIndex;not null"`
	Gateway         string         `json:"payment_gateway" gorm:"type:varchar(50);default:'sslcommerz'"`
	PaymentDate     *time.Time     `json:"payment_date"`
	GatewayResponse datatypes.JSON `json:"-"` // raw callback payload, kept for manual reconciliation

	Enrollment Enrollment `json:"-" gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE"`
	Student    User       `json:"-" gorm:"foreignKey:StudentID"`
	Tutor      User       `json:"-" gorm:"foreignKey:TutorID"`
}

func (Payment) TableName() string {
	return "payments"
}
