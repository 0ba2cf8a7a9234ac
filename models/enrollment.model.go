package models

import "gorm.io/gorm"

// Enrollment is a confirmed placement of a student into a tuition, created
// when the tutor accepts the student's application. PaymentVerified flips to
// true exactly once, by the payment success callback.
type Enrollment struct {
	gorm.Model
	TuitionID       uint    `json:"tuition_id" gorm:"not null;uniqueIndex:idx_tuition_student"`
	StudentID       uint    `json:"student_id" gorm:"not null;uniqueIndex:idx_tuition_student"`
	PaymentVerified bool    `json:"payment_verified" gorm:"default:false"`
	Tuition         Tuition `json:"-" gorm:"foreignKey:TuitionID;constraint:OnDelete:CASCADE"`
	Student         User    `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
