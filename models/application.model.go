package models

import "gorm.io/gorm"

// ApplicationStatus defines the state of a student's application to a tuition
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Application is a student's request to join a tuition. A student applies to
// a given tuition at most once.
type Application struct {
	gorm.Model
	TuitionID   uint              `json:"tuition_id" gorm:"not null;uniqueIndex:idx_tuition_applicant"`
	ApplicantID uint              `json:"applicant_id" gorm:"not null;uniqueIndex:idx_tuition_applicant"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(10);default:'PENDING'"`
	Tuition     Tuition           `json:"-" gorm:"foreignKey:TuitionID;constraint:OnDelete:CASCADE"`
	Applicant   User              `json:"-" gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}
