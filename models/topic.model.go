package models

import "gorm.io/gorm"

type Topic struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"type:varchar(100);not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Completed    bool       `json:"completed" gorm:"default:false"`
	Enrollment   Enrollment `json:"-" gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE"`
}
