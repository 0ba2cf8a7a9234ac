package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	TuitionID uint    `json:"tuition_id" gorm:"not null;uniqueIndex:idx_review_tuition_student"`
	StudentID uint    `json:"student_id" gorm:"not null;uniqueIndex:idx_review_tuition_student"`
	Rating    int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string  `json:"comment" gorm:"type:text;default:''"`
	Tuition   Tuition `json:"-" gorm:"foreignKey:TuitionID;constraint:OnDelete:CASCADE"`
	Student   User    `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
