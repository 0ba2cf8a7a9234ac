package models

import "gorm.io/gorm"

type Tuition struct {
	gorm.Model
	TutorID      uint    `json:"tutor_id" gorm:"index;not null"`
	Title        string  `json:"title" gorm:"type:varchar(200);not null"`
	Description  string  `json:"description" gorm:"type:text"`
	Subject      string  `json:"subject" gorm:"type:varchar(100)"`
	ClassLevel   string  `json:"class_level" gorm:"type:varchar(100)"`
	Availability bool    `json:"availability" gorm:"default:true"`
	IsPaid       bool    `json:"is_paid" gorm:"default:false"`
	Price        float64 `json:"price" gorm:"type:numeric(10,2);default:0"`
	IsDeleted    bool    `json:"-" gorm:"default:false"`
	Tutor        User    `json:"-" gorm:"foreignKey:TutorID;constraint:OnDelete:CASCADE"`
}
