package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "User"  // student
	RoleTutor = "Tutor"
)

type User struct {
	gorm.Model
	FirstName   string     `json:"first_name" gorm:"default:''"`
	LastName    string     `json:"last_name" gorm:"default:''"`
	Email       string     `json:"email" gorm:"unique;not null"`
	PhoneNumber string     `json:"phone_number" gorm:"default:''"`
	Address     string     `json:"address" gorm:"default:''"`
	Role        string     `json:"role" gorm:"default:'User'"` // User, Tutor
	Password    string     `json:"-" gorm:"not null"`
	IsStaff     bool       `json:"is_staff" gorm:"default:false"`
	LastLogin   *time.Time `json:"last_login"`
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}
