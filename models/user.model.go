package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string `json:"name" gorm:"default:''"`
	Email          string `json:"email" gorm:"unique;not null"`
	Password       string `json:"-" gorm:"not null"`
	Role           string `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	AgreeMarketing bool   `json:"agreeMarketing" gorm:"default:false"`
	IsDeleted      bool   `json:"-" gorm:"default:false"`
}
