package course

import (
	"time"

	"gorm.io/gorm"
)

// CourseSession is an admin-managed cohort of a course
type CourseSession struct {
	gorm.Model
	CourseID      uint      `json:"course_id" gorm:"index;not null"`
	SessionNumber int       `json:"session_number" gorm:"not null"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Capacity      int       `json:"capacity" gorm:"default:0"`
	IsDeleted     bool      `json:"-" gorm:"default:false"`
}
