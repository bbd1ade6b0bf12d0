package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is the denormalized catalog row. Tags stay serialized as JSON text so
// the conjunctive tag filter can match them with LIKE; the learn/requirements
// lists and the nested curriculum are opaque JSON columns parsed only at the
// response boundary.
type Course struct {
	gorm.Model
	Title           string         `json:"title" gorm:"not null"`
	Instructor      string         `json:"instructor" gorm:"not null"`
	InstructorImage string         `json:"instructorImage" gorm:"default:''"`
	InstructorBio   string         `json:"instructorBio" gorm:"type:text"`
	Price           int            `json:"price" gorm:"not null"`
	OriginalPrice   int            `json:"originalPrice" gorm:"not null"`
	Rating          float64        `json:"rating" gorm:"default:0"`
	ReviewCount     int64          `json:"reviewCount" gorm:"default:0"`
	StudentCount    int64          `json:"studentCount" gorm:"default:0"`
	Image           string         `json:"image" gorm:"not null"`
	Tags            string         `json:"tags" gorm:"type:text;default:'[]'"`
	Category        string         `json:"category" gorm:"index;not null"` // Category.ID
	Description     string         `json:"description" gorm:"type:text"`
	Level           string         `json:"level" gorm:"default:'입문'"`
	WhatYouLearn    datatypes.JSON `json:"whatYouLearn"`
	Requirements    datatypes.JSON `json:"requirements"`
	TotalHours      int            `json:"totalHours" gorm:"default:0"`
	TotalLectures   int            `json:"totalLectures" gorm:"default:0"`
	LastUpdated     string         `json:"lastUpdated" gorm:"default:''"`
	Curriculum      datatypes.JSON `json:"curriculum"`
}

// CurriculumSection is one ordered section of a course curriculum
type CurriculumSection struct {
	Title    string    `json:"title"`
	Lectures []Lecture `json:"lectures"`
}

// Lecture is a single lecture inside a curriculum section
type Lecture struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Preview  bool   `json:"preview"`
}
