package models

// Category is static reference data seeded at startup, never mutated at runtime
type Category struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Label string `json:"label" gorm:"not null"`
}
