package models

import (
	"gorm.io/gorm"
)

// DailyLog is one user's nutrition summary for one calendar date.
// The (UserID, Date) pair is unique; the database index is the single
// authority on that invariant.
type DailyLog struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:uidx_user_date"`
	Date   string `gorm:"type:date;not null;uniqueIndex:uidx_user_date"`

	MealIDs        []uint         `gorm:"serializer:json"`
	TotalNutrients NutrientVector `gorm:"serializer:json"`
	TotalCalories  float64

	WaterGlasses  int `gorm:"not null;default:0"`
	WellnessScore int

	Mood        string
	EnergyLevel int
	Notes       string
}
