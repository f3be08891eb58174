package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types accepted on log/update.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Meal is one logged intake event. LoggedAt establishes both ordering and the
// calendar day the meal belongs to. Ownership never changes after creation.
type Meal struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Type      string // breakfast|lunch|dinner|snack
	Nutrients NutrientVector `gorm:"serializer:json"`
	Calories  float64
	Servings  float64
	LoggedAt  time.Time `gorm:"index;not null"`
}

// Day returns the calendar day the meal belongs to, as YYYY-MM-DD local to
// the meal's LoggedAt location.
func (m *Meal) Day() string {
	return m.LoggedAt.Format("2006-01-02")
}
