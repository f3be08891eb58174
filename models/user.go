package models

import (
	"time"

	"gorm.io/gorm"
)

// Life stages recognised by the target resolver.
const (
	StageTTC        = "ttc"
	StageTrimester1 = "t1"
	StageTrimester2 = "t2"
	StageTrimester3 = "t3"
	StagePostpartum = "postpartum"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string

	// LifeStage drives target-profile resolution. Unknown values fall back
	// to the mid-pregnancy profile.
	LifeStage string `gorm:"default:t2"`
	DueDate   *time.Time

	// TrackedMetrics are the extended nutrients the user picked for their
	// rings. Display-only; the wellness score ignores them.
	TrackedMetrics []string `gorm:"serializer:json"`
	Onboarded      bool
}
