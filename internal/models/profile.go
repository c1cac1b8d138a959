package models

import "time"

const (
	MinProfileAge      = 16
	MaxProfileAge      = 100
	MinProfileHeightCm = 100
	MaxProfileHeightCm = 250
	MinBodyWeightKg    = 40.0
	MaxBodyWeightKg    = 200.0
)

// Profile is the static coaching profile. CurrentWeight is the baseline for
// the next check-in and the cached metrics follow it.
type Profile struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	UserID         uint          `gorm:"not null;uniqueIndex" json:"-"`
	Age            int           `gorm:"not null" json:"age"`
	HeightCm       int           `gorm:"column:height_cm;not null" json:"height_cm"`
	Gender         Gender        `gorm:"not null" json:"gender"`
	ActivityLevel  ActivityLevel `gorm:"not null" json:"activity_level"`
	Goal           Goal          `gorm:"not null" json:"goal"`
	Experience     Experience    `gorm:"not null" json:"experience"`
	StartingWeight float64       `gorm:"not null" json:"starting_weight"`
	CurrentWeight  float64       `gorm:"not null" json:"current_weight"`
	TDEEKcal       int           `gorm:"column:tdee_kcal;not null" json:"tdee_kcal"`
	BMI            float64       `gorm:"column:bmi;not null" json:"bmi"`
	BMICategory    BMICategory   `gorm:"column:bmi_category;not null" json:"bmi_category"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
