package models

import "time"

// ProgressLog is one weekly check-in. Rows are only ever appended.
type ProgressLog struct {
	ID                uint             `gorm:"primaryKey" json:"-"`
	PublicID          string           `gorm:"column:public_id;not null;uniqueIndex" json:"id"`
	ProfileID         uint             `gorm:"not null;index" json:"-"`
	Date              time.Time        `gorm:"type:date;not null" json:"date"`
	WeekNumber        int              `gorm:"not null" json:"week_number"`
	StartWeightOfWeek float64          `gorm:"not null" json:"start_weight_of_week"`
	CurrentWeight     float64          `gorm:"not null" json:"current_weight"`
	DietAdherence     DietAdherence    `gorm:"not null" json:"diet_adherence"`
	StrengthProgress  StrengthProgress `gorm:"not null" json:"strength_progress"`
	EnergyLevels      EnergyLevel      `gorm:"not null" json:"energy_levels"`
	SleepQuality      SleepQuality     `gorm:"not null" json:"sleep_quality"`
	Notes             string           `json:"notes"`
	Outcome           string           `gorm:"not null" json:"outcome"`
	CreatedAt         time.Time        `json:"created_at"`
}

// WeightChange is signed: negative means weight was lost during the week.
func (entry ProgressLog) WeightChange() float64 {
	return entry.CurrentWeight - entry.StartWeightOfWeek
}
