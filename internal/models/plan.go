package models

import (
	"fmt"
	"time"
)

const (
	PlanSourceInitial = "initial"
	PlanSourceCheckin = "checkin"
)

type NutritionPlan struct {
	CaloriesKcal int    `json:"calories_kcal"`
	ProteinG     int    `json:"protein_g"`
	FatsG        int    `json:"fats_g"`
	CarbsG       int    `json:"carbs_g"`
	Notes        string `json:"notes"`
}

type WorkoutPlan struct {
	SplitType        string    `json:"split_type"`
	FrequencyPerWeek int       `json:"frequency_per_week"`
	Notes            []string  `json:"notes"`
	WeeklySchedule   []DaySlot `json:"weekly_schedule"`
}

// DaySlot is a rest day when Exercises is empty or nil.
type DaySlot struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

func (slot DaySlot) IsRestDay() bool {
	return len(slot.Exercises) == 0
}

type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (reps RepRange) IsZero() bool {
	return reps.Min == 0 && reps.Max == 0
}

func (reps RepRange) String() string {
	if reps.Min == reps.Max {
		return fmt.Sprintf("%d", reps.Min)
	}
	return fmt.Sprintf("%d-%d", reps.Min, reps.Max)
}

// Exercise is one prescription. Timed or distance work leaves Reps zero and
// describes the load in Detail.
type Exercise struct {
	Name   string   `json:"name"`
	Sets   int      `json:"sets,omitempty"`
	Reps   RepRange `json:"reps"`
	Detail string   `json:"detail,omitempty"`
}

func (exercise Exercise) String() string {
	switch {
	case !exercise.Reps.IsZero() && exercise.Sets > 0:
		return fmt.Sprintf("%s: %dx%s", exercise.Name, exercise.Sets, exercise.Reps)
	case exercise.Sets > 0 && exercise.Detail != "":
		return fmt.Sprintf("%s: %dx%s", exercise.Name, exercise.Sets, exercise.Detail)
	case exercise.Detail != "":
		return fmt.Sprintf("%s: %s", exercise.Name, exercise.Detail)
	default:
		return exercise.Name
	}
}

// PlanSnapshot is one revision of a profile's plan. The highest revision is current.
type PlanSnapshot struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	ProfileID uint          `gorm:"not null;uniqueIndex:uidx_profile_revision" json:"-"`
	Revision  int           `gorm:"not null;uniqueIndex:uidx_profile_revision" json:"revision"`
	Source    string        `gorm:"not null" json:"source"`
	Nutrition NutritionPlan `gorm:"serializer:json" json:"nutrition"`
	Workout   WorkoutPlan   `gorm:"serializer:json" json:"workout"`
	Feedback  []string      `gorm:"serializer:json" json:"feedback"`
	CreatedAt time.Time     `json:"created_at"`
}
