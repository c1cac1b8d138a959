package api

import (
	"github.com/terraincognita07/musclemap/internal/services"
)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type profilePayload struct {
	Age           int     `json:"age"`
	HeightCm      int     `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	Experience    string  `json:"experience"`
}

func (payload profilePayload) toInput() services.ProfileInput {
	return services.ProfileInput{
		Age:           payload.Age,
		HeightCm:      payload.HeightCm,
		WeightKg:      payload.WeightKg,
		Gender:        payload.Gender,
		ActivityLevel: payload.ActivityLevel,
		Goal:          payload.Goal,
		Experience:    payload.Experience,
	}
}

type checkinPayload struct {
	CurrentWeight    float64 `json:"current_weight"`
	DietAdherence    string  `json:"diet_adherence"`
	StrengthProgress string  `json:"strength_progress"`
	EnergyLevels     string  `json:"energy_levels"`
	SleepQuality     string  `json:"sleep_quality"`
	Notes            string  `json:"notes"`
}

func (payload checkinPayload) toInput() services.CheckinInput {
	return services.CheckinInput{
		CurrentWeight:    payload.CurrentWeight,
		DietAdherence:    payload.DietAdherence,
		StrengthProgress: payload.StrengthProgress,
		EnergyLevels:     payload.EnergyLevels,
		SleepQuality:     payload.SleepQuality,
		Notes:            payload.Notes,
	}
}

type userResponse struct {
	ID                 uint   `json:"id"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"must_change_password"`
}
