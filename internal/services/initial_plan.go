package services

import (
	"fmt"

	"github.com/terraincognita07/musclemap/internal/models"
)

type InitialPlan struct {
	Metrics   ProfileMetrics       `json:"metrics"`
	Nutrition models.NutritionPlan `json:"nutrition"`
	Workout   models.WorkoutPlan   `json:"workout"`
	Feedback  []string             `json:"feedback"`
}

// BuildInitialPlan derives metrics from profile and builds the starting plans.
func BuildInitialPlan(profile models.Profile) (InitialPlan, error) {
	metrics, err := CalculateProfileMetrics(profile)
	if err != nil {
		return InitialPlan{}, err
	}
	nutrition, err := BuildNutrition(metrics.TDEEKcal, profile.Goal, profile.CurrentWeight)
	if err != nil {
		return InitialPlan{}, err
	}
	workout, err := BuildWorkout(profile.Goal, profile.Experience)
	if err != nil {
		return InitialPlan{}, err
	}

	return InitialPlan{
		Metrics:   metrics,
		Nutrition: nutrition,
		Workout:   workout,
		Feedback:  []string{welcomeMessage(profile.Goal, workout)},
	}, nil
}

func welcomeMessage(goal models.Goal, workout models.WorkoutPlan) string {
	switch goal {
	case models.GoalWeightReduction:
		return fmt.Sprintf("Welcome! Your starting plan pairs a moderate calorie deficit with a %s routine. Stick to it and check in next week.", workout.SplitType)
	case models.GoalMuscleGain:
		return fmt.Sprintf("Welcome! Your starting plan is a lean surplus with a %s routine. Eat well, train hard, and check in next week.", workout.SplitType)
	default:
		return fmt.Sprintf("Welcome! Your starting plan keeps calories at maintenance with a %s routine. Check in next week.", workout.SplitType)
	}
}
