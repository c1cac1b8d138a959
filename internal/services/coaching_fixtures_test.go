package services

import (
	"testing"

	"github.com/terraincognita07/musclemap/internal/models"
)

func testProfile(goal models.Goal, experience models.Experience, weightKg float64) models.Profile {
	return models.Profile{
		ID:             7,
		UserID:         3,
		Age:            30,
		HeightCm:       180,
		Gender:         models.GenderMale,
		ActivityLevel:  models.ActivitySedentary,
		Goal:           goal,
		Experience:     experience,
		StartingWeight: weightKg,
		CurrentWeight:  weightKg,
	}
}

func testProgress(start float64, current float64) models.ProgressLog {
	return models.ProgressLog{
		WeekNumber:        1,
		StartWeightOfWeek: start,
		CurrentWeight:     current,
		DietAdherence:     models.AdherenceGreat,
		StrengthProgress:  models.StrengthGotStronger,
		EnergyLevels:      models.EnergyHigh,
		SleepQuality:      models.SleepGreat,
	}
}

func mustInitialPlan(t *testing.T, profile models.Profile) InitialPlan {
	t.Helper()
	plan, err := BuildInitialPlan(profile)
	if err != nil {
		t.Fatalf("BuildInitialPlan() unexpected error: %v", err)
	}
	return plan
}

func assertMacroInvariant(t *testing.T, plan models.NutritionPlan) {
	t.Helper()
	drift := plan.CaloriesKcal - MacroCalories(plan)
	if drift < 0 || drift >= 4 {
		t.Fatalf("macros reconstruct to %d kcal, want within 4 kcal below %d (plan %+v)", MacroCalories(plan), plan.CaloriesKcal, plan)
	}
	if plan.FatsG < 0 || plan.CarbsG < 0 || plan.ProteinG < 0 {
		t.Fatalf("expected non-negative macros, got %+v", plan)
	}
}
