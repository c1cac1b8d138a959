package services

import (
	"fmt"

	"github.com/terraincognita07/musclemap/internal/models"
)

const (
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
	KcalPerGramCarbs   = 4

	weightReductionDeficitKcal = 400
	muscleGainSurplusKcal      = 300
	fatCalorieShare            = 0.25

	macroClampWarning = "Calorie target is too low to cover protein and fat; carbohydrates were clamped to 0 g. Review this plan before following it."
)

var proteinGramsPerKg = map[models.Goal]float64{
	models.GoalWeightReduction: 2.0,
	models.GoalMuscleGain:      2.0,
	models.GoalGeneralFitness:  1.5,
}

func CalorieTarget(tdee int, goal models.Goal) (int, error) {
	switch goal {
	case models.GoalWeightReduction:
		return tdee - weightReductionDeficitKcal, nil
	case models.GoalMuscleGain:
		return tdee + muscleGainSurplusKcal, nil
	case models.GoalGeneralFitness:
		return tdee, nil
	default:
		return 0, unknownValue(ErrUnknownGoal, string(goal))
	}
}

func ProteinTarget(goal models.Goal, weightKg float64) (int, error) {
	perKg, ok := proteinGramsPerKg[goal]
	if !ok {
		return 0, unknownValue(ErrUnknownGoal, string(goal))
	}
	return int(perKg * weightKg), nil
}

// RecomputeMacros derives fat and carbohydrate grams from a calorie target and
// a fixed protein amount. Protein and fat are taken first and carbohydrates
// absorb the remainder. clamped is true when a derived value had to be raised
// to zero.
func RecomputeMacros(calories int, proteinG int) (fatsG int, carbsG int, clamped bool) {
	fatsG = int(float64(calories) * fatCalorieShare / KcalPerGramFat)
	if fatsG < 0 {
		fatsG = 0
		clamped = true
	}

	remaining := calories - proteinG*KcalPerGramProtein - fatsG*KcalPerGramFat
	if remaining < 0 {
		return fatsG, 0, true
	}
	return fatsG, remaining / KcalPerGramCarbs, clamped
}

// MacroCalories reconstructs the calorie total implied by a plan's macros.
func MacroCalories(plan models.NutritionPlan) int {
	return plan.ProteinG*KcalPerGramProtein + plan.FatsG*KcalPerGramFat + plan.CarbsG*KcalPerGramCarbs
}

func BuildNutrition(tdee int, goal models.Goal, weightKg float64) (models.NutritionPlan, error) {
	calories, err := CalorieTarget(tdee, goal)
	if err != nil {
		return models.NutritionPlan{}, err
	}
	protein, err := ProteinTarget(goal, weightKg)
	if err != nil {
		return models.NutritionPlan{}, err
	}

	plan, clamped := withRecomputedMacros(models.NutritionPlan{
		CaloriesKcal: calories,
		ProteinG:     protein,
		Notes:        initialNutritionNote(goal, tdee),
	})
	if clamped {
		plan.Notes = plan.Notes + " " + macroClampWarning
	}
	return plan, nil
}

// withRecomputedMacros never lets calories or protein go negative.
func withRecomputedMacros(plan models.NutritionPlan) (models.NutritionPlan, bool) {
	clamped := false
	if plan.CaloriesKcal < 0 {
		plan.CaloriesKcal = 0
		clamped = true
	}
	if plan.ProteinG < 0 {
		plan.ProteinG = 0
		clamped = true
	}

	fats, carbs, macrosClamped := RecomputeMacros(plan.CaloriesKcal, plan.ProteinG)
	plan.FatsG = fats
	plan.CarbsG = carbs
	return plan, clamped || macrosClamped
}

func initialNutritionNote(goal models.Goal, tdee int) string {
	switch goal {
	case models.GoalWeightReduction:
		return fmt.Sprintf("Weight reduction: %d kcal below your maintenance of %d kcal. High protein protects muscle while you lose fat.", weightReductionDeficitKcal, tdee)
	case models.GoalMuscleGain:
		return fmt.Sprintf("Muscle gain: %d kcal above your maintenance of %d kcal for a lean bulk. Hit your protein target every day.", muscleGainSurplusKcal, tdee)
	default:
		return fmt.Sprintf("General fitness: eat at your maintenance of %d kcal with a balanced diet of whole foods.", tdee)
	}
}
