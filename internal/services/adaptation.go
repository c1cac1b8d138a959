package services

import (
	"fmt"
	"math"

	"github.com/terraincognita07/musclemap/internal/models"
)

type Adaptation struct {
	Nutrition    models.NutritionPlan `json:"nutrition"`
	Workout      models.WorkoutPlan   `json:"workout"`
	Feedback     []string             `json:"feedback"`
	Outcome      AdaptationOutcome    `json:"outcome"`
	WeightChange float64              `json:"weight_change"`
}

// PlanChanged reports whether the adaptation altered either plan.
func (adaptation Adaptation) PlanChanged() bool {
	return adaptation.Outcome != OutcomeAdherenceGate && adaptation.Outcome != OutcomeRecoveryGate
}

// Adapt evaluates one check-in against the current plans and returns new plan
// values plus the feedback trail. The arguments are never modified.
//
// Gates run first: a week the diet was not followed, or a week of poor sleep
// or low energy, returns both plans unchanged. Otherwise the goal's weight
// table picks the nutrition change and the strength table may adjust the
// workout. Fats and carbohydrates are always rederived from calories and
// protein after a change.
func Adapt(profile models.Profile, progress models.ProgressLog, nutrition models.NutritionPlan, workout models.WorkoutPlan) (Adaptation, error) {
	if err := validateAdaptationSignals(profile.Goal, progress); err != nil {
		return Adaptation{}, err
	}

	weightChange := roundWeightChange(progress.WeightChange())
	result := Adaptation{
		Nutrition:    nutrition,
		Workout:      CloneWorkoutPlan(workout),
		WeightChange: weightChange,
	}

	if progress.DietAdherence == models.AdherenceDidNotFollow {
		result.Outcome = OutcomeAdherenceGate
		result.Feedback = []string{adherenceGateMessage}
		return result, nil
	}
	if progress.SleepQuality == models.SleepPoor || progress.EnergyLevels == models.EnergyLow {
		result.Outcome = OutcomeRecoveryGate
		result.Feedback = []string{recoveryGateMessage}
		return result, nil
	}

	rules := adaptationRules[profile.Goal]
	rule := matchWeightRule(rules.weight, weightChange)
	result.Outcome = rule.outcome
	result.Feedback = append(result.Feedback, rule.feedback(weightChange)...)

	if rule.caloriesDelta != 0 || rule.proteinDelta != 0 {
		tdee, err := TotalDailyEnergyExpenditure(profile)
		if err != nil {
			return Adaptation{}, err
		}
		adjusted, clamped := withRecomputedMacros(models.NutritionPlan{
			CaloriesKcal: nutrition.CaloriesKcal + rule.caloriesDelta,
			ProteinG:     nutrition.ProteinG + rule.proteinDelta,
			Notes:        initialNutritionNote(profile.Goal, tdee) + " " + adjustmentNote(progress.WeekNumber, rule),
		})
		result.Nutrition = adjusted
		if clamped {
			result.Feedback = append(result.Feedback, macroClampWarning)
		}
	}
	if rule.workoutNote != "" {
		result.Workout = WithWeeklyWorkoutNote(result.Workout, progress.WeekNumber, rule.workoutNote)
	}

	if strength, ok := matchStrengthRule(rules.strength, progress.StrengthProgress); ok {
		updated, feedback := strength.apply(result.Workout, progress.WeekNumber)
		result.Workout = updated
		result.Feedback = append(result.Feedback, feedback...)
	}

	return result, nil
}

func validateAdaptationSignals(goal models.Goal, progress models.ProgressLog) error {
	if !IsValidGoal(goal) {
		return unknownValue(ErrUnknownGoal, string(goal))
	}
	if !IsValidDietAdherence(progress.DietAdherence) {
		return unknownValue(ErrUnknownDietAdherence, string(progress.DietAdherence))
	}
	if !IsValidStrengthProgress(progress.StrengthProgress) {
		return unknownValue(ErrUnknownStrengthProgress, string(progress.StrengthProgress))
	}
	if !IsValidEnergyLevel(progress.EnergyLevels) {
		return unknownValue(ErrUnknownEnergyLevel, string(progress.EnergyLevels))
	}
	if !IsValidSleepQuality(progress.SleepQuality) {
		return unknownValue(ErrUnknownSleepQuality, string(progress.SleepQuality))
	}
	return nil
}

// roundWeightChange drops floating point noise below one gram so that
// 80.0 -> 79.7 lands exactly on -0.3.
func roundWeightChange(change float64) float64 {
	return math.Round(change*1000) / 1000
}

func adjustmentNote(weekNumber int, rule weightRule) string {
	note := fmt.Sprintf("Week %d adjustment: %+d kcal", weekNumber, rule.caloriesDelta)
	if rule.proteinDelta != 0 {
		note += fmt.Sprintf(", %+d g protein", rule.proteinDelta)
	}
	return note + " (" + string(rule.outcome) + "). Fats and carbohydrates were recalculated from the new totals."
}
