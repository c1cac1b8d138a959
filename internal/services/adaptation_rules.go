package services

import (
	"fmt"

	"github.com/terraincognita07/musclemap/internal/models"
)

type AdaptationOutcome string

const (
	OutcomeAdherenceGate AdaptationOutcome = "adherence_gate"
	OutcomeRecoveryGate  AdaptationOutcome = "recovery_gate"
	OutcomeLossTooFast   AdaptationOutcome = "loss_too_fast"
	OutcomeLossIdeal     AdaptationOutcome = "loss_ideal"
	OutcomeLossStalled   AdaptationOutcome = "loss_stalled"
	OutcomeGainTooFast   AdaptationOutcome = "gain_too_fast"
	OutcomeGainIdeal     AdaptationOutcome = "gain_ideal"
	OutcomeGainStalled   AdaptationOutcome = "gain_stalled"
	OutcomeMaintain      AdaptationOutcome = "maintain"
)

const (
	adherenceGateMessage = "You did not follow the diet plan this week, so there is no reliable signal to adjust on. Stick to the current plan and check in again next week."
	recoveryGateMessage  = "Your sleep or energy was low this week. Focus on recovery first: aim for 7-9 hours of sleep each night. Your plan stays the same until you have recovered."
	extraCardioNote      = "Add one extra 30 min cardio session this week (brisk walk, cycling or rowing)."
	progressiveLoadNote  = "Progressive overload: add 2.5 kg to your main lifts, or one more rep per set, this week."
)

var (
	hypertrophyRepRange = models.RepRange{Min: 8, Max: 10}
	strengthRepRange    = models.RepRange{Min: 5, Max: 8}
)

// weightRule is one row of a goal's decision table. Tables are evaluated top
// to bottom and the first matching row wins; the last row always matches.
type weightRule struct {
	outcome       AdaptationOutcome
	matches       func(weightChange float64) bool
	caloriesDelta int
	proteinDelta  int
	workoutNote   string
	feedback      func(weightChange float64) []string
}

// strengthRule applies on top of the weight rule for the matching strength signal.
type strengthRule struct {
	progress models.StrengthProgress
	apply    func(workout models.WorkoutPlan, weekNumber int) (models.WorkoutPlan, []string)
}

type goalRules struct {
	weight   []weightRule
	strength []strengthRule
}

func always(float64) bool { return true }

var adaptationRules = map[models.Goal]goalRules{
	models.GoalWeightReduction: {
		weight: []weightRule{
			{
				outcome:       OutcomeLossTooFast,
				matches:       func(change float64) bool { return change < -0.8 },
				caloriesDelta: 150,
				feedback: func(change float64) []string {
					return []string{fmt.Sprintf("You lost %.1f kg this week, which is too fast and puts muscle at risk. Calories go up by 150 kcal to slow the rate of loss.", -change)}
				},
			},
			{
				outcome: OutcomeLossIdeal,
				matches: func(change float64) bool { return change >= -0.8 && change < -0.3 },
				feedback: func(change float64) []string {
					return []string{fmt.Sprintf("You lost %.1f kg this week, right in the ideal range of 0.3-0.8 kg. No changes: keep doing what you are doing.", -change)}
				},
			},
			{
				outcome:       OutcomeLossStalled,
				matches:       always,
				caloriesDelta: -200,
				workoutNote:   extraCardioNote,
				feedback: func(change float64) []string {
					return []string{
						fmt.Sprintf("Your weight changed by %+.1f kg this week, so fat loss has stalled.", change),
						"Calories drop by 200 kcal and one extra cardio session is added to your week.",
					}
				},
			},
		},
	},
	models.GoalMuscleGain: {
		weight: []weightRule{
			{
				outcome:       OutcomeGainTooFast,
				matches:       func(change float64) bool { return change > 0.5 },
				caloriesDelta: -150,
				feedback: func(change float64) []string {
					return []string{fmt.Sprintf("You gained %.1f kg this week, which is too fast and likely adds more fat than muscle. Calories drop by 150 kcal.", change)}
				},
			},
			{
				outcome: OutcomeGainIdeal,
				matches: func(change float64) bool { return change >= 0.1 && change < 0.4 },
				feedback: func(change float64) []string {
					return []string{fmt.Sprintf("You gained %.1f kg this week, right in the lean-bulk range of 0.1-0.4 kg. No nutrition changes.", change)}
				},
			},
			{
				outcome:       OutcomeGainStalled,
				matches:       always,
				caloriesDelta: 200,
				proteinDelta:  20,
				feedback: func(change float64) []string {
					return []string{fmt.Sprintf("Your weight changed by %+.1f kg this week, which is not enough to build muscle. Calories go up by 200 kcal and protein by 20 g.", change)}
				},
			},
		},
		strength: []strengthRule{
			{
				progress: models.StrengthGotStronger,
				apply: func(workout models.WorkoutPlan, weekNumber int) (models.WorkoutPlan, []string) {
					return WithWeeklyWorkoutNote(workout, weekNumber, progressiveLoadNote), []string{"You got stronger. Keep applying progressive overload on the main lifts."}
				},
			},
			{
				progress: models.StrengthStalled,
				apply: func(workout models.WorkoutPlan, weekNumber int) (models.WorkoutPlan, []string) {
					updated, replaced := WithRepRangeReplaced(workout, hypertrophyRepRange, strengthRepRange)
					if replaced == 0 {
						return updated, []string{"Strength has stalled. No exercises are prescribed at 8-10 reps, so keep the current loads and focus on form."}
					}
					return updated, []string{fmt.Sprintf("Strength has stalled, so %d exercises move from %s reps to a heavier %s rep range.", replaced, hypertrophyRepRange, strengthRepRange)}
				},
			},
		},
	},
	models.GoalGeneralFitness: {
		weight: []weightRule{
			{
				outcome: OutcomeMaintain,
				matches: always,
				feedback: func(change float64) []string {
					return []string{fmt.Sprintf("Your weight changed by %+.1f kg. For general fitness consistency is what counts, so the plan stays the same.", change)}
				},
			},
		},
		strength: []strengthRule{
			{
				progress: models.StrengthGotStronger,
				apply: func(workout models.WorkoutPlan, weekNumber int) (models.WorkoutPlan, []string) {
					return workout, []string{"You got stronger this week. Great work, that is the consistency that builds fitness."}
				},
			},
		},
	},
}

func matchWeightRule(rules []weightRule, weightChange float64) weightRule {
	for _, rule := range rules {
		if rule.matches(weightChange) {
			return rule
		}
	}
	return rules[len(rules)-1]
}

func matchStrengthRule(rules []strengthRule, progress models.StrengthProgress) (strengthRule, bool) {
	for _, rule := range rules {
		if rule.progress == progress {
			return rule, true
		}
	}
	return strengthRule{}, false
}
