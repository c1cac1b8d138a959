package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terraincognita07/musclemap/internal/models"
)

var (
	allGoals       = []models.Goal{models.GoalWeightReduction, models.GoalMuscleGain, models.GoalGeneralFitness}
	allExperiences = []models.Experience{models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced}
)

func TestBuildWorkoutCoversEveryGoalAndExperience(t *testing.T) {
	for _, experience := range allExperiences {
		for _, goal := range allGoals {
			plan, err := BuildWorkout(goal, experience)
			if err != nil {
				t.Fatalf("BuildWorkout(%q, %q) unexpected error: %v", goal, experience, err)
			}
			if plan.SplitType == "" {
				t.Fatalf("BuildWorkout(%q, %q) has no split type", goal, experience)
			}
			if plan.FrequencyPerWeek < 1 || plan.FrequencyPerWeek > 7 {
				t.Fatalf("BuildWorkout(%q, %q) frequency = %d", goal, experience, plan.FrequencyPerWeek)
			}
			if len(plan.WeeklySchedule) == 0 || len(plan.WeeklySchedule) > 7 {
				t.Fatalf("BuildWorkout(%q, %q) schedule has %d days", goal, experience, len(plan.WeeklySchedule))
			}

			trainingDays := 0
			for _, slot := range plan.WeeklySchedule {
				if !slot.IsRestDay() {
					trainingDays++
				}
			}
			if trainingDays != plan.FrequencyPerWeek {
				t.Fatalf("BuildWorkout(%q, %q) has %d training days, frequency %d", goal, experience, trainingDays, plan.FrequencyPerWeek)
			}

			lastNote := plan.Notes[len(plan.Notes)-1]
			if lastNote != cardioGuidance[goal] {
				t.Fatalf("expected cardio guidance as last note, got %q", lastNote)
			}
		}
	}
}

func TestBuildWorkoutTemplateSelection(t *testing.T) {
	tests := []struct {
		experience models.Experience
		goal       models.Goal
		split      string
	}{
		{experience: models.ExperienceBeginner, goal: models.GoalMuscleGain, split: SplitFullBody3x},
		{experience: models.ExperienceIntermediate, goal: models.GoalWeightReduction, split: SplitUpperLower4x},
		{experience: models.ExperienceIntermediate, goal: models.GoalMuscleGain, split: SplitPushPullLegs6x},
		{experience: models.ExperienceIntermediate, goal: models.GoalGeneralFitness, split: SplitPushPullLegs3x},
		{experience: models.ExperienceAdvanced, goal: models.GoalGeneralFitness, split: SplitBodyPartSplit5x},
	}

	for _, testCase := range tests {
		plan, err := BuildWorkout(testCase.goal, testCase.experience)
		if err != nil {
			t.Fatalf("BuildWorkout() unexpected error: %v", err)
		}
		if plan.SplitType != testCase.split {
			t.Fatalf("BuildWorkout(%q, %q) split = %q, want %q", testCase.goal, testCase.experience, plan.SplitType, testCase.split)
		}
	}
}

func TestBuildWorkoutRestDaysHaveNoExercises(t *testing.T) {
	plan, err := BuildWorkout(models.GoalGeneralFitness, models.ExperienceBeginner)
	if err != nil {
		t.Fatalf("BuildWorkout() unexpected error: %v", err)
	}
	for _, slot := range plan.WeeklySchedule {
		if slot.Focus == "Rest" && slot.Exercises != nil {
			t.Fatalf("expected nil exercises on %s rest day", slot.Day)
		}
	}
}

func TestBuildWorkoutRejectsUnknownValues(t *testing.T) {
	if _, err := BuildWorkout(models.GoalMuscleGain, "expert"); !errors.Is(err, ErrUnknownExperience) {
		t.Fatalf("expected ErrUnknownExperience, got %v", err)
	}
	if _, err := BuildWorkout("bulk", models.ExperienceAdvanced); !errors.Is(err, ErrUnknownGoal) {
		t.Fatalf("expected ErrUnknownGoal, got %v", err)
	}
}

func TestBuildWorkoutReturnsIndependentPlans(t *testing.T) {
	first, _ := BuildWorkout(models.GoalMuscleGain, models.ExperienceBeginner)
	second, _ := BuildWorkout(models.GoalMuscleGain, models.ExperienceBeginner)

	first.WeeklySchedule[0].Exercises[0].Reps = models.RepRange{Min: 1, Max: 1}
	first.Notes[0] = "changed"

	third, _ := BuildWorkout(models.GoalMuscleGain, models.ExperienceBeginner)
	if diff := cmp.Diff(second, third); diff != "" {
		t.Fatalf("templates share state (-want +got):\n%s", diff)
	}
}

func TestWithRepRangeReplaced(t *testing.T) {
	plan := models.WorkoutPlan{
		WeeklySchedule: []models.DaySlot{
			{Day: "Monday", Focus: "Push", Exercises: []models.Exercise{
				{Name: "Bench Press", Sets: 4, Reps: models.RepRange{Min: 8, Max: 10}},
				{Name: "Lateral Raise", Sets: 3, Reps: models.RepRange{Min: 12, Max: 15}},
			}},
			{Day: "Tuesday", Focus: "Rest"},
			{Day: "Wednesday", Focus: "Legs", Exercises: []models.Exercise{
				{Name: "Squat", Sets: 4, Reps: models.RepRange{Min: 8, Max: 10}},
				{Name: "Walk", Detail: "20 min"},
			}},
		},
	}
	original := CloneWorkoutPlan(plan)

	updated, replaced := WithRepRangeReplaced(plan, hypertrophyRepRange, strengthRepRange)
	if replaced != 2 {
		t.Fatalf("expected 2 replacements, got %d", replaced)
	}
	if CountRepRange(updated, hypertrophyRepRange) != 0 {
		t.Fatal("expected no 8-10 prescriptions after replacement")
	}
	if got := updated.WeeklySchedule[2].Exercises[0].String(); got != "Squat: 4x5-8" {
		t.Fatalf("unexpected prescription %q", got)
	}
	if updated.WeeklySchedule[0].Exercises[1].Reps != (models.RepRange{Min: 12, Max: 15}) {
		t.Fatal("expected other rep ranges to stay unchanged")
	}
	if diff := cmp.Diff(original, plan); diff != "" {
		t.Fatalf("input plan mutated (-want +got):\n%s", diff)
	}
}

func TestCloneWorkoutPlanKeepsNilSlices(t *testing.T) {
	plan := models.WorkoutPlan{
		SplitType:      "Custom",
		WeeklySchedule: []models.DaySlot{{Day: "Sunday", Focus: "Rest"}},
	}
	clone := CloneWorkoutPlan(plan)
	if clone.Notes != nil {
		t.Fatal("expected nil notes to stay nil")
	}
	if clone.WeeklySchedule[0].Exercises != nil {
		t.Fatal("expected nil exercises to stay nil")
	}
	if diff := cmp.Diff(plan, clone); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}
}

func TestScheduleLines(t *testing.T) {
	plan, err := BuildWorkout(models.GoalWeightReduction, models.ExperienceBeginner)
	if err != nil {
		t.Fatalf("BuildWorkout() unexpected error: %v", err)
	}
	lines := ScheduleLines(plan)
	if len(lines) != len(plan.WeeklySchedule) {
		t.Fatalf("expected %d lines, got %d", len(plan.WeeklySchedule), len(lines))
	}
	if lines[1] != "Tuesday: Rest" {
		t.Fatalf("unexpected rest day line %q", lines[1])
	}
	if !strings.Contains(lines[0], "Goblet Squat: 3x8-10") {
		t.Fatalf("expected rendered prescription, got %q", lines[0])
	}
}

func TestWithWeeklyWorkoutNoteReplacesEarlierWeek(t *testing.T) {
	plan := models.WorkoutPlan{Notes: []string{"Warm up first."}}

	first := WithWeeklyWorkoutNote(plan, 2, "Add a set.")
	second := WithWeeklyWorkoutNote(first, 3, "Add a set.")
	third := WithWeeklyWorkoutNote(second, 3, "Walk daily.")

	want := []string{"Warm up first.", "Week 3: Add a set.", "Week 3: Walk daily."}
	if diff := cmp.Diff(want, third.Notes); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Warm up first.", "Week 2: Add a set."}, first.Notes); diff != "" {
		t.Fatalf("earlier plan changed (-want +got):\n%s", diff)
	}
}
