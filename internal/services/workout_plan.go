package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/musclemap/internal/models"
)

var cardioGuidance = map[models.Goal]string{
	models.GoalWeightReduction: "Cardio: 3-4 sessions per week of 30-40 min at moderate intensity (brisk walk, cycling, rowing) on rest days or after lifting.",
	models.GoalMuscleGain:      "Cardio: keep it minimal, 1-2 light sessions of 20 min per week for heart health.",
	models.GoalGeneralFitness:  "Cardio: 2-3 sessions per week of 20-30 min at a pace where you can still hold a conversation.",
}

func BuildWorkout(goal models.Goal, experience models.Experience) (models.WorkoutPlan, error) {
	byGoal, ok := workoutTemplates[experience]
	if !ok {
		return models.WorkoutPlan{}, unknownValue(ErrUnknownExperience, string(experience))
	}
	template, ok := byGoal[goal]
	if !ok {
		return models.WorkoutPlan{}, unknownValue(ErrUnknownGoal, string(goal))
	}

	plan := template()
	plan.Notes = append(plan.Notes, cardioGuidance[goal])
	return plan, nil
}

// CloneWorkoutPlan deep-copies plan. Nil slices stay nil so a clone compares
// equal to its source.
func CloneWorkoutPlan(plan models.WorkoutPlan) models.WorkoutPlan {
	clone := plan
	if plan.Notes != nil {
		clone.Notes = append(make([]string, 0, len(plan.Notes)), plan.Notes...)
	}
	if plan.WeeklySchedule != nil {
		clone.WeeklySchedule = make([]models.DaySlot, len(plan.WeeklySchedule))
		for index, slot := range plan.WeeklySchedule {
			clone.WeeklySchedule[index] = slot
			if slot.Exercises != nil {
				clone.WeeklySchedule[index].Exercises = append(make([]models.Exercise, 0, len(slot.Exercises)), slot.Exercises...)
			}
		}
	}
	return clone
}

// WithWeeklyWorkoutNote returns a copy of plan with note appended as
// "Week N: note". An earlier week's copy of the same note is dropped, so a
// repeated instruction appears once, tagged with the latest week.
func WithWeeklyWorkoutNote(plan models.WorkoutPlan, weekNumber int, note string) models.WorkoutPlan {
	clone := CloneWorkoutPlan(plan)
	kept := make([]string, 0, len(clone.Notes)+1)
	for _, existing := range clone.Notes {
		if weeklyNoteBody(existing) == note {
			continue
		}
		kept = append(kept, existing)
	}
	clone.Notes = append(kept, fmt.Sprintf("Week %d: %s", weekNumber, note))
	return clone
}

func weeklyNoteBody(note string) string {
	if !strings.HasPrefix(note, "Week ") {
		return note
	}
	_, body, found := strings.Cut(note, ": ")
	if !found {
		return note
	}
	return body
}

// WithRepRangeReplaced returns a copy of plan where every exercise prescribed
// at from is prescribed at to, along with the number of exercises changed.
// Rest days have no exercises and are left as they are.
func WithRepRangeReplaced(plan models.WorkoutPlan, from models.RepRange, to models.RepRange) (models.WorkoutPlan, int) {
	clone := CloneWorkoutPlan(plan)
	replaced := 0
	for slotIndex := range clone.WeeklySchedule {
		exercises := clone.WeeklySchedule[slotIndex].Exercises
		for exerciseIndex := range exercises {
			if exercises[exerciseIndex].Reps == from {
				exercises[exerciseIndex].Reps = to
				replaced++
			}
		}
	}
	return clone, replaced
}

// CountRepRange counts exercises prescribed at reps across the schedule.
func CountRepRange(plan models.WorkoutPlan, reps models.RepRange) int {
	count := 0
	for _, slot := range plan.WeeklySchedule {
		for _, exercise := range slot.Exercises {
			if exercise.Reps == reps {
				count++
			}
		}
	}
	return count
}

// ScheduleLines renders the schedule as plain text, one line per day.
func ScheduleLines(plan models.WorkoutPlan) []string {
	lines := make([]string, 0, len(plan.WeeklySchedule))
	for _, slot := range plan.WeeklySchedule {
		if slot.IsRestDay() {
			lines = append(lines, fmt.Sprintf("%s: %s", slot.Day, slot.Focus))
			continue
		}
		line := fmt.Sprintf("%s: %s -", slot.Day, slot.Focus)
		for index, exercise := range slot.Exercises {
			if index > 0 {
				line += ";"
			}
			line += " " + exercise.String()
		}
		lines = append(lines, line)
	}
	return lines
}
