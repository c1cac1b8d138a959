package services

import "github.com/terraincognita07/musclemap/internal/models"

const (
	SplitFullBody3x      = "Full Body (3x/week)"
	SplitUpperLower4x    = "Upper/Lower (4x/week)"
	SplitPushPullLegs3x  = "Push/Pull/Legs (3x/week)"
	SplitPushPullLegs6x  = "Push/Pull/Legs (6x/week)"
	SplitBodyPartSplit5x = "Body Part Split (5x/week)"
)

type workoutTemplate func() models.WorkoutPlan

// workoutTemplates covers every experience and goal pair.
var workoutTemplates = map[models.Experience]map[models.Goal]workoutTemplate{
	models.ExperienceBeginner: {
		models.GoalWeightReduction: fullBody3xTemplate,
		models.GoalMuscleGain:      fullBody3xTemplate,
		models.GoalGeneralFitness:  fullBody3xTemplate,
	},
	models.ExperienceIntermediate: {
		models.GoalWeightReduction: upperLower4xTemplate,
		models.GoalMuscleGain:      pushPullLegs6xTemplate,
		models.GoalGeneralFitness:  pushPullLegs3xTemplate,
	},
	models.ExperienceAdvanced: {
		models.GoalWeightReduction: bodyPartSplit5xTemplate,
		models.GoalMuscleGain:      bodyPartSplit5xTemplate,
		models.GoalGeneralFitness:  bodyPartSplit5xTemplate,
	},
}

func lift(name string, sets int, minReps int, maxReps int) models.Exercise {
	return models.Exercise{Name: name, Sets: sets, Reps: models.RepRange{Min: minReps, Max: maxReps}}
}

func timed(name string, sets int, detail string) models.Exercise {
	return models.Exercise{Name: name, Sets: sets, Detail: detail}
}

func restDay(day string) models.DaySlot {
	return models.DaySlot{Day: day, Focus: "Rest"}
}

func training(day string, focus string, exercises ...models.Exercise) models.DaySlot {
	return models.DaySlot{Day: day, Focus: focus, Exercises: exercises}
}

func fullBodyA(day string) models.DaySlot {
	return training(day, "Full Body A",
		lift("Goblet Squat", 3, 8, 10),
		lift("Dumbbell Bench Press", 3, 8, 10),
		lift("Seated Cable Row", 3, 8, 10),
		lift("Romanian Deadlift", 3, 10, 12),
		timed("Plank", 3, "30s"),
	)
}

func fullBodyB(day string) models.DaySlot {
	return training(day, "Full Body B",
		lift("Leg Press", 3, 8, 10),
		lift("Lat Pulldown", 3, 8, 10),
		lift("Seated Dumbbell Shoulder Press", 3, 8, 10),
		lift("Glute Bridge", 3, 12, 15),
		timed("Dead Bug", 3, "10 each side"),
	)
}

func fullBody3xTemplate() models.WorkoutPlan {
	return models.WorkoutPlan{
		SplitType:        SplitFullBody3x,
		FrequencyPerWeek: 3,
		Notes:            []string{"Learn each movement with a weight you could lift for 2 more reps. Rest 60-90s between sets."},
		WeeklySchedule: []models.DaySlot{
			fullBodyA("Monday"),
			restDay("Tuesday"),
			fullBodyB("Wednesday"),
			restDay("Thursday"),
			fullBodyA("Friday"),
			restDay("Saturday"),
			restDay("Sunday"),
		},
	}
}

func upperDay(day string, focus string) models.DaySlot {
	return training(day, focus,
		lift("Barbell Bench Press", 4, 8, 10),
		lift("Bent-Over Barbell Row", 4, 8, 10),
		lift("Overhead Press", 3, 8, 10),
		lift("Pull-Up", 3, 6, 8),
		lift("Dumbbell Curl", 2, 12, 15),
		lift("Triceps Rope Pushdown", 2, 12, 15),
	)
}

func lowerDay(day string, focus string) models.DaySlot {
	return training(day, focus,
		lift("Barbell Back Squat", 4, 8, 10),
		lift("Romanian Deadlift", 3, 8, 10),
		lift("Walking Lunge", 3, 10, 12),
		lift("Leg Curl", 3, 12, 15),
		lift("Standing Calf Raise", 3, 12, 15),
	)
}

func upperLower4xTemplate() models.WorkoutPlan {
	return models.WorkoutPlan{
		SplitType:        SplitUpperLower4x,
		FrequencyPerWeek: 4,
		Notes:            []string{"Keep rest periods around 90s to hold training density high."},
		WeeklySchedule: []models.DaySlot{
			upperDay("Monday", "Upper Body"),
			lowerDay("Tuesday", "Lower Body"),
			restDay("Wednesday"),
			upperDay("Thursday", "Upper Body"),
			lowerDay("Friday", "Lower Body"),
			restDay("Saturday"),
			restDay("Sunday"),
		},
	}
}

func pushDay(day string) models.DaySlot {
	return training(day, "Push",
		lift("Barbell Bench Press", 4, 8, 10),
		lift("Incline Dumbbell Press", 3, 8, 10),
		lift("Overhead Press", 3, 8, 10),
		lift("Lateral Raise", 3, 12, 15),
		lift("Triceps Rope Pushdown", 3, 10, 12),
	)
}

func pullDay(day string) models.DaySlot {
	return training(day, "Pull",
		lift("Deadlift", 3, 5, 6),
		lift("Pull-Up", 3, 8, 10),
		lift("Seated Cable Row", 3, 8, 10),
		lift("Face Pull", 3, 12, 15),
		lift("Barbell Curl", 3, 10, 12),
	)
}

func legsDay(day string) models.DaySlot {
	return training(day, "Legs",
		lift("Barbell Back Squat", 4, 8, 10),
		lift("Romanian Deadlift", 3, 8, 10),
		lift("Leg Press", 3, 10, 12),
		lift("Leg Curl", 3, 12, 15),
		lift("Standing Calf Raise", 4, 12, 15),
	)
}

func pushPullLegs3xTemplate() models.WorkoutPlan {
	return models.WorkoutPlan{
		SplitType:        SplitPushPullLegs3x,
		FrequencyPerWeek: 3,
		Notes:            []string{"Each muscle group is trained once a week; keep one rest day between sessions."},
		WeeklySchedule: []models.DaySlot{
			pushDay("Monday"),
			restDay("Tuesday"),
			pullDay("Wednesday"),
			restDay("Thursday"),
			legsDay("Friday"),
			restDay("Saturday"),
			restDay("Sunday"),
		},
	}
}

func pushPullLegs6xTemplate() models.WorkoutPlan {
	return models.WorkoutPlan{
		SplitType:        SplitPushPullLegs6x,
		FrequencyPerWeek: 6,
		Notes:            []string{"Run the push/pull/legs rotation twice a week. Take Sunday fully off."},
		WeeklySchedule: []models.DaySlot{
			pushDay("Monday"),
			pullDay("Tuesday"),
			legsDay("Wednesday"),
			pushDay("Thursday"),
			pullDay("Friday"),
			legsDay("Saturday"),
			restDay("Sunday"),
		},
	}
}

func bodyPartSplit5xTemplate() models.WorkoutPlan {
	return models.WorkoutPlan{
		SplitType:        SplitBodyPartSplit5x,
		FrequencyPerWeek: 5,
		Notes:            []string{"Push the last set of each exercise to within one rep of failure."},
		WeeklySchedule: []models.DaySlot{
			training("Monday", "Chest",
				lift("Barbell Bench Press", 4, 6, 8),
				lift("Incline Dumbbell Press", 4, 8, 10),
				lift("Weighted Dip", 3, 8, 10),
				lift("Cable Fly", 3, 12, 15),
			),
			training("Tuesday", "Back",
				lift("Deadlift", 4, 5, 6),
				lift("Weighted Pull-Up", 4, 6, 8),
				lift("Bent-Over Barbell Row", 4, 8, 10),
				lift("Straight-Arm Pulldown", 3, 12, 15),
			),
			training("Wednesday", "Legs",
				lift("Barbell Back Squat", 5, 6, 8),
				lift("Romanian Deadlift", 4, 8, 10),
				lift("Bulgarian Split Squat", 3, 8, 10),
				lift("Leg Curl", 3, 12, 15),
				lift("Standing Calf Raise", 4, 12, 15),
			),
			restDay("Thursday"),
			training("Friday", "Shoulders",
				lift("Overhead Press", 4, 6, 8),
				lift("Arnold Press", 3, 8, 10),
				lift("Lateral Raise", 4, 12, 15),
				lift("Rear Delt Fly", 3, 12, 15),
			),
			training("Saturday", "Arms",
				lift("Close-Grip Bench Press", 4, 8, 10),
				lift("Barbell Curl", 4, 8, 10),
				lift("Overhead Triceps Extension", 3, 10, 12),
				lift("Hammer Curl", 3, 10, 12),
			),
			restDay("Sunday"),
		},
	}
}
