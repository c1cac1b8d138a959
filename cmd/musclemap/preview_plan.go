package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/musclemap/internal/services"
	"gopkg.in/yaml.v3"
)

type planPreview struct {
	Metrics struct {
		BMRKcal     float64 `yaml:"bmr_kcal"`
		TDEEKcal    int     `yaml:"tdee_kcal"`
		BMI         float64 `yaml:"bmi"`
		BMICategory string  `yaml:"bmi_category"`
	} `yaml:"metrics"`
	Nutrition struct {
		CaloriesKcal int    `yaml:"calories_kcal"`
		ProteinG     int    `yaml:"protein_g"`
		FatsG        int    `yaml:"fats_g"`
		CarbsG       int    `yaml:"carbs_g"`
		Notes        string `yaml:"notes"`
	} `yaml:"nutrition"`
	Workout struct {
		SplitType        string   `yaml:"split_type"`
		FrequencyPerWeek int      `yaml:"frequency_per_week"`
		Schedule         []string `yaml:"schedule"`
	} `yaml:"workout"`
	Feedback []string `yaml:"feedback"`
}

func newPreviewPlanCmd(options *rootOptions) *cobra.Command {
	input := services.ProfileInput{}

	cmd := &cobra.Command{
		Use:   "preview-plan",
		Short: "Print the starting plan for a profile as YAML",
		Long: `Builds the initial nutrition and workout plan for the profile given by flags
without touching the database.

Example:
  musclemap preview-plan --age 30 --height 180 --weight 80 --gender male \
    --activity sedentary --goal weight_reduction --experience beginner`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := buildPlanPreview(input)
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(preview); err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			return encoder.Close()
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&input.Age, "age", 30, "age in years (16-100)")
	flags.IntVar(&input.HeightCm, "height", 175, "height in cm (100-250)")
	flags.Float64Var(&input.WeightKg, "weight", 75, "body weight in kg (40-200)")
	flags.StringVar(&input.Gender, "gender", "male", "male or female")
	flags.StringVar(&input.ActivityLevel, "activity", "moderate", "sedentary, light, moderate or very_active")
	flags.StringVar(&input.Goal, "goal", "general_fitness", "weight_reduction, muscle_gain or general_fitness")
	flags.StringVar(&input.Experience, "experience", "beginner", "beginner, intermediate or advanced")
	return cmd
}

func buildPlanPreview(input services.ProfileInput) (planPreview, error) {
	profile, err := services.NormalizeProfileInput(input)
	if err != nil {
		return planPreview{}, err
	}
	initial, err := services.BuildInitialPlan(profile)
	if err != nil {
		return planPreview{}, err
	}

	preview := planPreview{Feedback: initial.Feedback}
	preview.Metrics.BMRKcal = initial.Metrics.BMR
	preview.Metrics.TDEEKcal = initial.Metrics.TDEEKcal
	preview.Metrics.BMI = initial.Metrics.BMI
	preview.Metrics.BMICategory = string(initial.Metrics.BMICategory)
	preview.Nutrition.CaloriesKcal = initial.Nutrition.CaloriesKcal
	preview.Nutrition.ProteinG = initial.Nutrition.ProteinG
	preview.Nutrition.FatsG = initial.Nutrition.FatsG
	preview.Nutrition.CarbsG = initial.Nutrition.CarbsG
	preview.Nutrition.Notes = initial.Nutrition.Notes
	preview.Workout.SplitType = initial.Workout.SplitType
	preview.Workout.FrequencyPerWeek = initial.Workout.FrequencyPerWeek
	preview.Workout.Schedule = services.ScheduleLines(initial.Workout)
	return preview, nil
}
