package services

import "github.com/terraincognita07/musclemap/internal/models"

// Revised Harris-Benedict coefficients.
const (
	maleBMRBase       = 88.362
	maleBMRPerKg      = 13.397
	maleBMRPerCm      = 4.799
	maleBMRPerYear    = 5.677
	femaleBMRBase     = 447.593
	femaleBMRPerKg    = 9.247
	femaleBMRPerCm    = 3.098
	femaleBMRPerYear  = 4.330
	bmiUnderweightMax = 18.5
	bmiNormalMax      = 25.0
	bmiOverweightMax  = 30.0
	bmiObeseMax       = 35.0
)

var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityVeryActive: 1.725,
}

type ProfileMetrics struct {
	BMR         float64            `json:"bmr_kcal"`
	TDEEKcal    int                `json:"tdee_kcal"`
	BMI         float64            `json:"bmi"`
	BMICategory models.BMICategory `json:"bmi_category"`
}

func BasalMetabolicRate(gender models.Gender, weightKg float64, heightCm int, age int) (float64, error) {
	height := float64(heightCm)
	years := float64(age)
	switch gender {
	case models.GenderMale:
		return maleBMRBase + maleBMRPerKg*weightKg + maleBMRPerCm*height - maleBMRPerYear*years, nil
	case models.GenderFemale:
		return femaleBMRBase + femaleBMRPerKg*weightKg + femaleBMRPerCm*height - femaleBMRPerYear*years, nil
	default:
		return 0, unknownValue(ErrUnknownGender, string(gender))
	}
}

func ActivityFactor(level models.ActivityLevel) (float64, error) {
	factor, ok := activityFactors[level]
	if !ok {
		return 0, unknownValue(ErrUnknownActivityLevel, string(level))
	}
	return factor, nil
}

// TotalDailyEnergyExpenditure truncates to whole kcal. Inputs are not clamped.
func TotalDailyEnergyExpenditure(profile models.Profile) (int, error) {
	bmr, err := BasalMetabolicRate(profile.Gender, profile.CurrentWeight, profile.HeightCm, profile.Age)
	if err != nil {
		return 0, err
	}
	factor, err := ActivityFactor(profile.ActivityLevel)
	if err != nil {
		return 0, err
	}
	return int(bmr * factor), nil
}

// BodyMassIndex returns BMIUnknown instead of dividing by a non-positive height.
func BodyMassIndex(weightKg float64, heightCm int) (float64, models.BMICategory) {
	if heightCm <= 0 {
		return 0, models.BMIUnknown
	}
	heightM := float64(heightCm) / 100
	bmi := weightKg / (heightM * heightM)
	return bmi, ClassifyBMI(bmi)
}

// ClassifyBMI uses half-open ranges with inclusive lower bounds.
func ClassifyBMI(bmi float64) models.BMICategory {
	switch {
	case bmi < bmiUnderweightMax:
		return models.BMIUnderweight
	case bmi < bmiNormalMax:
		return models.BMINormal
	case bmi < bmiOverweightMax:
		return models.BMIOverweight
	case bmi < bmiObeseMax:
		return models.BMIObese
	default:
		return models.BMIExtremelyObese
	}
}

func CalculateProfileMetrics(profile models.Profile) (ProfileMetrics, error) {
	bmr, err := BasalMetabolicRate(profile.Gender, profile.CurrentWeight, profile.HeightCm, profile.Age)
	if err != nil {
		return ProfileMetrics{}, err
	}
	tdee, err := TotalDailyEnergyExpenditure(profile)
	if err != nil {
		return ProfileMetrics{}, err
	}
	bmi, category := BodyMassIndex(profile.CurrentWeight, profile.HeightCm)
	return ProfileMetrics{
		BMR:         bmr,
		TDEEKcal:    tdee,
		BMI:         bmi,
		BMICategory: category,
	}, nil
}

// WithMetrics returns a copy of profile with the cached metric fields refreshed.
func WithMetrics(profile models.Profile) (models.Profile, error) {
	metrics, err := CalculateProfileMetrics(profile)
	if err != nil {
		return models.Profile{}, err
	}
	profile.TDEEKcal = metrics.TDEEKcal
	profile.BMI = metrics.BMI
	profile.BMICategory = metrics.BMICategory
	return profile, nil
}
