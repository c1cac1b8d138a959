package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalWeightReduction Goal = "weight_reduction"
	GoalMuscleGain      Goal = "muscle_gain"
	GoalGeneralFitness  Goal = "general_fitness"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// DietAdherence is ordered best to worst.
type DietAdherence string

const (
	AdherenceGreat        DietAdherence = "great"
	AdherenceGood         DietAdherence = "good"
	AdherencePoor         DietAdherence = "poor"
	AdherenceDidNotFollow DietAdherence = "did_not_follow"
)

type StrengthProgress string

const (
	StrengthGotStronger StrengthProgress = "got_stronger"
	StrengthStalled     StrengthProgress = "stalled"
	StrengthGotWeaker   StrengthProgress = "got_weaker"
)

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyNormal EnergyLevel = "normal"
	EnergyLow    EnergyLevel = "low"
)

type SleepQuality string

const (
	SleepGreat SleepQuality = "great"
	SleepOkay  SleepQuality = "okay"
	SleepPoor  SleepQuality = "poor"
)

type BMICategory string

const (
	BMIUnknown        BMICategory = "unknown"
	BMIUnderweight    BMICategory = "underweight"
	BMINormal         BMICategory = "normal"
	BMIOverweight     BMICategory = "overweight"
	BMIObese          BMICategory = "obese"
	BMIExtremelyObese BMICategory = "extremely_obese"
)

// SeverityRank orders categories by distance from the normal range. Unknown is -1.
func (category BMICategory) SeverityRank() int {
	switch category {
	case BMINormal:
		return 0
	case BMIUnderweight, BMIOverweight:
		return 1
	case BMIObese:
		return 2
	case BMIExtremelyObese:
		return 3
	default:
		return -1
	}
}
