package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/musclemap/internal/models"
)

const MaxCheckinNotesLength = 2000

var (
	ErrUnknownGender           = errors.New("unknown gender")
	ErrUnknownActivityLevel    = errors.New("unknown activity level")
	ErrUnknownGoal             = errors.New("unknown goal")
	ErrUnknownExperience       = errors.New("unknown experience level")
	ErrUnknownDietAdherence    = errors.New("unknown diet adherence")
	ErrUnknownStrengthProgress = errors.New("unknown strength progress")
	ErrUnknownEnergyLevel      = errors.New("unknown energy level")
	ErrUnknownSleepQuality     = errors.New("unknown sleep quality")
)

var (
	ErrProfileAgeOutOfRange    = errors.New("profile age out of range")
	ErrProfileHeightOutOfRange = errors.New("profile height out of range")
	ErrBodyWeightOutOfRange    = errors.New("body weight out of range")
)

// IsUnknownEnumError reports whether err came from an unrecognised enumeration code.
func IsUnknownEnumError(err error) bool {
	return errors.Is(err, ErrUnknownGender) ||
		errors.Is(err, ErrUnknownActivityLevel) ||
		errors.Is(err, ErrUnknownGoal) ||
		errors.Is(err, ErrUnknownExperience) ||
		errors.Is(err, ErrUnknownDietAdherence) ||
		errors.Is(err, ErrUnknownStrengthProgress) ||
		errors.Is(err, ErrUnknownEnergyLevel) ||
		errors.Is(err, ErrUnknownSleepQuality)
}

func normalizeEnumCode(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func unknownValue(sentinel error, raw string) error {
	return fmt.Errorf("%w: %q", sentinel, raw)
}

func IsValidGender(value models.Gender) bool {
	switch value {
	case models.GenderMale, models.GenderFemale:
		return true
	default:
		return false
	}
}

func ParseGender(raw string) (models.Gender, error) {
	value := models.Gender(normalizeEnumCode(raw))
	if !IsValidGender(value) {
		return "", unknownValue(ErrUnknownGender, raw)
	}
	return value, nil
}

func IsValidActivityLevel(value models.ActivityLevel) bool {
	_, ok := activityFactors[value]
	return ok
}

func ParseActivityLevel(raw string) (models.ActivityLevel, error) {
	value := models.ActivityLevel(normalizeEnumCode(raw))
	if !IsValidActivityLevel(value) {
		return "", unknownValue(ErrUnknownActivityLevel, raw)
	}
	return value, nil
}

func IsValidGoal(value models.Goal) bool {
	switch value {
	case models.GoalWeightReduction, models.GoalMuscleGain, models.GoalGeneralFitness:
		return true
	default:
		return false
	}
}

func ParseGoal(raw string) (models.Goal, error) {
	value := models.Goal(normalizeEnumCode(raw))
	if !IsValidGoal(value) {
		return "", unknownValue(ErrUnknownGoal, raw)
	}
	return value, nil
}

func IsValidExperience(value models.Experience) bool {
	switch value {
	case models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced:
		return true
	default:
		return false
	}
}

func ParseExperience(raw string) (models.Experience, error) {
	value := models.Experience(normalizeEnumCode(raw))
	if !IsValidExperience(value) {
		return "", unknownValue(ErrUnknownExperience, raw)
	}
	return value, nil
}

func IsValidDietAdherence(value models.DietAdherence) bool {
	switch value {
	case models.AdherenceGreat, models.AdherenceGood, models.AdherencePoor, models.AdherenceDidNotFollow:
		return true
	default:
		return false
	}
}

func ParseDietAdherence(raw string) (models.DietAdherence, error) {
	value := models.DietAdherence(normalizeEnumCode(raw))
	if !IsValidDietAdherence(value) {
		return "", unknownValue(ErrUnknownDietAdherence, raw)
	}
	return value, nil
}

func IsValidStrengthProgress(value models.StrengthProgress) bool {
	switch value {
	case models.StrengthGotStronger, models.StrengthStalled, models.StrengthGotWeaker:
		return true
	default:
		return false
	}
}

func ParseStrengthProgress(raw string) (models.StrengthProgress, error) {
	value := models.StrengthProgress(normalizeEnumCode(raw))
	if !IsValidStrengthProgress(value) {
		return "", unknownValue(ErrUnknownStrengthProgress, raw)
	}
	return value, nil
}

func IsValidEnergyLevel(value models.EnergyLevel) bool {
	switch value {
	case models.EnergyHigh, models.EnergyNormal, models.EnergyLow:
		return true
	default:
		return false
	}
}

func ParseEnergyLevel(raw string) (models.EnergyLevel, error) {
	value := models.EnergyLevel(normalizeEnumCode(raw))
	if !IsValidEnergyLevel(value) {
		return "", unknownValue(ErrUnknownEnergyLevel, raw)
	}
	return value, nil
}

func IsValidSleepQuality(value models.SleepQuality) bool {
	switch value {
	case models.SleepGreat, models.SleepOkay, models.SleepPoor:
		return true
	default:
		return false
	}
}

func ParseSleepQuality(raw string) (models.SleepQuality, error) {
	value := models.SleepQuality(normalizeEnumCode(raw))
	if !IsValidSleepQuality(value) {
		return "", unknownValue(ErrUnknownSleepQuality, raw)
	}
	return value, nil
}

type ProfileInput struct {
	Age           int
	HeightCm      int
	WeightKg      float64
	Gender        string
	ActivityLevel string
	Goal          string
	Experience    string
}

// NormalizeProfileInput checks ranges and enumerations and returns an unsaved
// profile with StartingWeight and CurrentWeight set to the onboarding weight.
func NormalizeProfileInput(input ProfileInput) (models.Profile, error) {
	if input.Age < models.MinProfileAge || input.Age > models.MaxProfileAge {
		return models.Profile{}, ErrProfileAgeOutOfRange
	}
	if input.HeightCm < models.MinProfileHeightCm || input.HeightCm > models.MaxProfileHeightCm {
		return models.Profile{}, ErrProfileHeightOutOfRange
	}
	if !IsValidBodyWeight(input.WeightKg) {
		return models.Profile{}, ErrBodyWeightOutOfRange
	}

	gender, err := ParseGender(input.Gender)
	if err != nil {
		return models.Profile{}, err
	}
	activityLevel, err := ParseActivityLevel(input.ActivityLevel)
	if err != nil {
		return models.Profile{}, err
	}
	goal, err := ParseGoal(input.Goal)
	if err != nil {
		return models.Profile{}, err
	}
	experience, err := ParseExperience(input.Experience)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		Age:            input.Age,
		HeightCm:       input.HeightCm,
		Gender:         gender,
		ActivityLevel:  activityLevel,
		Goal:           goal,
		Experience:     experience,
		StartingWeight: input.WeightKg,
		CurrentWeight:  input.WeightKg,
	}, nil
}

type CheckinInput struct {
	CurrentWeight    float64
	DietAdherence    string
	StrengthProgress string
	EnergyLevels     string
	SleepQuality     string
	Notes            string
}

type CheckinSignals struct {
	CurrentWeight    float64
	DietAdherence    models.DietAdherence
	StrengthProgress models.StrengthProgress
	EnergyLevels     models.EnergyLevel
	SleepQuality     models.SleepQuality
	Notes            string
}

func NormalizeCheckinInput(input CheckinInput) (CheckinSignals, error) {
	if !IsValidBodyWeight(input.CurrentWeight) {
		return CheckinSignals{}, ErrBodyWeightOutOfRange
	}

	adherence, err := ParseDietAdherence(input.DietAdherence)
	if err != nil {
		return CheckinSignals{}, err
	}
	strength, err := ParseStrengthProgress(input.StrengthProgress)
	if err != nil {
		return CheckinSignals{}, err
	}
	energy, err := ParseEnergyLevel(input.EnergyLevels)
	if err != nil {
		return CheckinSignals{}, err
	}
	sleep, err := ParseSleepQuality(input.SleepQuality)
	if err != nil {
		return CheckinSignals{}, err
	}

	return CheckinSignals{
		CurrentWeight:    input.CurrentWeight,
		DietAdherence:    adherence,
		StrengthProgress: strength,
		EnergyLevels:     energy,
		SleepQuality:     sleep,
		Notes:            TrimCheckinNotes(strings.TrimSpace(input.Notes)),
	}, nil
}

func IsValidBodyWeight(weightKg float64) bool {
	return weightKg >= models.MinBodyWeightKg && weightKg <= models.MaxBodyWeightKg
}

func TrimCheckinNotes(value string) string {
	runes := []rune(value)
	if len(runes) <= MaxCheckinNotesLength {
		return value
	}
	return string(runes[:MaxCheckinNotesLength])
}
