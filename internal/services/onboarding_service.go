package services

import (
	"errors"

	"github.com/terraincognita07/musclemap/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileSaveFailed    = errors.New("save profile failed")
)

type OnboardingProfileRepository interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
	// CreateWithInitialPlan reports a second profile for the same user as
	// gorm.ErrDuplicatedKey.
	CreateWithInitialPlan(profile *models.Profile, plan *models.PlanSnapshot) error
}

type OnboardingService struct {
	profiles OnboardingProfileRepository
	logger   *zap.Logger
}

type OnboardingResult struct {
	Profile models.Profile      `json:"profile"`
	Metrics ProfileMetrics      `json:"metrics"`
	Plan    models.PlanSnapshot `json:"plan"`
}

func NewOnboardingService(profiles OnboardingProfileRepository, logger *zap.Logger) *OnboardingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OnboardingService{profiles: profiles, logger: logger}
}

func (service *OnboardingService) CreateProfile(userID uint, input ProfileInput) (OnboardingResult, error) {
	profile, err := NormalizeProfileInput(input)
	if err != nil {
		return OnboardingResult{}, err
	}

	_, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return OnboardingResult{}, err
	}
	if found {
		return OnboardingResult{}, ErrProfileAlreadyExists
	}

	initial, err := BuildInitialPlan(profile)
	if err != nil {
		return OnboardingResult{}, err
	}

	profile.UserID = userID
	profile.TDEEKcal = initial.Metrics.TDEEKcal
	profile.BMI = initial.Metrics.BMI
	profile.BMICategory = initial.Metrics.BMICategory

	plan := models.PlanSnapshot{
		Revision:  1,
		Source:    models.PlanSourceInitial,
		Nutrition: initial.Nutrition,
		Workout:   initial.Workout,
		Feedback:  initial.Feedback,
	}
	if err := service.profiles.CreateWithInitialPlan(&profile, &plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return OnboardingResult{}, ErrProfileAlreadyExists
		}
		service.logger.Error("create profile", zap.Uint("user_id", userID), zap.Error(err))
		return OnboardingResult{}, ErrProfileSaveFailed
	}

	return OnboardingResult{
		Profile: profile,
		Metrics: initial.Metrics,
		Plan:    plan,
	}, nil
}

func (service *OnboardingService) LoadProfile(userID uint) (models.Profile, ProfileMetrics, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.Profile{}, ProfileMetrics{}, err
	}
	if !found {
		return models.Profile{}, ProfileMetrics{}, ErrProfileNotFound
	}
	metrics, err := CalculateProfileMetrics(profile)
	if err != nil {
		return models.Profile{}, ProfileMetrics{}, err
	}
	return profile, metrics, nil
}
