package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/musclemap/internal/models"
	"go.uber.org/zap"
)

var (
	ErrCurrentPlanNotFound = errors.New("current plan not found")
	ErrCheckinLoadFailed   = errors.New("load check-in state failed")
	ErrCheckinSaveFailed   = errors.New("save check-in failed")
)

type CheckinProfileReader interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
}

type CheckinPlanReader interface {
	FindCurrent(profileID uint) (models.PlanSnapshot, bool, error)
}

type CheckinLedger interface {
	CountByProfile(profileID uint) (int64, error)
	AppendWithPlan(profile *models.Profile, entry *models.ProgressLog, plan *models.PlanSnapshot) error
}

type CheckinService struct {
	profiles    CheckinProfileReader
	plans       CheckinPlanReader
	ledger      CheckinLedger
	logger      *zap.Logger
	locks       *userLocks
	newPublicID func() string
}

type CheckinResult struct {
	Entry      models.ProgressLog  `json:"entry"`
	Profile    models.Profile      `json:"profile"`
	Plan       models.PlanSnapshot `json:"plan"`
	Adaptation Adaptation          `json:"adaptation"`
}

func NewCheckinService(profiles CheckinProfileReader, plans CheckinPlanReader, ledger CheckinLedger, logger *zap.Logger) *CheckinService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckinService{
		profiles:    profiles,
		plans:       plans,
		ledger:      ledger,
		logger:      logger,
		locks:       newUserLocks(),
		newPublicID: uuid.NewString,
	}
}

// Submit records one check-in and swaps in the adapted plan. The ledger entry,
// the new plan revision and the profile's new baseline weight are committed
// together; on any error nothing is applied.
func (service *CheckinService) Submit(userID uint, input CheckinInput, now time.Time, location *time.Location) (CheckinResult, error) {
	signals, err := NormalizeCheckinInput(input)
	if err != nil {
		return CheckinResult{}, err
	}

	unlock := service.locks.lock(userID)
	defer unlock()

	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		service.logger.Error("load profile for check-in", zap.Uint("user_id", userID), zap.Error(err))
		return CheckinResult{}, ErrCheckinLoadFailed
	}
	if !found {
		return CheckinResult{}, ErrProfileNotFound
	}

	current, found, err := service.plans.FindCurrent(profile.ID)
	if err != nil {
		service.logger.Error("load current plan", zap.Uint("profile_id", profile.ID), zap.Error(err))
		return CheckinResult{}, ErrCheckinLoadFailed
	}
	if !found {
		return CheckinResult{}, ErrCurrentPlanNotFound
	}

	previousEntries, err := service.ledger.CountByProfile(profile.ID)
	if err != nil {
		service.logger.Error("count progress logs", zap.Uint("profile_id", profile.ID), zap.Error(err))
		return CheckinResult{}, ErrCheckinLoadFailed
	}

	entry := models.ProgressLog{
		PublicID:          service.newPublicID(),
		ProfileID:         profile.ID,
		Date:              DateAtLocation(now, location),
		WeekNumber:        int(previousEntries) + 1,
		StartWeightOfWeek: profile.CurrentWeight,
		CurrentWeight:     signals.CurrentWeight,
		DietAdherence:     signals.DietAdherence,
		StrengthProgress:  signals.StrengthProgress,
		EnergyLevels:      signals.EnergyLevels,
		SleepQuality:      signals.SleepQuality,
		Notes:             signals.Notes,
	}

	adaptation, err := Adapt(profile, entry, current.Nutrition, current.Workout)
	if err != nil {
		return CheckinResult{}, err
	}
	entry.Outcome = string(adaptation.Outcome)

	updatedProfile := profile
	updatedProfile.CurrentWeight = signals.CurrentWeight
	updatedProfile, err = WithMetrics(updatedProfile)
	if err != nil {
		return CheckinResult{}, err
	}

	plan := models.PlanSnapshot{
		ProfileID: profile.ID,
		Revision:  current.Revision + 1,
		Source:    models.PlanSourceCheckin,
		Nutrition: adaptation.Nutrition,
		Workout:   adaptation.Workout,
		Feedback:  adaptation.Feedback,
	}

	if err := service.ledger.AppendWithPlan(&updatedProfile, &entry, &plan); err != nil {
		service.logger.Error("commit check-in", zap.Uint("profile_id", profile.ID), zap.Error(err))
		return CheckinResult{}, ErrCheckinSaveFailed
	}

	service.logger.Info("check-in adapted plan",
		zap.Uint("profile_id", profile.ID),
		zap.Int("week", entry.WeekNumber),
		zap.String("goal", string(profile.Goal)),
		zap.String("outcome", entry.Outcome),
		zap.Float64("weight_change", adaptation.WeightChange),
		zap.Int("calories_kcal", adaptation.Nutrition.CaloriesKcal),
		zap.Int("plan_revision", plan.Revision),
	)

	return CheckinResult{
		Entry:      entry,
		Profile:    updatedProfile,
		Plan:       plan,
		Adaptation: adaptation,
	}, nil
}
