package services

import "github.com/terraincognita07/musclemap/internal/models"

type PlanProfileReader interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
}

type PlanSnapshotReader interface {
	FindCurrent(profileID uint) (models.PlanSnapshot, bool, error)
	ListByProfile(profileID uint) ([]models.PlanSnapshot, error)
}

type PlanService struct {
	profiles PlanProfileReader
	plans    PlanSnapshotReader
}

func NewPlanService(profiles PlanProfileReader, plans PlanSnapshotReader) *PlanService {
	return &PlanService{profiles: profiles, plans: plans}
}

func (service *PlanService) Current(userID uint) (models.PlanSnapshot, error) {
	profile, err := service.loadProfile(userID)
	if err != nil {
		return models.PlanSnapshot{}, err
	}

	plan, found, err := service.plans.FindCurrent(profile.ID)
	if err != nil {
		return models.PlanSnapshot{}, err
	}
	if !found {
		return models.PlanSnapshot{}, ErrCurrentPlanNotFound
	}
	return plan, nil
}

// Revisions returns every snapshot for the user's profile, oldest first.
func (service *PlanService) Revisions(userID uint) ([]models.PlanSnapshot, error) {
	profile, err := service.loadProfile(userID)
	if err != nil {
		return nil, err
	}

	plans, err := service.plans.ListByProfile(profile.ID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.PlanSnapshot{}
	}
	return plans, nil
}

func (service *PlanService) loadProfile(userID uint) (models.Profile, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, ErrProfileNotFound
	}
	return profile, nil
}
