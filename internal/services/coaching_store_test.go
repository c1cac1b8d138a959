package services

import (
	"errors"
	"sort"

	"github.com/terraincognita07/musclemap/internal/models"
)

var errStubStore = errors.New("stub store failure")

// stubCoachingStore keeps profiles, plans and logs in memory.
type stubCoachingStore struct {
	profiles  map[uint]models.Profile
	plans     []models.PlanSnapshot
	logs      []models.ProgressLog
	nextID    uint
	findErr   error
	appendErr error
	createErr error
}

func newStubCoachingStore() *stubCoachingStore {
	return &stubCoachingStore{profiles: make(map[uint]models.Profile), nextID: 1}
}

func (store *stubCoachingStore) FindByUserID(userID uint) (models.Profile, bool, error) {
	if store.findErr != nil {
		return models.Profile{}, false, store.findErr
	}
	profile, ok := store.profiles[userID]
	return profile, ok, nil
}

func (store *stubCoachingStore) CreateWithInitialPlan(profile *models.Profile, plan *models.PlanSnapshot) error {
	if store.createErr != nil {
		return store.createErr
	}
	profile.ID = store.nextID
	store.nextID++
	plan.ProfileID = profile.ID
	store.profiles[profile.UserID] = *profile
	store.plans = append(store.plans, *plan)
	return nil
}

func (store *stubCoachingStore) FindCurrent(profileID uint) (models.PlanSnapshot, bool, error) {
	plans, _ := store.ListByProfilePlans(profileID)
	if len(plans) == 0 {
		return models.PlanSnapshot{}, false, nil
	}
	return plans[len(plans)-1], true, nil
}

func (store *stubCoachingStore) ListByProfilePlans(profileID uint) ([]models.PlanSnapshot, error) {
	var plans []models.PlanSnapshot
	for _, plan := range store.plans {
		if plan.ProfileID == profileID {
			plans = append(plans, plan)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Revision < plans[j].Revision })
	return plans, nil
}

func (store *stubCoachingStore) CountByProfile(profileID uint) (int64, error) {
	var count int64
	for _, entry := range store.logs {
		if entry.ProfileID == profileID {
			count++
		}
	}
	return count, nil
}

func (store *stubCoachingStore) ListByProfile(profileID uint) ([]models.ProgressLog, error) {
	var entries []models.ProgressLog
	for _, entry := range store.logs {
		if entry.ProfileID == profileID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (store *stubCoachingStore) AppendWithPlan(profile *models.Profile, entry *models.ProgressLog, plan *models.PlanSnapshot) error {
	if store.appendErr != nil {
		return store.appendErr
	}
	store.profiles[profile.UserID] = *profile
	store.logs = append(store.logs, *entry)
	store.plans = append(store.plans, *plan)
	return nil
}

// stubPlanLister adapts the store to PlanSnapshotReader.
type stubPlanLister struct {
	*stubCoachingStore
}

func (lister stubPlanLister) ListByProfile(profileID uint) ([]models.PlanSnapshot, error) {
	return lister.ListByProfilePlans(profileID)
}
