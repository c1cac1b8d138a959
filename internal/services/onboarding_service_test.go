package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/terraincognita07/musclemap/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestCreateProfileStoresProfileAndInitialPlan(t *testing.T) {
	store := newStubCoachingStore()
	service := NewOnboardingService(store, nil)

	result, err := service.CreateProfile(3, validProfileInput())
	if err != nil {
		t.Fatalf("CreateProfile() unexpected error: %v", err)
	}
	if result.Profile.UserID != 3 || result.Profile.ID == 0 {
		t.Fatalf("expected saved profile for user 3, got %+v", result.Profile)
	}
	if result.Profile.TDEEKcal != 2224 || result.Metrics.TDEEKcal != 2224 {
		t.Fatalf("expected cached tdee 2224, got %d / %d", result.Profile.TDEEKcal, result.Metrics.TDEEKcal)
	}
	if result.Profile.BMICategory != models.BMINormal {
		t.Fatalf("expected normal bmi, got %q", result.Profile.BMICategory)
	}
	if result.Plan.Revision != 1 || result.Plan.Source != models.PlanSourceInitial {
		t.Fatalf("expected initial revision 1, got %d %q", result.Plan.Revision, result.Plan.Source)
	}
	if result.Plan.Nutrition.CaloriesKcal != 1824 {
		t.Fatalf("expected 1824 kcal, got %d", result.Plan.Nutrition.CaloriesKcal)
	}
	if len(result.Plan.Feedback) != 1 {
		t.Fatalf("expected welcome feedback, got %q", result.Plan.Feedback)
	}
	if len(store.plans) != 1 || store.plans[0].ProfileID != result.Profile.ID {
		t.Fatalf("expected one stored plan for the profile, got %+v", store.plans)
	}
}

func TestCreateProfileRejectsSecondProfile(t *testing.T) {
	store := newStubCoachingStore()
	service := NewOnboardingService(store, nil)

	if _, err := service.CreateProfile(3, validProfileInput()); err != nil {
		t.Fatalf("CreateProfile() unexpected error: %v", err)
	}
	if _, err := service.CreateProfile(3, validProfileInput()); !errors.Is(err, ErrProfileAlreadyExists) {
		t.Fatalf("expected ErrProfileAlreadyExists, got %v", err)
	}
}

func TestCreateProfileValidatesBeforeLookup(t *testing.T) {
	store := newStubCoachingStore()
	store.findErr = errStubStore
	service := NewOnboardingService(store, nil)

	input := validProfileInput()
	input.Goal = "shred"
	if _, err := service.CreateProfile(3, input); !errors.Is(err, ErrUnknownGoal) {
		t.Fatalf("expected ErrUnknownGoal, got %v", err)
	}
}

func TestCreateProfileMapsSaveFailure(t *testing.T) {
	store := newStubCoachingStore()
	store.createErr = errStubStore
	service := NewOnboardingService(store, nil)

	if _, err := service.CreateProfile(3, validProfileInput()); !errors.Is(err, ErrProfileSaveFailed) {
		t.Fatalf("expected ErrProfileSaveFailed, got %v", err)
	}
}

func TestCreateProfileLogsSaveFailureCause(t *testing.T) {
	store := newStubCoachingStore()
	store.createErr = errStubStore
	core, logs := observer.New(zap.ErrorLevel)
	service := NewOnboardingService(store, zap.New(core))

	if _, err := service.CreateProfile(3, validProfileInput()); !errors.Is(err, ErrProfileSaveFailed) {
		t.Fatalf("expected ErrProfileSaveFailed, got %v", err)
	}
	entries := logs.FilterMessage("create profile").All()
	if len(entries) != 1 {
		t.Fatalf("expected one logged save failure, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != errStubStore.Error() {
		t.Fatalf("expected logged cause %q, got %v", errStubStore, got)
	}
}

func TestCreateProfileMapsUniqueConflictToAlreadyExists(t *testing.T) {
	store := newStubCoachingStore()
	store.createErr = fmt.Errorf("%w: UNIQUE constraint failed: profiles.user_id", gorm.ErrDuplicatedKey)
	service := NewOnboardingService(store, nil)

	if _, err := service.CreateProfile(3, validProfileInput()); !errors.Is(err, ErrProfileAlreadyExists) {
		t.Fatalf("expected ErrProfileAlreadyExists, got %v", err)
	}
}

func TestLoadProfile(t *testing.T) {
	store := newStubCoachingStore()
	service := NewOnboardingService(store, nil)

	if _, _, err := service.LoadProfile(3); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	if _, err := service.CreateProfile(3, validProfileInput()); err != nil {
		t.Fatalf("CreateProfile() unexpected error: %v", err)
	}
	profile, metrics, err := service.LoadProfile(3)
	if err != nil {
		t.Fatalf("LoadProfile() unexpected error: %v", err)
	}
	if profile.UserID != 3 || metrics.TDEEKcal != 2224 {
		t.Fatalf("unexpected profile %+v metrics %+v", profile, metrics)
	}
}
