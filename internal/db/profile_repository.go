package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/musclemap/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID uint) (models.Profile, bool, error) {
	var profile models.Profile
	err := repo.database.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, true, nil
}

// CreateWithInitialPlan stores the profile and its first plan revision together.
func (repo *ProfileRepository) CreateWithInitialPlan(profile *models.Profile, plan *models.PlanSnapshot) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		plan.ProfileID = profile.ID
		return tx.Create(plan).Error
	})
	return translateUniqueViolation(err)
}

// translateUniqueViolation reports a unique index conflict as
// gorm.ErrDuplicatedKey, keeping the driver message.
func translateUniqueViolation(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
	}
	return err
}
