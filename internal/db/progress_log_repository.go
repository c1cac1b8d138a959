package db

import (
	"github.com/terraincognita07/musclemap/internal/models"
	"gorm.io/gorm"
)

// ProgressLogRepository is append-only: there is no update or delete.
type ProgressLogRepository struct {
	database *gorm.DB
}

func NewProgressLogRepository(database *gorm.DB) *ProgressLogRepository {
	return &ProgressLogRepository{database: database}
}

func (repo *ProgressLogRepository) CountByProfile(profileID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ProgressLog{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByProfile returns entries in insertion order.
func (repo *ProgressLogRepository) ListByProfile(profileID uint) ([]models.ProgressLog, error) {
	entries := make([]models.ProgressLog, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendWithPlan appends entry, stores plan as the next revision and updates
// the profile's weight and cached metrics in one transaction.
func (repo *ProgressLogRepository) AppendWithPlan(profile *models.Profile, entry *models.ProgressLog, plan *models.PlanSnapshot) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		plan.ProfileID = profile.ID
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		return tx.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]any{
			"current_weight": profile.CurrentWeight,
			"tdee_kcal":      profile.TDEEKcal,
			"bmi":            profile.BMI,
			"bmi_category":   profile.BMICategory,
		}).Error
	})
}
