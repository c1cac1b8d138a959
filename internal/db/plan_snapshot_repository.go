package db

import (
	"errors"

	"github.com/terraincognita07/musclemap/internal/models"
	"gorm.io/gorm"
)

type PlanSnapshotRepository struct {
	database *gorm.DB
}

func NewPlanSnapshotRepository(database *gorm.DB) *PlanSnapshotRepository {
	return &PlanSnapshotRepository{database: database}
}

func (repo *PlanSnapshotRepository) FindCurrent(profileID uint) (models.PlanSnapshot, bool, error) {
	var plan models.PlanSnapshot
	err := repo.database.
		Where("profile_id = ?", profileID).
		Order("revision DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PlanSnapshot{}, false, nil
	}
	if err != nil {
		return models.PlanSnapshot{}, false, err
	}
	return plan, true, nil
}

func (repo *PlanSnapshotRepository) ListByProfile(profileID uint) ([]models.PlanSnapshot, error) {
	plans := make([]models.PlanSnapshot, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("revision ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
