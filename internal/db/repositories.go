package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Profiles     *ProfileRepository
	Plans        *PlanSnapshotRepository
	ProgressLogs *ProgressLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Profiles:     NewProfileRepository(database),
		Plans:        NewPlanSnapshotRepository(database),
		ProgressLogs: NewProgressLogRepository(database),
	}
}
