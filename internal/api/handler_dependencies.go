package api

import (
	"github.com/terraincognita07/musclemap/internal/db"
	"github.com/terraincognita07/musclemap/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.onboardingService = services.NewOnboardingService(handler.repositories.Profiles, handler.logger.Named("onboarding"))
	handler.checkinService = services.NewCheckinService(
		handler.repositories.Profiles,
		handler.repositories.Plans,
		handler.repositories.ProgressLogs,
		handler.logger.Named("checkin"),
	)
	handler.historyService = services.NewHistoryService(handler.repositories.Profiles, handler.repositories.ProgressLogs)
	handler.planService = services.NewPlanService(handler.repositories.Profiles, handler.repositories.Plans)
	handler.setupService = services.NewSetupService(handler.repositories.Users, handler.repositories.Profiles)
	return handler
}
