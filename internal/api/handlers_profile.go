package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profilePayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.onboardingService.CreateProfile(user.ID, payload.toInput())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to save profile")
	}

	handler.logger.Info("profile onboarded",
		zap.Uint("user_id", user.ID),
		zap.String("goal", string(result.Profile.Goal)),
		zap.String("experience", string(result.Profile.Experience)),
		zap.Int("tdee_kcal", result.Metrics.TDEEKcal),
	)
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, metrics, err := handler.onboardingService.LoadProfile(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load profile")
	}
	return c.JSON(fiber.Map{
		"profile": profile,
		"metrics": metrics,
	})
}
