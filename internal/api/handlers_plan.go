package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetCurrentPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, err := handler.planService.Current(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load plan")
	}
	return c.JSON(plan)
}

func (handler *Handler) GetPlanRevisions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plans, err := handler.planService.Revisions(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load plans")
	}
	return c.JSON(fiber.Map{"revisions": plans})
}
