package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/musclemap/internal/services"
	"go.uber.org/zap"
)

var errInvalidJSONBody = errors.New("invalid json body")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseJSONBody(c *fiber.Ctx, target any) error {
	if len(c.Body()) == 0 {
		return errInvalidJSONBody
	}
	if err := c.BodyParser(target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSONBody, err)
	}
	return nil
}

// serviceErrorStatus maps service sentinels to a status and a client-safe
// message. Anything unrecognised is a 500 with the fallback message.
func serviceErrorStatus(err error, fallback string) (int, string) {
	switch {
	case services.IsUnknownEnumError(err),
		errors.Is(err, services.ErrProfileAgeOutOfRange),
		errors.Is(err, services.ErrProfileHeightOutOfRange),
		errors.Is(err, services.ErrBodyWeightOutOfRange),
		errors.Is(err, services.ErrAuthCredentialsInvalid),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrPasswordUnchanged),
		errors.Is(err, services.ErrHistoryFromDateInvalid),
		errors.Is(err, services.ErrHistoryToDateInvalid),
		errors.Is(err, services.ErrHistoryRangeInvalid):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrCurrentPlanNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrProfileAlreadyExists),
		errors.Is(err, services.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict, err.Error()
	default:
		return fiber.StatusInternalServerError, fallback
	}
}

func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	status, message := serviceErrorStatus(err, fallback)
	if status == fiber.StatusInternalServerError {
		handler.logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
	}
	return apiError(c, status, message)
}
