package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/musclemap/internal/models"
	"github.com/terraincognita07/musclemap/internal/services"
	"go.uber.org/zap"
)

// SetupStatus is public. A valid auth cookie adds the caller's profile state.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	var userID uint
	if user, err := handler.authenticateRequest(c); err == nil {
		userID = user.ID
	}
	status, err := handler.setupService.Status(userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load setup status")
	}
	return c.JSON(status)
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := credentialsPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(payload.Email, payload.Password)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to create account")
	}
	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	handler.logger.Info("account registered", zap.Uint("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": newUserResponse(user)})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := credentialsPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	key := loginLimiterKey(c, payload.Email)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(key, now, handler.loginMaxAttempts, handler.loginWindow) {
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(handler.loginWindow.Seconds())))
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(key, now, handler.loginWindow)
		}
		return handler.respondServiceError(c, err, "failed to sign in")
	}
	handler.loginLimiter.reset(key)

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"user": newUserResponse(user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := changePasswordPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.authService.ChangePassword(user.ID, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to update password")
	}
	if err := handler.setAuthCookie(c, &updated); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"user": newUserResponse(updated)})
}

func newUserResponse(user models.User) userResponse {
	return userResponse{
		ID:                 user.ID,
		Email:              user.Email,
		MustChangePassword: user.MustChangePassword,
	}
}
