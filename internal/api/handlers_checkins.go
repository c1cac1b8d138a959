package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/musclemap/internal/services"
)

func (handler *Handler) SubmitCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := checkinPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.checkinService.Submit(user.ID, payload.toInput(), time.Now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to save check-in")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (handler *Handler) GetCheckins(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	ledger, err := handler.historyService.Ledger(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load history")
	}
	return c.JSON(ledger)
}

// ExportCheckinsCSV writes the caller's ledger as CSV. The optional from/to
// range only narrows this export view; the ledger itself is append-only and
// GetCheckins always returns every entry.
func (handler *Handler) ExportCheckinsCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	historyRange, err := services.ParseHistoryRange(c.Query("from"), c.Query("to"), handler.location)
	if err != nil {
		return handler.respondServiceError(c, err, "invalid range")
	}

	records, err := handler.historyService.BuildCSVRecords(user.ID, historyRange, handler.location)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.WriteAll(records); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", buildExportFilename(now)))
	return c.Send(output.Bytes())
}

func buildExportFilename(now time.Time) string {
	return fmt.Sprintf("musclemap-history-%s.csv", now.Format("2006-01-02"))
}
