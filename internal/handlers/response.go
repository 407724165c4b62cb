package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/models"
)

// toolSuccess returns a successful tool envelope with execution timing.
func toolSuccess(c fiber.Ctx, started time.Time, data any, vars map[string]any) error {
	return c.JSON(models.ToolResponse{
		Success:          true,
		Data:             data,
		DynamicVariables: vars,
		Meta:             &models.Meta{ExecutionTimeMs: time.Since(started).Milliseconds()},
	})
}

// toolFailure returns a degraded tool envelope. The HTTP status stays 200 so
// the voice platform keeps the conversation alive and processes any fallback
// dynamic variables.
func toolFailure(c fiber.Ctx, started time.Time, message string, vars map[string]any) error {
	return c.JSON(models.ToolResponse{
		Success:          false,
		Error:            message,
		DynamicVariables: vars,
		Meta:             &models.Meta{ExecutionTimeMs: time.Since(started).Milliseconds()},
	})
}

// badRequest rejects a malformed request body before any tool logic runs.
func badRequest(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ToolResponse{
		Success: false,
		Error:   message,
	})
}
