package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oolongtea/coursehub-sync/database"
)

func HandleCheckHealth(c *fiber.Ctx, store *database.GORMStore) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
