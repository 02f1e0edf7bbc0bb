package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jhalloran/billarchive/internal/service"
)

func StatsHandler(statsService *service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		stats, err := statsService.Summary(ctx)
		if err != nil {
			log.Printf("Error calculating stats: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load stats"})
		}

		c.Set(fiber.HeaderCacheControl, "public, s-maxage=3600, stale-while-revalidate=7200")
		return c.JSON(stats)
	}
}
