package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jhalloran/billarchive/internal/store"
)

func CommitteesHandler(billStore *store.BillStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		committees, err := billStore.ListCommittees(ctx)
		if err != nil {
			log.Printf("Error listing committees: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list committees"})
		}

		c.Set(fiber.HeaderCacheControl, "public, s-maxage=3600, stale-while-revalidate=7200")
		return c.JSON(committees)
	}
}

func SessionsHandler(billStore *store.BillStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		sessions, err := billStore.ListSessions(ctx)
		if err != nil {
			log.Printf("Error listing sessions: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list sessions"})
		}

		c.Set(fiber.HeaderCacheControl, "public, s-maxage=3600, stale-while-revalidate=7200")
		return c.JSON(sessions)
	}
}
