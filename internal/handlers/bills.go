package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhalloran/billarchive/internal/store"
)

const detailCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

func BillDetailHandler(billStore *store.BillStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		billID := strings.ToUpper(c.Params("billID"))

		detail, err := billStore.GetDetail(ctx, billID)
		if err != nil {
			log.Printf("Error loading bill %s: %v", billID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bill"})
		}
		if detail == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
		}

		c.Set(fiber.HeaderCacheControl, detailCacheControl)
		return c.JSON(detail)
	}
}

func BillDetailByArtifactHandler(billStore *store.BillStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		artifactID := c.Params("artifactID")

		detail, err := billStore.GetDetailByArtifact(ctx, artifactID)
		if err != nil {
			log.Printf("Error loading artifact %s: %v", artifactID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bill"})
		}
		if detail == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
		}

		c.Set(fiber.HeaderCacheControl, detailCacheControl)
		return c.JSON(detail)
	}
}
