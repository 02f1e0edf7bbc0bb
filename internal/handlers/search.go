package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhalloran/billarchive/internal/store"
)

func SearchHandler(searchStore *store.SearchStore, billStore *store.BillStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		page, err := strconv.Atoi(c.Query("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		params := store.SearchParams{
			Query:       c.Query("q"),
			Page:        page,
			CommitteeID: c.Query("committee"),
			Session:     c.Query("session"),
			State:       c.Query("state"),
		}

		resp, err := searchStore.Search(ctx, params)
		if err != nil {
			log.Printf("Error searching bills: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
		}

		if err := billStore.AttachCompanions(ctx, resp.Results); err != nil {
			log.Printf("Error attaching companions: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
		}

		c.Set(fiber.HeaderCacheControl, "public, s-maxage=60, stale-while-revalidate=300")
		return c.JSON(resp)
	}
}
