package cmd

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jhalloran/billarchive/internal/handlers"
	"github.com/jhalloran/billarchive/internal/service"
	"github.com/jhalloran/billarchive/internal/store"
	"github.com/spf13/cobra"
)

var port string
var dbPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bill archive query server",
	Long:  `Start the web server that answers search and bill-detail queries against the archive.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Use PORT env var if set, otherwise use flag value
		if envPort := os.Getenv("PORT"); envPort != "" && port == "8080" {
			port = envPort
		}
		if envPath := os.Getenv("ARCHIVE_DB"); envPath != "" && dbPath == "data/archive.db" {
			dbPath = envPath
		}

		db, err := store.Open(dbPath)
		if err != nil {
			log.Fatalf("Failed to open archive: %v", err)
		}
		defer db.Close()

		// Initialize stores
		billStore := store.NewBillStore(db)
		searchStore := store.NewSearchStore(db)
		statsService := service.NewStatsService(db)

		app := fiber.New(fiber.Config{
			AppName: "Bill Archive",
		})

		app.Use(logger.New())

		// Routes
		app.Get("/api/search", handlers.SearchHandler(searchStore, billStore))
		app.Get("/api/bills/artifact/:artifactID", handlers.BillDetailByArtifactHandler(billStore))
		app.Get("/api/bills/:billID", handlers.BillDetailHandler(billStore))
		app.Get("/api/committees", handlers.CommitteesHandler(billStore))
		app.Get("/api/sessions", handlers.SessionsHandler(billStore))
		app.Get("/api/stats", handlers.StatsHandler(statsService))

		log.Printf("Starting server on :%s (archive: %s)", port, dbPath)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringVar(&dbPath, "db", "data/archive.db", "Path to the archive SQLite file")
}
