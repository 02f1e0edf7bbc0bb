package cmd

import (
	"context"
	"log"
	"os"

	"github.com/jhalloran/billarchive/internal/model"
	"github.com/jhalloran/billarchive/internal/service"
	"github.com/jhalloran/billarchive/internal/store"
	"github.com/spf13/cobra"
)

var statsDBPath string
var statsTopCommittees int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print archive totals and the busiest committees",
	Long: `Summarize the archive: bill, action, hearing, and document counts, the
compliance split, and the committees holding the most referrals.

Examples:
  # Summarize the default archive
  ./billarchive stats

  # Summarize a specific archive file
  ./billarchive stats --db /var/data/archive.db`,
	Run: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsDBPath, "db", "data/archive.db", "Path to the archive SQLite file")
	statsCmd.Flags().IntVar(&statsTopCommittees, "top", 10, "Number of committees to list")
}

func runStats(cmd *cobra.Command, args []string) {
	if envPath := os.Getenv("ARCHIVE_DB"); envPath != "" && statsDBPath == "data/archive.db" {
		statsDBPath = envPath
	}

	ctx := context.Background()

	db, err := store.Open(statsDBPath)
	if err != nil {
		log.Fatalf("Failed to open archive: %v", err)
	}
	defer db.Close()

	statsService := service.NewStatsService(db)
	stats, err := statsService.Summary(ctx)
	if err != nil {
		log.Fatalf("Failed to calculate stats: %v", err)
	}

	log.Println("=== Archive Summary ===")
	log.Printf("Bills:         %d", stats.TotalBills)
	log.Printf("Actions:       %d", stats.TotalActions)
	log.Printf("Hearings:      %d", stats.TotalHearings)
	log.Printf("Documents:     %d", stats.TotalDocuments)
	log.Printf("Compliant:     %d", stats.Compliant)
	log.Printf("Non-Compliant: %d", stats.NonCompliant)

	billStore := store.NewBillStore(db)
	committees, err := billStore.ListCommittees(ctx)
	if err != nil {
		log.Fatalf("Failed to list committees: %v", err)
	}

	log.Println("")
	log.Println("=== Committees by referral count ===")
	for i, c := range committees {
		if i >= statsTopCommittees {
			break
		}
		log.Printf("%-4s %4d  %s", c.ID, c.Count, model.CommitteeShortName(c.ID))
	}
}
