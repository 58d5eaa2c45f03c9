package main

import (
	"context"
	"fmt"
	"os"

	"learn2drive/internal/config"
	"learn2drive/internal/database"
	"learn2drive/internal/logger"
	"learn2drive/internal/repository"
	"learn2drive/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the assessment catalog into the database",
	Long: "Reads quiz questions, road signs and the driving-test rubric from the seed data " +
		"directory and inserts them for every assessment kind whose catalog is still empty.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.Flags().String("data-dir", "", "Seed data directory (overrides seed.data_dir)")
	rootCmd.Flags().Bool("migrate", false, "Run schema migrations before seeding")
	rootCmd.Flags().Bool("validate-only", false, "Parse and validate the seed files without touching the database")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command) error {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	dataDir := cfg.Seed.DataDir
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		dataDir = dir
	}

	log.Info("Loading seed data", zap.String("dir", dataDir))
	catalog, err := seed.LoadCatalog(dataDir)
	if err != nil {
		return err
	}
	if err := catalog.Validate(cfg.Assessment.DrivingTestMaxScore); err != nil {
		return err
	}
	if validateOnly, _ := cmd.Flags().GetBool("validate-only"); validateOnly {
		log.Info("Seed data is valid",
			zap.Int("quiz_topics", len(catalog.Quiz.Topics)),
			zap.Int("road_sign_categories", len(catalog.RoadSigns.Categories)),
			zap.Int("rubric_categories", len(catalog.DrivingTest.Categories)))
		return nil
	}

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if runMigrations, _ := cmd.Flags().GetBool("migrate"); runMigrations {
		if err := database.RunMigrations(ctx, db, cfg.DB.Driver, log); err != nil {
			return err
		}
	}

	seeder := seed.NewSeeder(
		repository.NewCatalogDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		log,
	)
	results, err := seeder.Run(ctx, catalog)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-13s groups=%d items=%d skipped=%t\n", r.Kind, r.Groups, r.Items, r.Skipped)
	}
	return nil
}
