package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mk-tools/brand-atlas/pkg/config"
	"github.com/mk-tools/brand-atlas/pkg/server"
	goalsvc "github.com/mk-tools/brand-atlas/pkg/services/goal"
	"github.com/mk-tools/brand-atlas/pkg/services/metrics"
	"github.com/mk-tools/brand-atlas/pkg/services/narrative"
	reportsvc "github.com/mk-tools/brand-atlas/pkg/services/report"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/activity"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/contracts"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/goals"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/reports"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Brand Atlas reporting API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "brand-atlas.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIAPIKey = key
	}

	db, err := mysql.NewDB(mysql.Settings{DSN: cfg.MySQLDSN})
	if err != nil {
		return fmt.Errorf("failed to connect to mysql: %w", err)
	}

	activityStore, err := activity.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create activity store: %w", err)
	}
	reportStore, err := reports.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}
	goalStore, err := goals.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create goal store: %w", err)
	}
	contractStore, err := contracts.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create contract store: %w", err)
	}

	controller, err := metrics.NewController(
		metrics.NewSocialAnalyzer(activityStore),
		metrics.NewPaidMediaAnalyzer(activityStore),
		metrics.NewSearchAnalyzer(activityStore),
	)
	if err != nil {
		return fmt.Errorf("failed to create metrics controller: %w", err)
	}

	opts := []reportsvc.Option{}
	if cfg.OpenAIAPIKey != "" {
		generator := narrative.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.NarrativeTimeout)
		opts = append(opts, reportsvc.WithGenerator(generator, cfg.NarrativeTimeout))
	} else {
		logger.Info().Msg("no OpenAI API key configured, narrative enrichment disabled")
	}

	compiler := reportsvc.NewCompiler(controller, reportStore, contractStore, opts...)
	tracker := goalsvc.NewTracker(goalStore)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Compiler: compiler,
			Reports:  reportStore,
			Tracker:  tracker,
		},
	})

	return api.Start()
}
