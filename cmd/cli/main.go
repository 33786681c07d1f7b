package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mk-tools/brand-atlas/pkg/adapters"
	"github.com/mk-tools/brand-atlas/pkg/config"
	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/services/metrics"
	reportsvc "github.com/mk-tools/brand-atlas/pkg/services/report"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/activity"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/contracts"
	"github.com/mk-tools/brand-atlas/pkg/store/mysql/reports"
)

var (
	cfgPath  string
	entityID string
	cadence  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brand-atlas",
		Short: "Brand Atlas reporting CLI",
	}

	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a report for an entity and print it",
		RunE:  runCompile,
	}
	compileCmd.Flags().StringVarP(&cfgPath, "config", "c", "brand-atlas.yaml", "Path to the configuration file")
	compileCmd.Flags().StringVarP(&entityID, "entity", "e", "", "Entity identifier")
	compileCmd.Flags().StringVar(&cadence, "cadence", string(domain.CadenceWeeklyCheckin), "Report cadence")
	_ = compileCmd.MarkFlagRequired("entity")

	rootCmd.AddCommand(compileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "loaded environment from .env")
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := mysql.NewDB(mysql.Settings{DSN: cfg.MySQLDSN})
	if err != nil {
		return fmt.Errorf("failed to connect to mysql: %w", err)
	}
	defer db.Close()

	activityStore, err := activity.NewStore(db)
	if err != nil {
		return err
	}
	reportStore, err := reports.NewStore(db)
	if err != nil {
		return err
	}
	contractStore, err := contracts.NewStore(db)
	if err != nil {
		return err
	}

	controller, err := metrics.NewController(
		metrics.NewSocialAnalyzer(activityStore),
		metrics.NewPaidMediaAnalyzer(activityStore),
		metrics.NewSearchAnalyzer(activityStore),
	)
	if err != nil {
		return err
	}

	compiler := reportsvc.NewCompiler(controller, reportStore, contractStore)
	compiled, err := compiler.Compile(ctx, reportsvc.CompileRequest{
		EntityID: entityID,
		Cadence:  domain.Cadence(cadence),
	})
	if err != nil {
		return err
	}

	if compiled.Narrative != nil {
		fmt.Println(*compiled.Narrative)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(adapters.MapReportDomainToApi(compiled))
}
