package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-FieldService/internal/config"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	clientRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	"github.com/m04kA/SMC-FieldService/internal/integrations/adl"
	cutUnpaidClientsUC "github.com/m04kA/SMC-FieldService/internal/usecase/cut_unpaid_clients"
	"github.com/m04kA/SMC-FieldService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
)

// errPartialFailure часть клиентов не удалось отключить
var errPartialFailure = errors.New("some clients were not cut")

var (
	configPath string
	cutoffDate string
)

var rootCmd = &cobra.Command{
	Use:   "cutoff",
	Short: "Cut service for clients with overdue payments",
	Long: `Finds active clients whose next payment date is before the cutoff date,
deactivates them through the AdL API and marks them as Cortado.
Intended to run once a day from cron.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.toml", "path to config file")
	rootCmd.Flags().StringVar(&cutoffDate, "date", "", "cutoff date YYYY-MM-DD (default: today)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errPartialFailure) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	var today time.Time
	if cutoffDate != "" {
		today, err = time.ParseInLocation(domain.DateFormat, cutoffDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", cutoffDate, err)
		}
	}

	if cfg.Adl.URL == "" {
		return errors.New("adl.url is not configured")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	useCase := cutUnpaidClientsUC.NewUseCase(
		clientRepo.NewRepository(dbmetrics.Wrap(db, nil)),
		adl.NewClient(cfg.Adl.URL, config.Seconds(cfg.Adl.Timeout)),
		nil,
		log,
	)

	result, err := useCase.Execute(ctx, &cutUnpaidClientsUC.Request{Today: today})
	if err != nil {
		log.Error("Cutoff run failed: %v", err)
		return err
	}

	log.Info("Cutoff run finished: checked=%d, cut=%d, failed=%d", result.Checked, result.Cut, result.Failed)
	if result.Failed > 0 {
		log.Warn("Clients not cut: %v", result.FailedClientIDs)
		return errPartialFailure
	}
	return nil
}
