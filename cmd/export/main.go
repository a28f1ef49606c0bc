// Package main provides a command line export of the flight log as CSV
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/infrastructure/config"
	"flightlog-service/internal/infrastructure/store"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"

	"github.com/spf13/pflag"
)

type exportArgs struct {
	filter entity.FlightFilter
	output string
	stdout bool
}

func main() {
	var args exportArgs
	setupCommandLineFlags(&args)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()

	if err := run(context.Background(), cfg, args, log); err != nil {
		log.Error("Export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, args exportArgs, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	stores, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close(context.Background())

	service := usecase.NewFlightLogService(stores.Flights, stores.Rosters, nil, log)
	data, err := service.ExportCSV(ctx, args.filter)
	if err != nil {
		return err
	}

	if args.stdout {
		_, err := os.Stdout.Write(data)
		return err
	}

	output := args.output
	if output == "" {
		output = usecase.ExportFilename(time.Now())
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.Info("Flight log exported", "file", output, "bytes", len(data))
	return nil
}

func setupCommandLineFlags(args *exportArgs) {
	pflag.StringVarP(&args.filter.Month, "month", "m", "", "only export flights of this month (YYYY-MM)")
	pflag.StringVarP(&args.filter.Student, "student", "s", "", "only export flights of this student")
	pflag.StringVarP(&args.filter.Aircraft, "aircraft", "a", "", "only export flights of this aircraft")
	pflag.StringVarP(&args.output, "output", "o", "", "output file, defaults to flight-log-YYYY-MM-DD.csv")

	// Whether to print the CSV instead of writing a file.
	pflag.BoolVar(&args.stdout, "stdout", false, "write the CSV to standard output")
	pflag.Lookup("stdout").NoOptDefVal = "true"
}
