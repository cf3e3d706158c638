package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"greenfin/internal/config"
	"greenfin/internal/dataprocessing"
	"greenfin/internal/exporter"
	"greenfin/internal/infrastructure"
	"greenfin/internal/validation"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the raw exports (defaults to data/ next to the executable)")
	resultsDir := flag.String("results", "", "directory for generated CSV summaries (defaults to results/ next to the executable)")
	configFile := flag.String("config", "", "path to greenfin.yaml (defaults to the file next to the executable)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		paths.DataDir = *dataDir
	}
	if *resultsDir != "" {
		paths.ResultsDir = *resultsDir
		paths.BankPortfoliosCSV = paths.GetResultPath("bank_portfolios.csv")
		paths.TemporalEvolutionCSV = paths.GetResultPath("temporal_evolution.csv")
	}

	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.LoadFromFile(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.Output != "console" && !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(cfg.Logging.FilePath)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	if err := run(ctx, logger, cfg, paths); err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run executes one full pipeline pass: load, aggregate, export, summarize.
func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, paths *config.Paths) error {
	logger.InfoContext(ctx, "starting green finance analysis",
		slog.String("data_dir", paths.DataDir),
		slog.String("results_dir", paths.ResultsDir))

	validator := validation.NewInputValidator(logger)
	if err := validator.ValidateDataDirectory(paths.DataDir); err != nil {
		return err
	}
	if err := validator.ValidateRequiredFile(paths.GetDataPath(cfg.Data.BondsFile), ".csv"); err != nil {
		return err
	}
	if err := validator.ValidateRequiredFile(paths.GetDataPath(cfg.Data.LoansFile), ".csv"); err != nil {
		return err
	}

	loader := dataprocessing.NewLoader(logger, cfg.Data.Columns)

	bonds, err := loader.LoadRecords(ctx, paths.GetDataPath(cfg.Data.BondsFile))
	if err != nil {
		return err
	}
	loans, err := loader.LoadRecords(ctx, paths.GetDataPath(cfg.Data.LoansFile))
	if err != nil {
		return err
	}
	fossil := dataprocessing.LoadFossilFinance(ctx, logger, paths.GetDataPath(cfg.Data.FossilFile))

	portfolios := dataprocessing.CalculateBankPortfolios(bonds)
	series := dataprocessing.BuildTemporalSeries(bonds)

	if err := paths.EnsureDirectories(); err != nil {
		return err
	}
	writer := exporter.NewCSVWriter(paths)
	if err := writer.WriteBankPortfolios(portfolios); err != nil {
		return err
	}
	if err := writer.WriteTemporalEvolution(series); err != nil {
		return err
	}

	summary := dataprocessing.Summarize(bonds, loans, portfolios)
	growth := dataprocessing.GrowthMetrics(series)
	paradox := dataprocessing.CompareParadox(fossil, portfolios)

	logger.InfoContext(ctx, "analysis complete",
		slog.Int("bond_records", summary.BondRecords),
		slog.Int("loan_records", summary.LoanRecords),
		slog.Int("first_year", summary.FirstYear),
		slog.Int("last_year", summary.LastYear),
		slog.Float64("total_billions", summary.TotalBillions),
		slog.Int("banks_identified", summary.BanksIdentified))
	logger.InfoContext(ctx, "growth metrics",
		slog.Float64("cagr_full_pct", growth.CAGRFull),
		slog.Float64("cagr_5y_pct", growth.CAGRFiveYear),
		slog.Float64("china_share_first_pct", growth.ChinaShareFirst),
		slog.Float64("china_share_last_pct", growth.ChinaShareLast))
	logger.InfoContext(ctx, "fossil-to-green comparison",
		slog.Float64("total_fossil_billions", paradox.TotalFossilBillions),
		slog.Float64("total_green_billions", paradox.TotalGreenBillions),
		slog.Float64("fossil_to_green_ratio", paradox.FossilToGreenRatio))

	return nil
}
