package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/reqchain/reqchain"
	"github.com/reqchain/reqchain/export"
	"github.com/reqchain/reqchain/nlp"
	"github.com/reqchain/reqchain/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (YAML)")
	inputPath := flag.String("input", "", "Requirement document (.txt, .pdf, .xlsx)")
	outputPath := flag.String("output", "", "Acceptance-test workbook to write")
	dbPath := flag.String("db", "", "Optional SQLite database for run persistence")
	dot := flag.Bool("dot", false, "Print the network head→tail map as Graphviz DOT")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	// Structured JSON logging.
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg := reqchain.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = reqchain.LoadConfig(*configPath)
		if err != nil {
			slog.Error("loading config", "error", err)
			os.Exit(1)
		}
	}

	// Override from environment variables.
	if v := os.Getenv("REQCHAIN_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("REQCHAIN_PIPELINE"); v != "" {
		cfg.Provider.Pipeline = v
	}
	if v := os.Getenv("REQCHAIN_PATTERN_STYLE"); v != "" {
		cfg.PatternStyle = v
	}
	if v := os.Getenv("REQCHAIN_CHAIN_STYLE"); v != "" {
		cfg.ChainStyle = v
	}

	// Flags take precedence over config and environment.
	if *inputPath != "" {
		cfg.InputPath = *inputPath
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	if err := run(context.Background(), cfg, *dot); err != nil {
		slog.Error("extraction failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg reqchain.Config, dot bool) error {
	provider := nlp.NewHTTPProvider(cfg.Provider)
	extractor, err := reqchain.New(provider, cfg)
	if err != nil {
		return err
	}

	result, err := extractor.ExtractFile(ctx, cfg.InputPath)
	if err != nil {
		return err
	}

	if dot {
		fmt.Print(result.Network.DOT())
	}

	if err := export.WriteWorkbook(cfg.OutputPath, result.Store, result.Chains, len(result.Requirements)); err != nil {
		return err
	}
	slog.Info("exported acceptance tests",
		"tests", len(result.Chains),
		"output", cfg.OutputPath)

	if cfg.DBPath != "" {
		db, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		chains := make([][]string, len(result.Chains))
		for i, c := range result.Chains {
			chains[i] = c
		}
		runID, err := db.SaveRun(ctx, store.RunMeta{
			InputPath:        cfg.InputPath,
			PatternStyle:     cfg.PatternStyle,
			ChainStyle:       cfg.ChainStyle,
			RequirementCount: len(result.Requirements),
		}, result.Store.Relationships(), chains)
		if err != nil {
			return err
		}
		slog.Info("persisted run", "run_id", runID, "db", cfg.DBPath)
	}

	return nil
}
