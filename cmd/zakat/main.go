// Package main is the zakat command. It reads a wealth declaration, runs the
// Zakat engine on it and prints the result.
//
// Usage:
//
//	zakat -f wealth.yaml [-format text|json|yaml]
//
// Metal prices, currency, Nisab metal and output format default to the
// environment (see internal/config); the declaration file overrides them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	zakat "github.com/IRedDragonICY/zakat-calculator"
	"github.com/IRedDragonICY/zakat-calculator/internal/config"
	"github.com/IRedDragonICY/zakat-calculator/internal/declaration"
	"github.com/IRedDragonICY/zakat-calculator/internal/report"
	"github.com/IRedDragonICY/zakat-calculator/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	if err := run(os.Args[1:], cfg, os.Stdout, log); err != nil {
		log.Error().Err(err).Msg("Zakat calculation failed")
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, stdout io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("zakat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("f", "-", "declaration file (YAML or JSON), - for stdin")
	format := fs.String("format", cfg.Format, "output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	defaults, err := defaultsFromConfig(cfg)
	if err != nil {
		return err
	}

	decl, err := declaration.Load(*path)
	if err != nil {
		return err
	}
	log.Debug().
		Str("path", *path).
		Int("gold_entries", len(decl.Gold)).
		Bool("silver_holding", decl.Silver != nil).
		Msg("Declaration loaded")

	req, err := decl.Resolve(defaults)
	if err != nil {
		return err
	}

	result, err := req.Calculate()
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}
	log.Info().
		Str("currency", req.Currency.String()).
		Str("nisab_metal", req.Metal.String()).
		Str("nisab_threshold", result.NisabThreshold.String()).
		Str("net_assets", result.NetZakatableAssets.String()).
		Bool("eligible", result.IsEligible).
		Str("zakat_payable", result.ZakatPayable.String()).
		Msg("Zakat calculated")

	if err := report.Write(stdout, *format, result, req.Currency, req.Metal); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func defaultsFromConfig(cfg *config.Config) (declaration.Defaults, error) {
	prices, err := cfg.Prices()
	if err != nil {
		return declaration.Defaults{}, err
	}
	currency, err := zakat.ParseCurrency(cfg.Currency)
	if err != nil {
		return declaration.Defaults{}, err
	}
	metal, err := zakat.ParseMetal(cfg.NisabMetal)
	if err != nil {
		return declaration.Defaults{}, err
	}
	return declaration.Defaults{Prices: prices, Currency: currency, Metal: metal}, nil
}
