package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"ratgen/internal/config"
	"ratgen/internal/stats"
	ratgenapi "ratgen/pkg/ratgen"
)

type crossOutput struct {
	ratgenapi.CrossSummary
	Tally []stats.TallyEntry `json:"tally,omitempty"`
}

func runCross(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("cross", flag.ContinueOnError)
	fs.SetOutput(errOut)
	bindStoreFlags(fs, &cfg)
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language tag for number formatting")
	fs.BoolVar(&cfg.Plot, "plot", cfg.Plot, "show phenotype probability bar chart")
	noPlot := fs.Bool("no-plot", false, "disable the bar chart")
	configPath := fs.String("config", "", "optional cross config JSON path")
	rosterPath := fs.String("roster", "", "YAML roster to load into the colony before crossing")
	litter := fs.Int("litter", 0, "simulate N pups")
	seed := fs.Int64("seed", 0, "random seed for the litter simulation")
	jsonOut := fs.Bool("json", false, "emit the cross result as JSON")
	chartWidth := fs.Int("chart-width", 40, "bar chart width in cells")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}

	req := ratgenapi.CrossRequest{}
	if *configPath != "" {
		fileReq, plot, err := loadCrossRequestFromConfig(*configPath)
		if err != nil {
			return err
		}
		req = fileReq
		if plot != nil && !flagWasSet(fs, "plot") {
			cfg.Plot = *plot
		}
	}
	switch len(positional) {
	case 0:
	case 2:
		req.Sire, req.Dam = positional[0], positional[1]
	default:
		return usageError("cross expects SIRE and DAM genotypes")
	}
	if req.Sire == "" || req.Dam == "" {
		return usageError("cross expects SIRE and DAM genotypes")
	}
	if flagWasSet(fs, "litter") {
		req.LitterSize = *litter
	}
	if req.LitterSize < 0 {
		return usageError("litter must be >= 0")
	}
	if flagWasSet(fs, "seed") {
		v := *seed
		req.Seed = &v
	}
	if *noPlot {
		cfg.Plot = false
	}

	logger := newLogger(cfg, errOut)
	printer, err := newPrinter(cfg)
	if err != nil {
		return err
	}
	client, err := openClient(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if *rosterPath != "" {
		n, err := client.ImportRoster(ctx, *rosterPath)
		if err != nil {
			return err
		}
		logger.Printf("roster=%s imported=%d", *rosterPath, n)
	}
	if req.Seed != nil {
		logger.Printf("seed=%d", *req.Seed)
	}

	summary, err := client.Cross(ctx, req)
	if err != nil {
		return err
	}
	logger.Printf("sire=%q resolved=%q dam=%q resolved=%q", summary.Sire, summary.SireGenotype, summary.Dam, summary.DamGenotype)

	if *jsonOut {
		payload := crossOutput{CrossSummary: summary}
		if summary.Litter != nil {
			payload.Tally = stats.TallyLitter(summary.Phenotypes, summary.Litter)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	if err := stats.WriteCrossReport(out, printer, summary.Tables); err != nil {
		return err
	}
	if summary.Litter != nil {
		if err := stats.WriteLitter(out, printer, summary.Phenotypes, summary.Litter); err != nil {
			return err
		}
	}
	if cfg.Plot {
		title := stats.ChartTitle(summary.Sire, summary.Dam)
		if err := stats.RenderBarChart(out, printer, title, stats.BuildPhenotypeBars(summary.Phenotypes), *chartWidth); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out)
	return err
}
