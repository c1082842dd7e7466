package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ecommerce-eda-lab/internal/analysis"
	"ecommerce-eda-lab/internal/config"
	"ecommerce-eda-lab/internal/data"
	"ecommerce-eda-lab/internal/logger"
	"ecommerce-eda-lab/internal/render"
)

func main() {
	var (
		showSummary = flag.Bool("summary", false, "print descriptive statistics for every numeric column")
		csvPath     = flag.String("csv", "", "also export the synthesized dataset to this CSV file")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	start := time.Now()
	table, err := data.GenerateDataset(cfg.Seeding())
	if err != nil {
		lg.Fatal("failed to generate dataset", zap.Error(err))
	}
	lg.Debug("dataset ready",
		zap.Int("rows", table.Len()),
		zap.Uint64("seed", cfg.Seed),
		zap.Float64("grand_total", table.GrandTotal()),
		zap.Duration("elapsed", time.Since(start)))
	fmt.Printf("Synthetic e-commerce dataset created with %d rows.\n", table.Len())

	if *csvPath != "" {
		if err := exportCSV(*csvPath, table); err != nil {
			lg.Fatal("failed to export dataset", zap.Error(err))
		}
		lg.Info("dataset exported", zap.String("path", *csvPath))
	}

	if *showSummary {
		rows, err := analysis.Describe(table.DataFrame())
		if err != nil {
			lg.Fatal("failed to describe dataset", zap.Error(err))
		}
		if err := printSummaryTable(os.Stdout, rows); err != nil {
			lg.Fatal("failed to print summary", zap.Error(err))
		}
	}

	if err := render.New(cfg.RenderOptions(), lg).Render(table); err != nil {
		lg.Fatal("failed to render visualizations", zap.Error(err))
	}
	fmt.Printf("Exploratory visualization saved as '%s'\n", cfg.Output)
}

func exportCSV(path string, table data.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return table.WriteCSV(f)
}

func printSummaryTable(w io.Writer, rows []analysis.Summary) error {
	tw := tablewriter.NewWriter(w)
	tw.Header("column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range rows {
		if err := tw.Append([]string{
			s.Column,
			fmt.Sprintf("%d", s.Count),
			formatStat(s.Mean),
			formatStat(s.Std),
			formatStat(s.Min),
			formatStat(s.Q1),
			formatStat(s.Median),
			formatStat(s.Q3),
			formatStat(s.Max),
		}); err != nil {
			return err
		}
	}
	return tw.Render()
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
