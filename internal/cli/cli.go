package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/broadway-grosses/internal/capture"
	"github.com/pfrederiksen/broadway-grosses/internal/extract"
	"github.com/pfrederiksen/broadway-grosses/internal/fetcher"
	"github.com/pfrederiksen/broadway-grosses/internal/logger"
	"github.com/pfrederiksen/broadway-grosses/internal/xlsx"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoData  = 2
)

var (
	flagOutput  string
	flagDataDir string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "broadway-grosses",
		Short: "Scrape weekly Broadway grosses into a spreadsheet",
		Long: `A one-shot tool that fetches the Broadway League weekly grosses page,
extracts week-ending dates, show counts, grosses, and attendance figures,
and writes them to a timestamped Excel workbook.`,
		RunE: runScrape,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output filename (default: weekly_show_data_<timestamp>.xlsx)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.local/share/broadway-grosses", "Directory for diagnostic captures")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	// Initialize diagnostic capture
	diag, err := capture.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing capture directory: %w", err)
	}

	// Fetch the grosses page
	f := fetcher.New()
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetching %s\n", f.URL())
	}

	fetchStart := time.Now()
	body, err := f.Fetch()
	logger.RecordTiming("fetch.page", time.Since(fetchStart))
	if err != nil {
		var terr *fetcher.TransportError
		if errors.As(err, &terr) {
			logger.Error("Fetch failed", logger.Fields{"url": terr.URL, "status": terr.Status}, err)
		}
		return fmt.Errorf("fetching page: %w", err)
	}

	// Flatten markup to visible text
	text, err := extract.FlattenHTML(strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}

	// Extract and assemble records
	records := extract.New(diag).Assemble(text)

	result := &OutputResult{
		ScrapedAt:   time.Now().UTC(),
		RecordCount: len(records),
		Records:     records,
	}

	if len(records) == 0 {
		if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		os.Exit(ExitNoData)
		return nil
	}

	// Write the workbook
	path, err := xlsx.Write(records, flagOutput)
	if err != nil {
		logger.Error("Spreadsheet write failed", logger.Fields{"records": len(records)}, err)
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	result.OutputPath = path

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields(logger.GetMetricsSnapshot()))
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	os.Exit(ExitSuccess)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
