package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/timeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze [resume files...]",
	Short: "Score and rank resumes against a job description",
	Long: `Reads a job description and one or more resume text files, scores every resume
on skill coverage, domain alignment, role alignment, and verified experience,
and writes the ranked results as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeJD            string
	analyzeKnowledgeBase string
	analyzeMode          string
	analyzeWindow        int
	analyzeOutput        string
	analyzeVerbose       bool
	analyzeSave          bool
	analyzeDBURL         string
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description text file")
	analyzeCommand.Flags().StringVarP(&analyzeKnowledgeBase, "knowledge-base", "k", "", "Path to skill knowledge base JSON (defaults to the built-in knowledge base)")
	analyzeCommand.Flags().StringVarP(&analyzeMode, "mode", "m", "", "Analysis mode: standard or deep")
	analyzeCommand.Flags().IntVarP(&analyzeWindow, "window", "w", 0, "Recent-experience window in years")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Path to write the JSON report (defaults to stdout)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")
	analyzeCommand.Flags().BoolVar(&analyzeSave, "save", false, "Persist the batch report to PostgreSQL")

	// Database URL for report persistence
	analyzeCommand.Flags().StringVar(&analyzeDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("jd") {
		cfg.JD = analyzeJD
	}
	if cmd.Flags().Changed("knowledge-base") {
		cfg.KnowledgeBase = analyzeKnowledgeBase
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = analyzeMode
	}
	if cmd.Flags().Changed("window") {
		cfg.RecencyWindowYears = analyzeWindow
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDBURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Mode:               analysis.ModeStandard,
		RecencyWindowYears: timeline.DefaultWindowYears,
	}
	cfg = cfg.MergeWithDefaults(defaults)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Validate required fields
	if cfg.JD == "" {
		return fmt.Errorf("--jd must be provided (via flag or config)")
	}

	jdText, err := os.ReadFile(cfg.JD)
	if err != nil {
		return fmt.Errorf("failed to read jd file %s: %w", cfg.JD, err)
	}

	index, err := loadIndex(cfg.KnowledgeBase)
	if err != nil {
		return err
	}

	resumes := make([]analysis.Document, 0, len(args))
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume file %s: %w", path, err)
		}
		resumes = append(resumes, analysis.Document{Name: path, Text: string(text)})
	}

	engine := analysis.NewEngine(index, analysis.Options{
		Mode:        cfg.Mode,
		WindowYears: cfg.RecencyWindowYears,
	})

	batch, err := engine.AnalyzeBatch(ctx, string(jdText), resumes)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJDProfile(batch.JDProfile)
		printer.PrintRankedReports(batch)
		for _, report := range batch.Results {
			printer.PrintScoreBreakdown(report)
		}
	}

	// Optional persistence
	if analyzeSave {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --save")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return err
		}
		if err := database.SaveBatch(ctx, batch); err != nil {
			return err
		}
		if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Saved batch %s\n", batch.ID)
		}
	}

	return writeJSON(cfg.Output, batch)
}

func loadIndex(path string) (*skills.Index, error) {
	if path == "" {
		return skills.DefaultIndex()
	}
	kb, err := skills.LoadKnowledgeBase(path)
	if err != nil {
		return nil, err
	}
	return skills.NewIndex(kb)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
