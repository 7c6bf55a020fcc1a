package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/observability"
)

var summarizeCommand = &cobra.Command{
	Use:   "summarize-jd",
	Short: "Summarize a job description into a requirements profile",
	Long:  "Extracts must-have skills, nice-to-have skills, domain keywords, role titles, and the minimum years of experience from a job description and prints the profile as JSON.",
	RunE:  runSummarizeCmd,
}

var (
	summarizeJD            string
	summarizeKnowledgeBase string
	summarizeOutput        string
	summarizeVerbose       bool
)

func init() {
	summarizeCommand.Flags().StringVarP(&summarizeJD, "jd", "j", "", "Path to job description text file")
	summarizeCommand.Flags().StringVarP(&summarizeKnowledgeBase, "knowledge-base", "k", "", "Path to skill knowledge base JSON (defaults to the built-in knowledge base)")
	summarizeCommand.Flags().StringVarP(&summarizeOutput, "output", "o", "", "Path to write the profile JSON (defaults to stdout)")
	summarizeCommand.Flags().BoolVarP(&summarizeVerbose, "verbose", "v", false, "Print a formatted profile summary")

	_ = summarizeCommand.MarkFlagRequired("jd")

	rootCmd.AddCommand(summarizeCommand)
}

func runSummarizeCmd(_ *cobra.Command, _ []string) error {
	jdText, err := os.ReadFile(summarizeJD)
	if err != nil {
		return fmt.Errorf("failed to read jd file %s: %w", summarizeJD, err)
	}

	index, err := loadIndex(summarizeKnowledgeBase)
	if err != nil {
		return err
	}

	engine := analysis.NewEngine(index, analysis.Options{})
	profile, err := engine.SummarizeJD(string(jdText))
	if err != nil {
		return fmt.Errorf("failed to summarize jd: %w", err)
	}

	if summarizeVerbose {
		observability.NewPrinter(os.Stdout).PrintJDProfile(profile)
	}

	return writeJSON(summarizeOutput, profile)
}
