// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJDProfile outputs a human-readable summary of the summarized job description.
func (p *Printer) PrintJDProfile(profile *types.JDProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.MinYearsExperience != nil {
		sb.WriteString(fmt.Sprintf("Min experience: %.1f years\n", *profile.MinYearsExperience))
		sb.WriteString("\n")
	}

	if len(profile.MustHaveSkills) > 0 {
		sb.WriteString("Must-have skills:\n")
		count := min(len(profile.MustHaveSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.MustHaveSkills[i]))
		}
		if len(profile.MustHaveSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.MustHaveSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.NiceToHaveSkills) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(profile.NiceToHaveSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.NiceToHaveSkills[i]))
		}
		if len(profile.NiceToHaveSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.NiceToHaveSkills)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.RoleTitles) > 0 {
		titles := strings.Join(profile.RoleTitles, ", ")
		if len(titles) > 45 {
			titles = titles[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Roles: %s\n", titles))
	}

	p.printBox("JD REQUIREMENTS PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedReports outputs the ranked results with scores and matched skills.
func (p *Printer) PrintRankedReports(batch *types.BatchReport) {
	if batch == nil || len(batch.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes ranked: %d\n\n", len(batch.Results)))

	count := min(len(batch.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		report := batch.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", report.Rank, report.Filename))
		if report.Error != "" {
			msg := report.Error
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Failed: %s\n", msg))
			continue
		}
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", report.FinalScore))
		if report.Details != nil && len(report.Details.MatchedSkills) > 0 {
			skills := strings.Join(report.Details.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(batch.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(batch.Results)-maxItemsToShow))
	}

	p.printBox("RANKED RESUMES", sb.String())
}

// PrintScoreBreakdown outputs the per-component score breakdown for one resume.
func (p *Printer) PrintScoreBreakdown(report *types.Report) {
	if report == nil || report.Details == nil || report.Details.ScoreBreakdown == nil {
		return
	}
	breakdown := report.Details.ScoreBreakdown

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Core skills:     %.2f\n", breakdown.SkillComponent))
	sb.WriteString(fmt.Sprintf("Domain:          %.2f\n", breakdown.DomainComponent))
	sb.WriteString(fmt.Sprintf("Role:            %.2f\n", breakdown.RoleComponent))
	sb.WriteString(fmt.Sprintf("Experience:      %.2f\n", breakdown.ExperienceComponent))
	sb.WriteString(fmt.Sprintf("Bonus/penalty:   %+.2f\n", breakdown.BonusComponent))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final score:     %.2f\n", breakdown.Overall))

	if len(breakdown.Penalties) > 0 {
		sb.WriteString("\nPenalties:\n")
		count := min(len(breakdown.Penalties), 3)
		for i := 0; i < count; i++ {
			msg := breakdown.Penalties[i]
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
		}
		if len(breakdown.Penalties) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(breakdown.Penalties)-3))
		}
	}

	p.printBox(fmt.Sprintf("SCORE BREAKDOWN: %s", report.Filename), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs detected employment gaps, or a confirmation box when none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(gaps []types.EmploymentGap) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO EMPLOYMENT GAPS DETECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(gaps)))

	for i, gap := range gaps {
		sb.WriteString(fmt.Sprintf("⚠ %d months\n", gap.Months))
		sb.WriteString(fmt.Sprintf("  %s to %s\n", gap.Start, gap.End))
		if i < len(gaps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EMPLOYMENT GAPS", sb.String())
}
