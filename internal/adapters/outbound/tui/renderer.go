package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qwickapps/tsfix/internal/domain"
)

// ── warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	fileStyle  = lipgloss.NewStyle().Foreground(fg)
	ruleStyle  = lipgloss.NewStyle().Foreground(accent)
	expStyle   = lipgloss.NewStyle().Foreground(warning).Italic(true)
)

// RenderRunReport renders one rewriter run: a "Fixed:" line per changed
// file, skipped files, and the trailing total.
func RenderRunReport(report *domain.RunReport, dryRun bool) string {
	var b strings.Builder

	prefix := "Fixed:"
	if dryRun {
		prefix = "Would fix:"
	}

	for _, ch := range report.Changed {
		line := fmt.Sprintf("%s %s", passStyle.Render(prefix), fileStyle.Render(ch.Path))
		if len(ch.Rules) > 0 {
			line += "  " + dimStyle.Render(strings.Join(ch.Rules, ", "))
		}
		b.WriteString(line + "\n")
	}

	for _, sk := range report.Skipped {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			failStyle.Render("Skipped:"),
			fileStyle.Render(sk.Path),
			dimStyle.Render(sk.Reason),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total files fixed: %d\n", len(report.Changed)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("(%d files scanned)", report.TotalScanned)) + "\n")

	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString(faintStyle.Render("at commit "+hash) + "\n")
	}

	return b.String()
}

// RenderLintFixReport renders one message-driven fix run.
func RenderLintFixReport(report *domain.LintFixReport) string {
	if report.ErrorsFound == 0 {
		return passStyle.Render("No errors found") + "\n"
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("Found %d errors", report.ErrorsFound)) + "\n")

	for _, ch := range report.Changed {
		b.WriteString(fmt.Sprintf("%s %s\n", passStyle.Render("Fixed:"), fileStyle.Render(ch.Path)))
	}
	for _, sk := range report.Skipped {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			failStyle.Render("Skipped:"),
			fileStyle.Render(sk.Path),
			dimStyle.Render(sk.Reason),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total files fixed: %d\n", len(report.Changed)))
	return b.String()
}

// RenderRules renders the rule table with experimental rules flagged.
func RenderRules(rules []domain.Rule) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Rules") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n")

	for _, r := range rules {
		name := ruleStyle.Render(r.Name())
		if r.Experimental {
			name += "  " + expStyle.Render("experimental, off by default")
		}
		b.WriteString("  " + name + "\n")
		b.WriteString("    " + dimStyle.Render(r.Description) + "\n")
	}

	return b.String()
}

// RenderHistory formats past run summaries for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		count := fmt.Sprintf("%d fixed", e.FilesChanged)
		style := passStyle
		if e.FilesChanged == 0 {
			style = dimStyle
		}

		line := fmt.Sprintf("  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			style.Render(count),
		)
		if len(e.Rules) > 0 {
			line += "  " + faintStyle.Render(strings.Join(e.Rules, ", "))
		}

		b.WriteString(line + "\n")
	}

	return b.String()
}

// DirtyTreeWarning is printed to stderr before rewriting files in a
// worktree with uncommitted changes. No backups are made.
func DirtyTreeWarning() string {
	return warnStyle.Render("warning: working tree has uncommitted changes; files are rewritten in place without backups")
}
