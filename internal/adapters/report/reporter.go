// Package report renders resolution failures as remediation-oriented reports.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/ui/output"
	"github.com/anvil-build/anvil/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Reporter formats ResolutionFailure values for human consumption.
// Completeness is the contract: every attempted candidate appears in the
// output with its full list of missing requirements.
type Reporter struct {
	out *termenv.Output
}

// NewReporter creates a Reporter writing to w. Color output honors the
// terminal profile and NO_COLOR.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: output.New(w)}
}

// Render writes the failure report.
func (r *Reporter) Render(f *domain.ResolutionFailure) error {
	var b strings.Builder

	header := fmt.Sprintf("%s %s for %s", style.Cross, f.Kind.Error(), f.Target)
	b.WriteString(r.styled(header, style.Red) + "\n")

	if len(f.Attempts) > 0 {
		b.WriteString("\nAttempted candidates:\n")
		for i, attempt := range f.Attempts {
			c := attempt.Candidate
			line := fmt.Sprintf("  %d. %s (%s: %s)", i+1, c.Root, c.Source, c.Origin)
			b.WriteString(line + "\n")

			for _, missing := range attempt.Result.Missing {
				b.WriteString(r.styled(fmt.Sprintf("     %s %s", style.Arrow, missing), style.Slate) + "\n")
			}
			if attempt.Result.Valid {
				b.WriteString(r.styled(fmt.Sprintf("     %s all requirements met", style.Check), style.Green) + "\n")
			}
		}
	}

	if len(f.Remediation) > 0 {
		b.WriteString("\nRemediation:\n")
		for i, step := range f.Remediation {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	_, err := r.out.WriteString(b.String())
	return err
}

func (r *Reporter) styled(s string, color lipgloss.Color) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}
