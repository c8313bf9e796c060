package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screener/internal/domain"
	"screener/internal/keywords"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	rankStyles  = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Background(lipgloss.Color("#4CAF50")).Foreground(lipgloss.Color("0")),
		2: lipgloss.NewStyle().Background(lipgloss.Color("#FFC107")).Foreground(lipgloss.Color("0")),
		3: lipgloss.NewStyle().Background(lipgloss.Color("#FF5722")).Foreground(lipgloss.Color("0")),
	}
)

// Table prints a report as a ranked text table.
type Table struct {
	w io.Writer
}

// NewTable creates a presenter writing to w.
func NewTable(w io.Writer) *Table { return &Table{w: w} }

// Present writes keywords, the ranking, totals and skipped documents.
func (t *Table) Present(r *domain.Report) error {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Key skills: ") + keywords.Format(r.Keywords) + "\n\n")

	nameWidth := len("Resume")
	for _, e := range r.Entries {
		if l := lipgloss.Width(e.Name); l > nameWidth {
			nameWidth = l
		}
	}
	fmt.Fprintf(&b, "%-4s  %-*s  %s\n", "Rank", nameWidth, "Resume", "Score")
	for _, e := range r.Entries {
		rank := fmt.Sprintf("%-4d", e.Rank)
		if st, ok := rankStyles[e.Rank]; ok {
			rank = st.Render(rank)
		}
		pad := nameWidth - lipgloss.Width(e.Name)
		fmt.Fprintf(&b, "%s  %s%s  %.4f\n", rank, e.Name, strings.Repeat(" ", pad), e.Score)
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total resumes: %d  Average score: %.2f", len(r.Entries)+len(r.Skipped), r.AverageScore)))
	b.WriteString("\n")
	for _, s := range r.Skipped {
		b.WriteString(warnStyle.Render("skipped: "+s.Error()) + "\n")
	}
	if r.TopName != "" {
		b.WriteString("\n" + headerStyle.Render("Top candidate: "+r.TopName) + "\n")
		if r.TopSummary != "" {
			b.WriteString(mutedStyle.Render("Summary: "+r.TopSummary) + "\n")
		}
		b.WriteString(r.TopPreview + "\n")
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}
