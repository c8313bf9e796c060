package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"screener/internal/domain"
	"screener/internal/export"
	"screener/internal/keywords"
	"screener/internal/service"
)

// SaveFunc writes a ranking to path.
type SaveFunc func(path string, entries []domain.RankedEntry) error

// Model is the Bubble Tea model for browsing a screening report.
type Model struct {
	report       *domain.Report
	input        textinput.Model
	viewport     viewport.Model
	save         SaveFunc
	exportPath   string
	previewChars int
	status       string
	cursor       int
	exporting    bool
	ready        bool
}

// New creates a new TUI model instance.
func New(report *domain.Report, exportPath string, previewChars int) Model {
	ti := textinput.New()
	ti.Prompt = "export to> "
	ti.Placeholder = "path/to/results.csv"
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := fmt.Sprintf("%d ranked, %d skipped. up/down to browse, e to export, q to quit.", len(report.Entries), len(report.Skipped))
	return Model{
		report:       report,
		input:        ti,
		viewport:     vp,
		save:         export.SaveCSV,
		exportPath:   exportPath,
		previewChars: previewChars,
		status:       status,
	}
}

// WithSaver replaces the CSV writer used on export.
func (m Model) WithSaver(save SaveFunc) Model {
	m.save = save
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and input boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + keywords
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.exporting {
			return m.updateExport(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "e":
			m.exporting = true
			m.input.SetValue(m.exportPath)
			m.input.CursorEnd()
			return m, m.input.Focus()
		case "down":
			if len(m.report.Entries) > 0 {
				m.cursor = (m.cursor + 1) % len(m.report.Entries)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "up":
			if len(m.report.Entries) > 0 {
				m.cursor = (m.cursor - 1 + len(m.report.Entries)) % len(m.report.Entries)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateExport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exporting = false
		m.input.Blur()
		m.status = "Export cancelled."
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.status = "Export path is empty."
			return m, nil
		}
		if err := m.save(path, m.report.Entries); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Exported %d rows to %s", len(m.report.Entries), path)
			m.exportPath = path
		}
		m.exporting = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the selected candidate.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Resume Screening")
	kw := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("Key skills: " + keywords.Format(m.report.Keywords))
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	out := header + "\n" + kw + "\n" + results + "\n"
	if m.exporting {
		out += inputBoxStyle.Render(m.input.View()) + "\n"
	}
	return out + status
}

func (m Model) renderContent() string {
	entries := m.report.Entries
	if len(entries) == 0 {
		return "No resumes ranked."
	}
	var b strings.Builder
	for i, e := range entries {
		line := fmt.Sprintf("%3d. %-40s %.4f", e.Rank, e.Name, e.Score)
		if i == m.cursor {
			line = highlightStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	sel := entries[m.cursor]
	fmt.Fprintf(&b, "\n%s\n\n", lipgloss.NewStyle().Bold(true).Render("Preview: "+sel.Name))
	b.WriteString(service.Preview(sel.Text, m.previewChars))
	return b.String()
}

// Cursor returns the index of the selected entry.
func (m Model) Cursor() int { return m.cursor }

// Status returns the current status line.
func (m Model) Status() string { return m.status }

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
