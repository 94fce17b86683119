package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stalens/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	violationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	metStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Loading timing report... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit, e for the built-in example.\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 40 {
		netWidth = 40
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 7
	if boxHeight < 8 {
		boxHeight = 8
	}

	header := titleStyle.Render("stalens") + dimStyle.Render("  "+m.SourceName)

	left := m.renderSummaryAndIssues(leftWidth)
	var right string
	if m.ShowRaw {
		heading := fmt.Sprintf("Raw report (%d lines)", strings.Count(m.RawText, "\n")+1)
		right = normalStyle.Bold(true).Render(heading) + "\n" + m.DetailsViewport.View()
	} else {
		right = m.renderDetail()
	}

	leftBox := panelStyle.Width(leftWidth).Height(boxHeight).Render(left)
	rightBox := panelStyle.Width(rightWidth).Height(boxHeight).Render(right)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	footer := dimStyle.Render("  j/k: select issue | r: raw report | e: example | R: reload | q: quit")

	return header + "\n" + body + "\n" + footer
}

func (m AppModel) renderSummaryAndIssues(width int) string {
	var b strings.Builder
	r := m.Result

	if r.HasViolation {
		b.WriteString(violationStyle.Render(model.IconViolation+" VIOLATED setup check") + "\n")
	} else {
		b.WriteString(metStyle.Render(model.IconMet+" Setup check met") + "\n")
	}

	if slack, ok := r.SlackValue(); ok {
		line := fmt.Sprintf("Slack: %.3f ns", slack)
		if slack < 0 {
			b.WriteString(violationStyle.Render(line) + "\n")
		} else {
			b.WriteString(metStyle.Render(line) + "\n")
		}
	} else {
		b.WriteString(dimStyle.Render("Slack: not found") + "\n")
	}

	b.WriteString(dimStyle.Render("Start: ") + pathStyle.Render(truncate(r.Startpoint, width-8)) + "\n")
	b.WriteString(dimStyle.Render("End:   ") + pathStyle.Render(truncate(r.Endpoint, width-8)) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Depth: %d stages, %d cell families", r.LogicDepth, r.CellTypes)) + "\n")

	if r.DepthAnalysis != "" {
		b.WriteString(adviceStyle.Render(model.IconDepth+" deep path") + "\n")
	}

	b.WriteString("\n" + normalStyle.Bold(true).Render(fmt.Sprintf("Issues (%d)", len(r.Issues))) + "\n")
	if len(r.Issues) == 0 {
		b.WriteString(dimStyle.Render("  none detected") + "\n")
	}
	for i, issue := range r.Issues {
		line := fmt.Sprintf("%s %s", model.IconIssue, issue.Title)
		if i == m.SelectedIdx {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(normalStyle.Render("  "+line) + "\n")
		}
	}

	return b.String()
}

func (m AppModel) renderDetail() string {
	var b strings.Builder
	r := m.Result

	if len(r.Issues) == 0 {
		b.WriteString(dimStyle.Render("No issues to inspect."))
		if r.DepthAnalysis != "" {
			b.WriteString("\n\n" + adviceStyle.Render(r.DepthAnalysis))
		}
		return b.String()
	}

	idx := m.SelectedIdx
	if idx >= len(r.Issues) {
		idx = len(r.Issues) - 1
	}
	issue := r.Issues[idx]

	b.WriteString(normalStyle.Bold(true).Render(issue.Title) + "\n\n")
	b.WriteString(dimStyle.Render("Suggestions:") + "\n")
	for _, s := range issue.Suggestions {
		b.WriteString(adviceStyle.Render(model.IconAdvice+" ") + normalStyle.Render(s) + "\n")
	}

	if r.DepthAnalysis != "" {
		b.WriteString("\n" + adviceStyle.Render(r.DepthAnalysis) + "\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
