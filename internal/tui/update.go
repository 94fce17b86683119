package tui

import (
	"os"

	"stalens/internal/model"
	"stalens/internal/timing"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgReportReady indicates that a report has been loaded and analyzed.
type MsgReportReady struct {
	SourceName string
	Raw        string
	Result     model.AnalysisResult
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case MsgReportReady:
		m.Loading = false
		m.Err = nil
		m.SourceName = msg.SourceName
		m.RawText = msg.Raw
		m.Result = msg.Result
		m.SelectedIdx = 0
		m.DetailsViewport.SetContent(msg.Raw)
		m.DetailsViewport.GotoTop()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if !m.ShowRaw && m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if !m.ShowRaw && m.SelectedIdx < len(m.Result.Issues)-1 {
				m.SelectedIdx++
			}
		case "r":
			m.ShowRaw = !m.ShowRaw
		case "e":
			// Reload with the built-in example
			m.Loading = true
			return m, LoadReportCmd("")
		case "R":
			// Re-read the original source
			m.Loading = true
			return m, LoadReportCmd(m.SourcePath)
		}

		// In raw mode the viewport owns scrolling (j/k/pgup/pgdn are in
		// its default keymap).
		if m.ShowRaw {
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
			return m, cmd
		}
	}

	return m, cmd
}

// LoadReportCmd reads the report (file, stdin via "-", or the built-in
// example when path is empty), analyzes it, and delivers the result.
func LoadReportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var raw string
		var name string

		switch path {
		case "":
			raw = model.SampleReport
			name = "built-in example"
		case "-":
			data, err := os.ReadFile("/dev/stdin")
			if err != nil {
				return MsgError(err)
			}
			raw = string(data)
			name = "stdin"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return MsgError(err)
			}
			raw = string(data)
			name = path
		}

		analyzer := timing.NewAnalyzer()
		return MsgReportReady{
			SourceName: name,
			Raw:        raw,
			Result:     analyzer.Analyze(raw),
		}
	}
}
