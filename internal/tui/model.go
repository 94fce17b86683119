package tui

import (
	"stalens/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	SourcePath string // File to load; "" means the built-in example
	SourceName string // What we show in the title bar
	RawText    string
	Result     model.AnalysisResult
	Loading    bool
	Err        error

	// UI State
	SelectedIdx int // Selected issue in the left panel
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowRaw bool // Right panel shows the raw report instead of issue detail

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state. sourcePath may be empty, in which
// case the built-in example report is loaded.
func InitialModel(sourcePath string) AppModel {
	return AppModel{
		SourcePath:  sourcePath,
		Loading:     true,
		SelectedIdx: 0,
	}
}

// Init kicks off the report load.
func (m AppModel) Init() tea.Cmd {
	return LoadReportCmd(m.SourcePath)
}
