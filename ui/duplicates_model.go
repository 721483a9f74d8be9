package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lepinkainen/dupefinder/images"
)

// DuplicatesModel represents the TUI model for choosing which duplicates to export
type DuplicatesModel struct {
	// Data
	session      images.Session
	exportDir    string
	currentGroup int
	currentFile  int

	// UI state
	width  int
	height int

	// Interaction state
	confirmingExport bool
	exporting        bool
	status           string
	lastExport       *images.ExportResult
	showHelp         bool

	// Control state
	quitting bool
}

// NewDuplicatesModel creates a new duplicates TUI model. The session must
// already hold the groups and the default selection.
func NewDuplicatesModel(session images.Session, exportDir string) DuplicatesModel {
	return DuplicatesModel{
		session:   session,
		exportDir: exportDir,
		showHelp:  true,
	}
}

// Session returns the session with the current selection
func (m DuplicatesModel) Session() images.Session {
	return m.session
}

// LastExport returns the result of the latest successful export, if any
func (m DuplicatesModel) LastExport() *images.ExportResult {
	return m.lastExport
}

// Init implements tea.Model
func (m DuplicatesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m DuplicatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmingExport {
			return m.handleConfirmationInput(msg)
		}
		return m.handleNormalInput(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ExportCompleteMsg:
		m.handleExportComplete(msg)
	}

	return m, nil
}

func (m DuplicatesModel) groups() []images.DuplicateGroup {
	return m.session.Groups
}

func (m DuplicatesModel) handleNormalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.groups()) == 0 || m.exporting {
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	group := m.groups()[m.currentGroup]

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "h", "?":
		m.showHelp = !m.showHelp

	case "up", "k":
		if m.currentFile > 0 {
			m.currentFile--
		}

	case "down", "j":
		if m.currentFile < group.Len()-1 {
			m.currentFile++
		}

	case "left", "p":
		if m.currentGroup > 0 {
			m.currentGroup--
			m.currentFile = 0
		}

	case "right", "n":
		if m.currentGroup < len(m.groups())-1 {
			m.currentGroup++
			m.currentFile = 0
		}

	case " ": // spacebar to toggle selection
		m.session = m.session.ToggleSelection(group.Paths[m.currentFile])

	case "a": // select all files in current group
		m.session.Selection = m.session.Selection.With(true, group.Paths...)

	case "c": // clear all selections in current group
		m.session.Selection = m.session.Selection.With(false, group.Paths...)

	case "r": // back to just the representative
		m.session.Selection = m.session.Selection.
			With(false, group.Paths...).
			With(true, group.Representative())

	case "s": // skip current group
		if m.currentGroup < len(m.groups())-1 {
			m.currentGroup++
			m.currentFile = 0
		} else {
			// If this was the last group, quit
			m.quitting = true
			return m, tea.Quit
		}

	case "enter":
		if m.session.Selection.Len() == 0 {
			m.status = "Nothing selected"
			return m, nil
		}
		m.confirmingExport = true
	}

	return m, nil
}

func (m DuplicatesModel) handleConfirmationInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmingExport = false
		m.exporting = true
		m.status = ""
		return m, m.exportCommand()

	case "n", "N", "ctrl+c", "esc":
		m.confirmingExport = false
	}

	return m, nil
}

func (m DuplicatesModel) exportCommand() tea.Cmd {
	selection := m.session.Selection
	dir := m.session.Dir
	dst := m.exportDir
	return func() tea.Msg {
		res, err := images.Export(selection, dir, dst, nil)
		return ExportCompleteMsg{Result: res, Err: err}
	}
}

func (m *DuplicatesModel) handleExportComplete(msg ExportCompleteMsg) {
	m.exporting = false
	if msg.Err != nil {
		m.status = ErrorStyle.Render(fmt.Sprintf("❌ Export failed after %d file(s): %v", len(msg.Result.Copied), msg.Err))
		return
	}
	res := msg.Result
	m.lastExport = &res
	m.status = SuccessStyle.Render(fmt.Sprintf("✅ Exported %d file(s) to %s", len(res.Copied), res.Dir))
}

// View implements tea.Model
func (m DuplicatesModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if len(m.groups()) == 0 {
		return m.renderNoGroups()
	}

	if m.confirmingExport {
		return m.renderConfirmationDialog()
	}

	return m.renderMainView()
}

func (m DuplicatesModel) renderNoGroups() string {
	style := SuccessStyle.MarginTop(2).MarginLeft(2)
	return style.Render("✅ No duplicates found!\n\nPress 'q' to quit.")
}

func (m DuplicatesModel) renderConfirmationDialog() string {
	var content strings.Builder

	selected := m.session.Selection.Paths()
	content.WriteString(HeaderStyle.Render("📦 Confirm Export"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Copy %d file(s) to %s?\n\n",
		len(selected), images.ResolveExportDir(m.session.Dir, m.exportDir)))

	for _, file := range selected {
		content.WriteString(fmt.Sprintf("  • %s\n", file))
	}

	content.WriteString("\n")
	content.WriteString("Press 'y' to confirm, 'n' to cancel")

	return content.String()
}

func (m DuplicatesModel) renderMainView() string {
	var content strings.Builder

	// Header
	header := fmt.Sprintf("DupeFinder - Duplicate Images (Group %d of %d)",
		m.currentGroup+1, len(m.groups()))
	content.WriteString(HeaderStyle.Render(header))
	content.WriteString("\n\n")

	// Group info
	group := m.groups()[m.currentGroup]
	groupInfo := fmt.Sprintf("%d files, shrink %dpx, %d selected in total",
		group.Len(), m.session.Shrink, m.session.Selection.Len())
	content.WriteString(InfoStyle.Render(groupInfo))
	content.WriteString("\n\n")

	// File list
	content.WriteString(m.renderFileList(group))
	content.WriteString("\n")

	if m.exporting {
		content.WriteString(ProcessingStyle.Render("Exporting..."))
		content.WriteString("\n")
	} else if m.status != "" {
		content.WriteString(m.status)
		content.WriteString("\n")
	}

	// Help
	if m.showHelp {
		content.WriteString(m.renderHelp())
	} else {
		content.WriteString("Press 'h' for help")
	}

	return content.String()
}

func (m DuplicatesModel) renderFileList(group images.DuplicateGroup) string {
	var content strings.Builder

	for i, file := range group.Paths {
		var line strings.Builder
		selected := m.session.Selection.Contains(file)

		// Selection indicator
		if selected {
			line.WriteString("[✓] ")
		} else {
			line.WriteString("[ ] ")
		}

		// Highlight current file
		if i == m.currentFile {
			if selected {
				line.WriteString(SuccessStyle.Reverse(true).Render(file))
			} else {
				line.WriteString(lipgloss.NewStyle().Reverse(true).Render(file))
			}
		} else {
			if selected {
				line.WriteString(SuccessStyle.Render(file))
			} else {
				line.WriteString(file)
			}
		}

		line.WriteString(" ")
		line.WriteString(MutedStyle.Render(m.describe(file)))
		if i == 0 {
			line.WriteString(" ")
			line.WriteString(RepresentativeStyle.Render("★"))
		}

		content.WriteString(line.String())
		content.WriteString("\n")
	}

	return content.String()
}

// describe renders native size and capture date of a file
func (m DuplicatesModel) describe(file string) string {
	rec, ok := m.session.Resolutions.Lookup(file)
	if !ok {
		return ""
	}
	if rec.Taken.IsZero() {
		return fmt.Sprintf("(%s)", rec.Size)
	}
	return fmt.Sprintf("(%s, %s)", rec.Size, rec.Taken.Format("2006-01-02 15:04"))
}

func (m DuplicatesModel) renderHelp() string {
	help := []string{
		"",
		"Navigation:",
		"  ↑/↓ or j/k   Navigate files in current group",
		"  ←/→ or p/n   Previous/Next duplicate group",
		"",
		"Selection:",
		"  Space        Toggle file selection",
		"  a            Select all files in group",
		"  c            Clear all selections in group",
		"  r            Keep only the largest file (★) in group",
		"",
		"Actions:",
		"  Enter        Export all selected files from all groups (with confirmation)",
		"  s            Skip current group",
		"  h/?          Toggle this help",
		"  q            Quit",
		"",
	}

	return strings.Join(help, "\n")
}
