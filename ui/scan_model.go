package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/dupefinder/images"
)

// GroupEntry is a found duplicate group in the live list
type GroupEntry struct {
	Group images.DuplicateGroup
}

func (g GroupEntry) FilterValue() string { return g.Group.Representative() }
func (g GroupEntry) Title() string       { return g.Group.Representative() }
func (g GroupEntry) Description() string {
	others := g.Group.Paths[1:]
	if len(others) == 1 {
		return fmt.Sprintf("≡ %s", others[0])
	}
	return fmt.Sprintf("≡ %s and %d more", others[0], len(others)-1)
}

// ProgramSink forwards scan progress into a running tea.Program
type ProgramSink struct {
	Send func(tea.Msg)
}

func (s ProgramSink) Begin(phase images.Phase, total int) {
	s.Send(PhaseStartedMsg{Phase: phase, Total: total})
}

func (s ProgramSink) Advance(n int, detail string) {
	s.Send(ProgressMsg{N: n, Detail: detail})
}

func (s ProgramSink) GroupFound(group images.DuplicateGroup) {
	s.Send(GroupFoundMsg{Group: group})
}

func (s ProgramSink) End(phase images.Phase) {
	s.Send(PhaseEndedMsg{Phase: phase})
}

// ScanModel shows scan progress and the groups found so far
type ScanModel struct {
	// Scan state
	dir     string
	phase   images.Phase
	total   int
	done    int
	current string
	groups  []images.DuplicateGroup
	err     error

	// UI components
	progress  progress.Model
	groupList list.Model

	// Layout
	width  int
	height int

	// Control state
	finished bool
	quitting bool

	// Version for display
	Version string
}

// NewScanModel creates the progress model for scanning dir
func NewScanModel(dir, version string) ScanModel {
	groupList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	groupList.Title = "Duplicate Groups"
	groupList.SetShowHelp(false)

	return ScanModel{
		dir:       dir,
		progress:  progress.New(progress.WithDefaultGradient()),
		groupList: groupList,
		Version:   version,
	}
}

// Init implements tea.Model
func (m ScanModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(msg.Width-10, 10)
		m.groupList.SetSize(msg.Width-4, msg.Height/2)

	case PhaseStartedMsg:
		m.phase = msg.Phase
		m.total = msg.Total
		m.done = 0
		m.current = ""

	case ProgressMsg:
		m.done += msg.N
		m.current = msg.Detail

	case GroupFoundMsg:
		m.groups = append(m.groups, msg.Group)
		items := make([]list.Item, len(m.groups))
		for i, g := range m.groups {
			items[i] = GroupEntry{Group: g}
		}
		m.groupList.SetItems(items)

	case PhaseEndedMsg:
		m.done = m.total

	case ScanDoneMsg:
		m.err = msg.Err
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

// Percent returns the completion of the current phase between 0 and 1
func (m ScanModel) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return min(float64(m.done)/float64(m.total), 1)
}

// Groups returns the groups reported so far
func (m ScanModel) Groups() []images.DuplicateGroup {
	return m.groups
}

// Err returns the scan error once finished
func (m ScanModel) Err() error {
	return m.err
}

// Aborted reports whether the user quit before the scan finished
func (m ScanModel) Aborted() bool {
	return m.quitting && !m.finished
}

// View implements tea.Model
func (m ScanModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	header := HeaderStyle.Render(fmt.Sprintf("DupeFinder %s", m.Version))
	target := InfoStyle.Render(fmt.Sprintf("Scanning %s", m.dir))

	phase := string(m.phase)
	if phase == "" {
		phase = "Starting"
	}
	progressView := fmt.Sprintf("%s: %s (%d/%d)",
		ProcessingStyle.Render(phase),
		m.progress.ViewAs(m.Percent()),
		m.done,
		m.total)

	current := MutedStyle.Render(m.current)

	sections := []string{
		header,
		target,
		progressView,
		current,
		m.groupList.View(),
		"Controls: [q] Quit",
	}

	return strings.Join(sections, "\n\n")
}
