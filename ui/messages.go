package ui

import "github.com/lepinkainen/dupefinder/images"

// TUI message types sent from the scanning goroutine
type PhaseStartedMsg struct {
	Phase images.Phase
	Total int
}

type ProgressMsg struct {
	N      int
	Detail string
}

type GroupFoundMsg struct {
	Group images.DuplicateGroup
}

type PhaseEndedMsg struct {
	Phase images.Phase
}

// ScanDoneMsg is sent once the whole scan has finished, successfully or not
type ScanDoneMsg struct {
	Err error
}

// TUI message types for duplicate selection and export
type ExportCompleteMsg struct {
	Result images.ExportResult
	Err    error
}
