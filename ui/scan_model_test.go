package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/dupefinder/images"
)

func updateScan(t *testing.T, m ScanModel, msg tea.Msg) (ScanModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ScanModel)
	if !ok {
		t.Fatalf("Expected ScanModel, got %T", next)
	}
	return model, cmd
}

func TestScanModel_Progress(t *testing.T) {
	model := NewScanModel("photos", "test")

	model, _ = updateScan(t, model, PhaseStartedMsg{Phase: images.PhaseMatch, Total: 10})
	if model.Percent() != 0 {
		t.Errorf("Expected 0%% at start, got %f", model.Percent())
	}

	model, _ = updateScan(t, model, ProgressMsg{N: 4, Detail: "a.png"})
	if model.Percent() != 0.4 {
		t.Errorf("Expected 40%%, got %f", model.Percent())
	}
	if !strings.Contains(model.View(), "a.png") {
		t.Error("Expected current file in view")
	}

	model, _ = updateScan(t, model, GroupFoundMsg{Group: images.DuplicateGroup{Paths: []string{"a.png", "b.png"}}})
	if len(model.Groups()) != 1 {
		t.Errorf("Expected 1 group, got %d", len(model.Groups()))
	}

	model, _ = updateScan(t, model, PhaseEndedMsg{Phase: images.PhaseMatch})
	if model.Percent() != 1 {
		t.Errorf("Expected 100%% after phase end, got %f", model.Percent())
	}
}

func TestScanModel_Done(t *testing.T) {
	model := NewScanModel("photos", "test")

	scanErr := errors.New("boom")
	model, cmd := updateScan(t, model, ScanDoneMsg{Err: scanErr})
	if cmd == nil {
		t.Error("Expected quit command when scan is done")
	}
	if !errors.Is(model.Err(), scanErr) {
		t.Errorf("Expected scan error to be kept, got %v", model.Err())
	}
	if model.Aborted() {
		t.Error("Finished scan must not count as aborted")
	}
}

func TestScanModel_Quit(t *testing.T) {
	model := NewScanModel("photos", "test")

	model, cmd := updateScan(t, model, keyRunes("q"))
	if cmd == nil {
		t.Error("Expected quit command")
	}
	if !model.Aborted() {
		t.Error("Expected quitting before completion to count as aborted")
	}
}

func TestProgramSink(t *testing.T) {
	var got []tea.Msg
	sink := ProgramSink{Send: func(msg tea.Msg) { got = append(got, msg) }}

	var _ images.ProgressSink = sink

	group := images.DuplicateGroup{Paths: []string{"a", "b"}}
	sink.Begin(images.PhaseResolutions, 3)
	sink.Advance(1, "a")
	sink.GroupFound(group)
	sink.End(images.PhaseResolutions)

	if len(got) != 4 {
		t.Fatalf("Expected 4 messages, got %d", len(got))
	}
	if msg, ok := got[0].(PhaseStartedMsg); !ok || msg.Total != 3 {
		t.Errorf("Expected PhaseStartedMsg with total 3, got %#v", got[0])
	}
	if msg, ok := got[1].(ProgressMsg); !ok || msg.Detail != "a" {
		t.Errorf("Expected ProgressMsg for a, got %#v", got[1])
	}
	if _, ok := got[2].(GroupFoundMsg); !ok {
		t.Errorf("Expected GroupFoundMsg, got %#v", got[2])
	}
	if _, ok := got[3].(PhaseEndedMsg); !ok {
		t.Errorf("Expected PhaseEndedMsg, got %#v", got[3])
	}
}

func TestGroupEntry(t *testing.T) {
	pair := GroupEntry{Group: images.DuplicateGroup{Paths: []string{"a.png", "b.png"}}}
	if pair.Title() != "a.png" {
		t.Errorf("Expected title a.png, got %q", pair.Title())
	}
	if !strings.Contains(pair.Description(), "b.png") {
		t.Errorf("Expected description to mention b.png, got %q", pair.Description())
	}

	many := GroupEntry{Group: images.DuplicateGroup{Paths: []string{"a", "b", "c", "d"}}}
	if !strings.Contains(many.Description(), "and 2 more") {
		t.Errorf("Expected description to count the rest, got %q", many.Description())
	}
}
