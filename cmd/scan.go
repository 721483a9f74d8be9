package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/dupefinder/images"
	"github.com/lepinkainen/dupefinder/types"
	"github.com/lepinkainen/dupefinder/ui"
	"github.com/lepinkainen/dupefinder/utils"
)

// ScanCmd finds near-duplicate images in a directory and lets the user pick
// which ones to export.
type ScanCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for duplicate images" type:"path" default:"."`
	Shrink    int    `help:"Compare images shrunk to fit this many pixels (0 = smallest dimension found)" default:"0" env:"DUPEFINDER_SHRINK"`
	ExportDir string `name:"export-dir" help:"Where to export the selection (default: <directory>/better-images)" env:"DUPEFINDER_EXPORT_DIR" type:"path"`
	NoTUI     bool   `name:"no-tui" help:"Disable interactive TUI and just list duplicates"`
}

func (cmd *ScanCmd) Run(appCtx *types.AppContext) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("DupeFinder %s", appCtx.VersionOrDefault())))

	if cmd.NoTUI || !utils.IsInteractive() {
		return cmd.runPlain(appCtx)
	}
	return cmd.runWithTUI(appCtx)
}

// runPlain scans with a progress bar and prints the groups
func (cmd *ScanCmd) runPlain(appCtx *types.AppContext) error {
	fmt.Printf("Scanning %s for duplicates...\n", cmd.Directory)

	session, err := scanSession(cmd.Directory, cmd.Shrink, newBarSink(os.Stderr), appCtx.Log())
	if err != nil {
		return err
	}

	if len(session.Groups) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No duplicates found"))
		return nil
	}

	printGroups(session)
	return nil
}

// runWithTUI shows scan progress in a TUI, then hands the groups to the
// interactive selection screen.
func (cmd *ScanCmd) runWithTUI(appCtx *types.AppContext) error {
	if cmd.Shrink < 0 {
		return fmt.Errorf("invalid --shrink %d: %w", cmd.Shrink, images.ErrInvalidShrink)
	}

	session := images.NewSession(cmd.Directory, appCtx.Log())
	p := tea.NewProgram(ui.NewScanModel(cmd.Directory, appCtx.VersionOrDefault()))

	// The scan itself stays sequential, it only runs off the UI goroutine
	// so the program can repaint.
	go func() {
		sink := ui.ProgramSink{Send: p.Send}
		err := session.ScanResolutions(sink)
		if err == nil {
			err = session.SetShrink(cmd.Shrink)
		}
		if err == nil {
			err = session.FindDuplicates(sink)
		}
		p.Send(ui.ScanDoneMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}

	scan, ok := final.(ui.ScanModel)
	if !ok || scan.Aborted() {
		return nil
	}
	if scan.Err() != nil {
		return fmt.Errorf("failed to find duplicates: %w", scan.Err())
	}

	if len(session.Groups) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No duplicates found"))
		return nil
	}

	// Launch TUI for interactive duplicate selection
	model := ui.NewDuplicatesModel(*session, cmd.ExportDir)
	final, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if dm, ok := final.(ui.DuplicatesModel); ok && dm.LastExport() != nil {
		res := dm.LastExport()
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Exported %d file(s) to %s", len(res.Copied), res.Dir)))
	}
	return nil
}
