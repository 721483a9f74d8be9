package cmd

import (
	"fmt"
	"os"

	"github.com/lepinkainen/dupefinder/images"
	"github.com/lepinkainen/dupefinder/types"
	"github.com/lepinkainen/dupefinder/ui"
)

// ExportCmd scans a directory and exports the largest image of every
// duplicate group without asking.
type ExportCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for duplicate images" type:"path" default:"."`
	Shrink    int    `help:"Compare images shrunk to fit this many pixels (0 = smallest dimension found)" default:"0" env:"DUPEFINDER_SHRINK"`
	To        string `help:"Export destination (default: <directory>/better-images)" env:"DUPEFINDER_EXPORT_DIR" type:"path"`
	DryRun    bool   `help:"Show what would be exported without copying anything"`
}

func (cmd *ExportCmd) Run(appCtx *types.AppContext) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("DupeFinder %s", appCtx.VersionOrDefault())))

	sink := newBarSink(os.Stderr)
	session, err := scanSession(cmd.Directory, cmd.Shrink, sink, appCtx.Log())
	if err != nil {
		return err
	}

	if len(session.Groups) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No duplicates found, nothing to export"))
		return nil
	}

	dst := images.ResolveExportDir(session.Dir, cmd.To)

	if cmd.DryRun {
		fmt.Println(ui.ProcessingStyle.Render("🔍 DRY RUN MODE - No files will be copied"))
		fmt.Printf("Would export %d file(s) to %s:\n", session.Selection.Len(), dst)
		for _, file := range session.Selection.Paths() {
			fmt.Printf("  • %s\n", file)
		}
		return nil
	}

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("📦 Exporting %d file(s) to %s", session.Selection.Len(), dst)))
	res, err := session.Export(cmd.To, sink)
	if err != nil {
		return fmt.Errorf("export failed after %d file(s): %w", len(res.Copied), err)
	}

	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Exported %d file(s) to %s", len(res.Copied), res.Dir)))
	return nil
}
