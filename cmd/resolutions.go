package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lepinkainen/dupefinder/images"
	"github.com/lepinkainen/dupefinder/types"
	"github.com/lepinkainen/dupefinder/ui"
)

// ResolutionsCmd lists the native size of every image in a directory and the
// shrink target a scan would use by default.
type ResolutionsCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan" type:"path" default:"."`
}

func (cmd *ResolutionsCmd) Run(appCtx *types.AppContext) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("DupeFinder %s", appCtx.VersionOrDefault())))

	session := images.NewSession(cmd.Directory, appCtx.Log())
	if err := session.ScanResolutions(newBarSink(os.Stderr)); err != nil {
		return fmt.Errorf("failed to scan resolutions: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSIZE\tFORMAT\tTAKEN")
	for _, rec := range session.Resolutions {
		taken := "-"
		if !rec.Taken.IsZero() {
			taken = rec.Taken.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Path, rec.Size, rec.Format, taken)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("%d image(s), default shrink target: %dpx", len(session.Resolutions), session.Shrink)))
	return nil
}
