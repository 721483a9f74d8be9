package cmd

import (
	"fmt"
	"log"

	"github.com/lepinkainen/dupefinder/images"
	"github.com/lepinkainen/dupefinder/ui"
	"github.com/lepinkainen/dupefinder/utils"
)

// scanSession runs the resolution scan and the duplicate matcher on dir.
// A positive shrink overrides the computed default.
func scanSession(dir string, shrink int, sink images.ProgressSink, logger *log.Logger) (*images.Session, error) {
	if shrink < 0 {
		return nil, fmt.Errorf("invalid --shrink %d: %w", shrink, images.ErrInvalidShrink)
	}

	if utils.IsNetworkPath(dir) {
		fmt.Printf("⚠️  %s looks like a network drive, scanning may be slow\n", dir)
	}

	session := images.NewSession(dir, logger)
	if err := session.ScanResolutions(sink); err != nil {
		return nil, fmt.Errorf("failed to scan resolutions: %w", err)
	}

	if err := session.SetShrink(shrink); err != nil {
		return nil, fmt.Errorf("failed to set shrink target: %w", err)
	}

	if err := session.FindDuplicates(sink); err != nil {
		return nil, fmt.Errorf("failed to find duplicates: %w", err)
	}

	return session, nil
}

// printGroups lists the groups with the representative marked
func printGroups(session *images.Session) {
	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d group(s) of duplicates (shrink %dpx):", len(session.Groups), session.Shrink)))
	for i, group := range session.Groups {
		fmt.Printf("\n🔸 Group %d (%d files):\n", i+1, group.Len())
		for _, file := range group.Paths {
			marker := " "
			if session.Selection.Contains(file) {
				marker = "★"
			}
			size := ""
			if rec, ok := session.Resolutions.Lookup(file); ok {
				size = rec.Size.String()
			}
			fmt.Printf("  %s %s %s\n", marker, file, ui.MutedStyle.Render(size))
		}
	}
}
