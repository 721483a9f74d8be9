package images

import (
	"log"
	"sort"

	"github.com/google/uuid"
)

// Selection is the set of paths chosen for export. The zero value is empty.
// Values are never modified in place; Toggle returns a new Selection.
type Selection struct {
	paths map[string]struct{}
}

// NewSelection builds a selection from paths
func NewSelection(paths ...string) Selection {
	s := Selection{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		s.paths[p] = struct{}{}
	}
	return s
}

// Contains reports whether path is selected
func (s Selection) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Len returns the number of selected paths
func (s Selection) Len() int {
	return len(s.paths)
}

// Paths returns the selected paths in sorted order
func (s Selection) Paths() []string {
	paths := make([]string, 0, len(s.paths))
	for p := range s.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Toggle returns a copy of s with path added or removed
func (s Selection) Toggle(path string) Selection {
	next := Selection{paths: make(map[string]struct{}, len(s.paths)+1)}
	for p := range s.paths {
		next.paths[p] = struct{}{}
	}
	if _, ok := next.paths[path]; ok {
		delete(next.paths, path)
	} else {
		next.paths[path] = struct{}{}
	}
	return next
}

// With returns a copy of s where every path is set to selected
func (s Selection) With(selected bool, paths ...string) Selection {
	next := s
	for _, p := range paths {
		if next.Contains(p) != selected {
			next = next.Toggle(p)
		}
	}
	return next
}

// Session holds the state of one scan: the records found, the shrink target,
// the duplicate groups and the export selection. Each new scan starts a new
// session; the caller owns it and passes it along.
type Session struct {
	ID          string
	Dir         string
	Resolutions Resolutions
	Shrink      int
	Groups      []DuplicateGroup
	Selection   Selection

	Logger *log.Logger
}

// NewSession starts an empty session for dir
func NewSession(dir string, logger *log.Logger) *Session {
	return &Session{
		ID:     uuid.New().String(),
		Dir:    dir,
		Logger: logger,
	}
}

func (s *Session) logf(format string, v ...any) {
	if s.Logger == nil {
		return
	}
	s.Logger.Printf("[%s] "+format, append([]any{s.ID}, v...)...)
}

// ScanResolutions scans the session directory and sets the default shrink
// target. On error the session is left as it was.
func (s *Session) ScanResolutions(sink ProgressSink) error {
	records, err := scanResolutions(s.Dir, sink, s.logf)
	if err != nil {
		s.logf("resolution scan failed: %v", err)
		return err
	}

	shrink, err := records.MinDimension()
	if err != nil {
		s.logf("resolution scan of %s found no images", s.Dir)
		return err
	}

	s.Resolutions = records
	s.Shrink = shrink
	s.Groups = nil
	s.Selection = Selection{}
	s.logf("found %d images in %s, default shrink %d", len(records), s.Dir, shrink)
	return nil
}

// SetShrink overrides the shrink target. Zero restores the computed default.
func (s *Session) SetShrink(shrink int) error {
	if shrink < 0 {
		return ErrInvalidShrink
	}
	if shrink == 0 {
		def, err := s.Resolutions.MinDimension()
		if err != nil {
			return err
		}
		shrink = def
	}
	s.Shrink = shrink
	return nil
}

// FindDuplicates runs the matcher over the scanned records and pre-selects
// the representative of every group.
func (s *Session) FindDuplicates(sink ProgressSink) error {
	if s.Shrink == 0 {
		if err := s.SetShrink(0); err != nil {
			return err
		}
	}

	s.logf("matching %d images at shrink %d", len(s.Resolutions), s.Shrink)
	groups, err := FindDuplicates(s.Resolutions.Paths(), s.Resolutions.Sizes(), s.Shrink, DirOpener{Dir: s.Dir}, sink)
	if err != nil {
		s.logf("duplicate scan failed: %v", err)
		return err
	}

	representatives := make([]string, len(groups))
	for i, g := range groups {
		representatives[i] = g.Representative()
	}

	s.Groups = groups
	s.Selection = NewSelection(representatives...)
	s.logf("found %d groups with %d images", len(groups), CountMembers(groups))
	return nil
}

// ToggleSelection returns a copy of the session with path toggled in the
// selection. The receiver is not modified.
func (s Session) ToggleSelection(path string) Session {
	s.Selection = s.Selection.Toggle(path)
	return s
}

// Export copies the selected files into dst
func (s *Session) Export(dst string, sink ProgressSink) (ExportResult, error) {
	res, err := Export(s.Selection, s.Dir, dst, sink)
	if err != nil {
		s.logf("export failed after %d files: %v", len(res.Copied), err)
		return res, err
	}
	s.logf("exported %d files to %s", len(res.Copied), res.Dir)
	return res, nil
}
