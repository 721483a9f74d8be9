package images

// Phase identifies which step of a session is reporting progress
type Phase string

const (
	PhaseResolutions Phase = "Scanning resolutions"
	PhaseMatch       Phase = "Scanning duplicates"
	PhaseExport      Phase = "Exporting"
)

// ProgressSink receives progress notifications from the scanner, matcher and
// exporter. Calls happen on the goroutine running the operation.
type ProgressSink interface {
	Begin(phase Phase, total int)
	Advance(n int, detail string)
	GroupFound(group DuplicateGroup)
	End(phase Phase)
}

// NopSink discards all progress
type NopSink struct{}

func (NopSink) Begin(Phase, int)          {}
func (NopSink) Advance(int, string)       {}
func (NopSink) GroupFound(DuplicateGroup) {}
func (NopSink) End(Phase)                 {}

func sinkOrNop(sink ProgressSink) ProgressSink {
	if sink == nil {
		return NopSink{}
	}
	return sink
}
