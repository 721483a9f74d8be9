package cmd

import (
	"fmt"
	"io"

	"github.com/lepinkainen/dupefinder/images"
	"github.com/schollz/progressbar/v3"
)

// barSink renders scan progress as a terminal progress bar
type barSink struct {
	out    io.Writer
	bar    *progressbar.ProgressBar
	groups int
}

func newBarSink(out io.Writer) *barSink {
	return &barSink{out: out}
}

func (s *barSink) Begin(phase images.Phase, total int) {
	s.bar = nil
	if total <= 0 {
		return
	}
	s.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionSetDescription(string(phase)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(0),
	)
}

func (s *barSink) Advance(n int, detail string) {
	if s.bar == nil || n <= 0 {
		return
	}
	_ = s.bar.Add(n)
}

func (s *barSink) GroupFound(images.DuplicateGroup) {
	s.groups++
}

func (s *barSink) End(images.Phase) {
	if s.bar == nil {
		return
	}
	_ = s.bar.Finish()
	fmt.Fprintln(s.out)
	s.bar = nil
}
