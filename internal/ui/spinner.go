package ui

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Spinner is the loading indicator. Show and Hide are idempotent.
type Spinner struct {
	out   io.Writer
	label string

	p   *mpb.Progress
	bar *mpb.Bar
}

func NewSpinner(out io.Writer, label string) *Spinner {
	return &Spinner{out: out, label: label}
}

func (s *Spinner) Show() {
	if s.bar != nil {
		return
	}

	s.p = mpb.New(
		mpb.WithOutput(s.out),
		mpb.WithWidth(3),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	s.bar = s.p.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(decor.Name(s.label+" ")),
		mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)),
		mpb.BarRemoveOnComplete(),
	)
}

func (s *Spinner) Hide() {
	if s.bar == nil {
		return
	}

	s.bar.Abort(true)
	s.p.Wait()
	s.bar, s.p = nil, nil
}

func (s *Spinner) Visible() bool {
	return s.bar != nil
}
