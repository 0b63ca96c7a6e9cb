package ui

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/ntpeters/base16-template-converter/pkg/convert"
)

// Progress shows a progress bar over the substitution steps
type Progress struct {
	title  string
	writer io.Writer
	bar    *pterm.ProgressbarPrinter
}

// NewProgress creates a progress bar writing to w
func NewProgress(w io.Writer, title string) *Progress {
	return &Progress{title: title, writer: w}
}

// Step advances the bar; it starts the bar on the first step. Use it as
// converter.Options.Progress.
func (p *Progress) Step(step convert.Step) {
	if p.bar == nil {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(step.Total).
			WithTitle(p.title).
			WithWriter(p.writer).
			WithRemoveWhenDone(true).
			Start()
		if err != nil {
			return
		}
		p.bar = bar
	}
	p.bar.UpdateTitle(p.title + " " + step.Pattern.Label)
	p.bar.Increment()
}

// Stop finishes the bar if it was started
func (p *Progress) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}
