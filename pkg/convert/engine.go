// Package convert rewrites legacy ERB theme templates into mustache
// templates.
//
// The Engine applies every rule from the patterns package, in order, to a
// Document. After each rule that changed the document the optional
// StepSink is given the new text so callers can persist the conversion
// step by step. Sink failures do not stop the run; they are collected and
// reported in the Result.
package convert

import (
	stderrors "errors"

	"github.com/ntpeters/base16-template-converter/pkg/errors"
	"github.com/ntpeters/base16-template-converter/pkg/logging"
	"github.com/ntpeters/base16-template-converter/pkg/patterns"
)

// Step describes one applied rule.
type Step struct {
	// Index is 1-based.
	Index    int
	Total    int
	Pattern  patterns.Pattern
	Replaced int
}

// StepSink receives the document after every step that changed it.
type StepSink interface {
	Persist(step Step, text string) error
}

// SinkFunc adapts a function to StepSink.
type SinkFunc func(step Step, text string) error

func (f SinkFunc) Persist(step Step, text string) error {
	return f(step, text)
}

// Result summarises an engine run.
type Result struct {
	HeaderStripped bool
	Steps          int
	ChangedSteps   int
	Replacements   int

	// Failed is set when at least one step could not be persisted.
	Failed bool
	// Err joins every step failure.
	Err error
}

// Engine drives the substitution of all known patterns.
type Engine struct {
	Sink StepSink
	// Progress, when set, is called after every step, changed or not.
	Progress func(step Step)
	// Patterns overrides the rule set. Defaults to patterns.All().
	Patterns []patterns.Pattern
}

// NewEngine returns an engine persisting through sink. A nil sink keeps
// the conversion in memory.
func NewEngine(sink StepSink) *Engine {
	return &Engine{Sink: sink}
}

// Run applies every pattern to doc.
func (e *Engine) Run(doc *Document) Result {
	logger := logging.GetLogger("convert.engine")

	rules := e.Patterns
	if rules == nil {
		rules = patterns.All()
	}

	var (
		res  Result
		errs []error
	)
	for i, p := range rules {
		step := Step{Index: i + 1, Total: len(rules), Pattern: p}
		step.Replaced = doc.Apply(p)
		res.Steps++

		if step.Replaced > 0 {
			res.ChangedSteps++
			res.Replacements += step.Replaced

			logger.Trace().
				Int("step", step.Index).
				Str("pattern", p.Label).
				Int("replaced", step.Replaced).
				Msg("Substituted legacy tag")

			if e.Sink != nil {
				if err := e.Sink.Persist(step, doc.Text()); err != nil {
					logger.Error().Err(err).Str("pattern", p.Label).Msg("Failed to persist step")
					errs = append(errs, errors.Wrapf(err, errors.ErrSubstitution,
						"step %d/%d (%s)", step.Index, step.Total, p.Label))
				}
			}
		}

		if e.Progress != nil {
			e.Progress(step)
		}
	}

	if len(errs) > 0 {
		res.Failed = true
		res.Err = stderrors.Join(errs...)
	}

	logger.Debug().
		Int("steps", res.Steps).
		Int("changed", res.ChangedSteps).
		Int("replacements", res.Replacements).
		Bool("failed", res.Failed).
		Msg("Substitution pass completed")

	return res
}

// Convert strips the header from text and runs the full substitution pass
// in memory.
func Convert(text string) (string, Result) {
	doc := NewDocument(text)
	stripped := doc.StripHeader()
	res := NewEngine(nil).Run(doc)
	res.HeaderStripped = stripped
	return doc.Text(), res
}
