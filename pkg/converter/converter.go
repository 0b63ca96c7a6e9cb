// Package converter is the file-level shell around the conversion engine.
//
// It checks the source and destination, copies the legacy template to its
// new name, converts the copy step by step and scans the result for legacy
// tags that were not recognised.
package converter

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ntpeters/base16-template-converter/pkg/convert"
	"github.com/ntpeters/base16-template-converter/pkg/errors"
	"github.com/ntpeters/base16-template-converter/pkg/logging"
	"github.com/ntpeters/base16-template-converter/pkg/residual"
	"github.com/ntpeters/base16-template-converter/pkg/types"
)

// Options configure a single conversion
type Options struct {
	Source string
	// DryRun converts in memory without touching the destination.
	DryRun bool

	SourceExt   string
	TargetExt   string
	StripHeader bool
	FileMode    fs.FileMode

	// Progress is forwarded to the engine.
	Progress func(step convert.Step)
}

// DefaultOptions returns options matching the embedded configuration
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		SourceExt:   ".erb",
		TargetExt:   ".mustache",
		StripHeader: true,
		FileMode:    0644,
	}
}

// Result describes a finished conversion
type Result struct {
	Source      string
	Destination string
	DryRun      bool

	// Output is the converted text.
	Output   string
	Warnings []string

	HeaderStripped bool
	Steps          int
	Replacements   int

	// Residual lists legacy tags left in Output.
	Residual []residual.Tag

	// Failed is set when a conversion step could not be written. Err
	// holds every such failure.
	Failed bool
	Err    error
}

// Complete reports whether no legacy tags remain
func (r *Result) Complete() bool {
	return len(r.Residual) == 0
}

// Converter converts legacy templates on a filesystem
type Converter struct {
	fs types.FS
}

// New creates a converter working on fsys
func New(fsys types.FS) *Converter {
	return &Converter{fs: fsys}
}

// DestinationPath replaces the extension of source with ext
func DestinationPath(source, ext string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ext
}

// Convert runs one conversion. Errors that prevent the conversion from
// starting are returned; failures while writing individual steps are
// reported through Result.Failed so the user still gets the most complete
// output possible.
func (c *Converter) Convert(opts Options) (*Result, error) {
	logger := logging.GetLogger("converter")
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	info, err := c.fs.Stat(opts.Source)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "source %s does not exist", opts.Source).
				WithDetail("path", opts.Source)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", opts.Source)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "source %s is a directory", opts.Source)
	}

	res := &Result{
		Source:      opts.Source,
		Destination: DestinationPath(opts.Source, opts.TargetExt),
		DryRun:      opts.DryRun,
	}

	if ext := filepath.Ext(opts.Source); opts.SourceExt != "" && ext != opts.SourceExt {
		res.Warnings = append(res.Warnings, UnrecognizedExtensionWarning(opts.Source, opts.SourceExt))
		logger.Warn().Str("source", opts.Source).Str("extension", ext).Msg("Unexpected source extension")
	}

	if !opts.DryRun {
		if err := c.checkDestination(res.Destination); err != nil {
			return nil, err
		}
	}

	data, err := c.fs.ReadFile(opts.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", opts.Source)
	}

	mode := opts.FileMode
	if mode == 0 {
		mode = 0644
	}

	var sink convert.StepSink
	if !opts.DryRun {
		if err := c.fs.WriteFile(res.Destination, data, mode); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileCreate, "cannot copy %s to %s", opts.Source, res.Destination).
				WithDetail("path", res.Destination)
		}
		sink = &fileSink{fs: c.fs, path: res.Destination, mode: mode}
	}

	doc := convert.NewDocument(string(data))

	var stepErrs []error
	if opts.StripHeader && doc.StripHeader() {
		res.HeaderStripped = true
		logger.Debug().Str("destination", res.Destination).Msg("Stripped legacy header")
		if sink != nil {
			if err := sink.Persist(convert.Step{}, doc.Text()); err != nil {
				stepErrs = append(stepErrs, errors.Wrap(err, errors.ErrSubstitution, "header removal"))
			}
		}
	}

	engine := convert.NewEngine(sink)
	engine.Progress = opts.Progress
	run := engine.Run(doc)

	res.Steps = run.Steps
	res.Replacements = run.Replacements
	if run.Err != nil {
		stepErrs = append(stepErrs, run.Err)
	}
	if len(stepErrs) > 0 {
		res.Failed = true
		res.Err = stderrors.Join(stepErrs...)
	}

	res.Output = doc.Text()
	res.Residual = residual.Scan(res.Output)

	logger.Info().
		Str("source", res.Source).
		Str("destination", res.Destination).
		Bool("dryRun", res.DryRun).
		Int("replacements", res.Replacements).
		Int("residual", len(res.Residual)).
		Bool("failed", res.Failed).
		Msg("Conversion finished")

	return res, nil
}

func (c *Converter) checkDestination(path string) error {
	_, err := c.fs.Stat(path)
	switch {
	case err == nil:
		return errors.Newf(errors.ErrDestinationExists, "destination %s already exists", path).
			WithDetail("path", path).
			WithDetail("hint", "remove or rename it and run the conversion again")
	case stderrors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path)
	}
}

// fileSink rewrites the destination after every conversion step
type fileSink struct {
	fs   types.FS
	path string
	mode fs.FileMode
}

func (s *fileSink) Persist(step convert.Step, text string) error {
	if err := s.fs.WriteFile(s.path, []byte(text), s.mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", s.path)
	}
	return nil
}

// UnrecognizedExtensionWarning is the advisory given for a source without
// the legacy extension
func UnrecognizedExtensionWarning(source, want string) string {
	return "unrecognized extension on " + source + " (expected " + want + "), converting anyway"
}
