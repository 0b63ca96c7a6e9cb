package ui

import (
	"fmt"
	"io"

	"github.com/ntpeters/base16-template-converter/pkg/converter"
	"github.com/ntpeters/base16-template-converter/pkg/errors"
	"github.com/ntpeters/base16-template-converter/pkg/ui/styles"
)

// Reporter prints conversion outcomes
type Reporter struct {
	out io.Writer
	err io.Writer

	// ShowResidual enables the advisory about unconverted tags.
	ShowResidual bool
	// MaxResidual caps the listed tags; 0 lists all.
	MaxResidual int
}

// NewReporter writes results to out and problems to errOut
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, err: errOut, ShowResidual: true}
}

// Result prints the outcome of one conversion
func (r *Reporter) Result(res *converter.Result) {
	for _, w := range res.Warnings {
		fmt.Fprintln(r.err, styles.Render("Warning", fmt.Sprintf(MsgWarningFormat, w)))
	}

	if res.DryRun {
		fmt.Fprintln(r.out, styles.Render("DryRunBanner",
			fmt.Sprintf(MsgDryRunFormat, res.Source, res.Destination, res.Replacements)))
	} else {
		fmt.Fprintln(r.out, styles.Render("Success",
			fmt.Sprintf(MsgConvertedFormat, res.Source, styles.Render("FilePath", res.Destination), res.Replacements)))
	}
	if res.HeaderStripped {
		fmt.Fprintln(r.out, styles.Render("Indent", styles.Render("Muted", MsgHeaderStripped)))
	}

	if res.Failed {
		fmt.Fprintln(r.err, styles.Render("Error", fmt.Sprintf(MsgStepsFailedFormat, res.Destination)))
		if res.Err != nil {
			fmt.Fprintln(r.err, styles.Render("Indent", res.Err.Error()))
		}
	}

	if r.ShowResidual && !res.Complete() {
		r.residual(res)
	}
}

func (r *Reporter) residual(res *converter.Result) {
	fmt.Fprintln(r.err, styles.Render("Warning",
		fmt.Sprintf(MsgResidualFormat, len(res.Residual), res.Destination)))

	tags := res.Residual
	if r.MaxResidual > 0 && len(tags) > r.MaxResidual {
		tags = tags[:r.MaxResidual]
	}
	for _, tag := range tags {
		loc := styles.Render("Location", fmt.Sprintf("%d:%d", tag.Line, tag.Column))
		fmt.Fprintf(r.err, "%s  %s\n", loc, styles.Render("Tag", tag.Summary()))
	}
	if hidden := len(res.Residual) - len(tags); hidden > 0 {
		fmt.Fprintln(r.err, styles.Render("Indent", styles.Render("Muted", fmt.Sprintf(MsgResidualMoreFormat, hidden))))
	}
}

// Error prints a fatal error and, when present, its hint
func (r *Reporter) Error(err error) {
	fmt.Fprintln(r.err, styles.Render("Error", fmt.Sprintf(MsgErrorFormat, err)))
	if hint, ok := errors.GetErrorDetails(err)["hint"].(string); ok && hint != "" {
		fmt.Fprintln(r.err, styles.Render("Indent", fmt.Sprintf(MsgHintFormat, hint)))
	}
}
