package ui

const (
	MsgConvertedFormat    = "✓ Converted %s → %s (%d replacements)"
	MsgDryRunFormat       = "Dry run: %s would be written to %s (%d replacements)"
	MsgHeaderStripped     = "removed legacy header block"
	MsgWarningFormat      = "⚠ %s"
	MsgStepsFailedFormat  = "✗ Some conversion steps for %s could not be written"
	MsgResidualFormat     = "%d legacy tag(s) remain in %s and must be converted by hand:"
	MsgResidualMoreFormat = "… and %d more"
	MsgErrorFormat        = "Error: %v"
	MsgHintFormat         = "Hint: %s"
)
