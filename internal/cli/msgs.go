package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Convert legacy ERB base16 templates to mustache"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgConfigShort     = "Print the effective configuration"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Convert in memory without writing the destination"
	MsgFlagStdout   = "Print the converted text instead of writing a file (implies --dry-run)"
	MsgFlagConfig   = "Read settings from this TOML file"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagNoHeader = "Keep the leading legacy header block"
	MsgFlagProgress = "Show a progress bar while converting"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective settings"

	// Status messages
	MsgVersionFormat     = "base16-template-converter version %s\n  commit: %s\n  built:  %s\n"
	MsgProgressTitle     = "Converting"
	MsgFailedSummary     = "%d of %d conversion(s) failed"
	MsgConfigPathsHeader = "# Configuration files, in load order:\n#   %s\n#   %s\n\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrColorMode  = "invalid --color value: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
