// Package filesystem provides the types.FS implementations: the OS
// filesystem used by the CLI and an afero-backed one used by tests and
// read-only wrappers.
package filesystem
