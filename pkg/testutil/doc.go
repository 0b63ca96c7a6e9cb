// Package testutil provides helpers shared by the converter's tests.
//
// Key components:
//   - NewTestFS: in-memory afero-backed types.FS for unit tests
//   - CreateFile / ReadFile / AssertFileContent: real-disk helpers for
//     end-to-end CLI tests
//   - IsolateXDG: points the XDG base directories at a temp dir so user
//     config files and log files never leak into a test
//   - Template builders for legacy tag text
package testutil
