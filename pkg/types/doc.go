// Package types defines the interfaces shared between the converter
// packages and their filesystem implementations.
package types
