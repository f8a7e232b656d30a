// Package ui provides theme and color support for the CLI and the result
// browser. It respects -no-color and the NO_COLOR environment variable.
package ui
