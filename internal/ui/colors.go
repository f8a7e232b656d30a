package ui

// ColorPrimary returns the escape code for headings and identifiers.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorDim returns the escape code for secondary text.
func ColorDim() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the escape code for success.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the escape code for warnings and ambiguous cells.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the escape code for errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the escape code clearing all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// Colorize wraps s in code and a reset. With the no-color theme it returns
// s unchanged.
func Colorize(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + ColorReset()
}
