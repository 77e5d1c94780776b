package domain

// LineSource provides raw statement text, one entry per line, in document order
type LineSource interface {
	// Lines returns every text line extracted from the statement
	Lines() ([]string, error)
}

// StatementFormat recognizes and parses one bank's statement layout
type StatementFormat interface {
	// Name returns the format identifier used in reports and logs
	Name() string

	// Detect reports whether the full statement text matches this format
	Detect(text string) bool

	// Parse converts statement lines into transactions. Lines that do not
	// match the format's row shape are skipped, never fatal; the second
	// return value is the number of skipped candidate lines.
	Parse(lines []string) ([]Transaction, int, error)
}
