package extract

import (
	"fmt"
	"io"
)

// ReaderSource adapts an io.Reader of pre-extracted statement text into a
// domain.LineSource. Used for plain-text statement dumps and in tests.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource returns a ReaderSource wrapping r
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Lines reads the full text and returns its trimmed, non-empty lines
func (s *ReaderSource) Lines() ([]string, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("reading statement text: %w", err)
	}

	return SplitLines(string(data)), nil
}
