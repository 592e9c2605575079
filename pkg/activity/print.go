package activity

import (
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🖨️ Print writes the slack labels, one per line, padded by a blank line
// above and below.
func Print(w io.Writer, records []Record) error {
	var b strings.Builder
	b.WriteString("\n")
	for _, r := range records {
		b.WriteString(r.Label)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Errorf("writing activities: %w", err)
	}
	return nil
}

// Prefixes returns the set of activity prefixes in records.
func Prefixes(records []Record) map[string]bool {
	out := make(map[string]bool, len(records))
	for _, r := range records {
		out[r.Prefix()] = true
	}
	return out
}
