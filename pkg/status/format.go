package status

import (
	"fmt"
)

// 🧮 Summary counts file outcomes. Directories only count when skipped.
type Summary struct {
	New       int
	Modified  int
	Unchanged int
	Skipped   int
	Bytes     int64
}

func (s *Summary) add(entry FileEntry) {
	if entry.IsDir && entry.Status != StatusSkipped {
		return
	}
	switch entry.Status {
	case StatusNew:
		s.New++
	case StatusModified:
		s.Modified++
	case StatusUnchanged:
		s.Unchanged++
	case StatusSkipped:
		s.Skipped++
	}
	s.Bytes += entry.Size
}

// Copied is the number of files in place at the destination, written or not.
func (s Summary) Copied() int {
	return s.New + s.Modified + s.Unchanged
}

// String formats the summary for the console
func (s Summary) String() string {
	return fmt.Sprintf("%d files copied (%d new, %d modified, %d unchanged), %d skipped",
		s.Copied(), s.New, s.Modified, s.Unchanged, s.Skipped)
}
