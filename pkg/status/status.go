// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 FileStatus represents what a copy did to one destination file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // File didn't exist in destination
	StatusModified             // File existed and content differed
	StatusUnchanged            // File existed and content matched
	StatusSkipped              // Node was filtered out
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 FileEntry describes one node visited by a copy
type FileEntry struct {
	Source      string     // Full source path
	Destination string     // Full destination path
	Status      FileStatus // Outcome
	IsDir       bool       // Whether this is a directory
	Reason      string     // Why the node was skipped, if it was
	Size        int64      // Bytes written
}

// 📈 Reporter receives every FileEntry a copy produces
type Reporter interface {
	Track(ctx context.Context, entry FileEntry)
}

// 🔇 Discard is a Reporter that drops everything
var Discard Reporter = discard{}

type discard struct{}

func (discard) Track(context.Context, FileEntry) {}

// 🔀 Tee fans each entry out to every reporter in order
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Track(ctx context.Context, entry FileEntry) {
	for _, r := range t {
		r.Track(ctx, entry)
	}
}

// 🔧 Tracker keeps per-status counts of the entries it sees
type Tracker struct {
	mu      sync.Mutex
	summary Summary
}

// 🏭 NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Track(ctx context.Context, entry FileEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.summary.add(entry)

	zerolog.Ctx(ctx).Trace().
		Str("source", entry.Source).
		Str("destination", entry.Destination).
		Str("status", entry.Status.String()).
		Bool("dir", entry.IsDir).
		Msg("tracked copy entry")
}

// Summary returns the counts so far.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summary
}
