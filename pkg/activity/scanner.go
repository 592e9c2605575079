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

package activity

import (
	"bufio"
	"context"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"gitlab.com/tozd/go/errors"
)

var (
	// durationRe matches a scheduled activity heading, capturing "(NN min)"
	durationRe = regexp.MustCompile(`(?i)\. (student|everyone) do:.*(\([\d]+ min\))`)
	// pathRe matches a backtick-quoted activity path like `01-Stu_Name/README.md`
	pathRe = regexp.MustCompile("(?i)`[\\d]+-(stu|evr)_.+/.+`")
	// cleanRe strips backticks and every README.md segment from a path match
	cleanRe = regexp.MustCompile("`|/README.md")
)

// 📋 Record is one scheduled activity found in a lesson plan
type Record struct {
	// Label is the slack-formatted line, e.g. "Activity `01-Stu_Demo/README.md` (10 min)"
	Label string
	// Path is the activity directory relative to the module's activities folder
	Path string
}

// Prefix returns the numeric prefix of the activity ("01-").
func (r Record) Prefix() string {
	return curriculum.Prefix(r.Path)
}

type scanState int

const (
	awaitingDuration scanState = iota
	awaitingActivityPath
)

// 🔍 Scanner pairs duration lines with the activity path on the line right
// after them. Feed it lines in order with Line; completed records accumulate.
type Scanner struct {
	state    scanState
	duration string
	records  []Record
}

// Line advances the state machine by one line and reports whether a record
// was emitted.
func (s *Scanner) Line(line string) bool {
	if s.state == awaitingActivityPath {
		if match := pathRe.FindString(line); match != "" {
			s.records = append(s.records, Record{
				Label: "Activity " + match + " " + s.duration,
				Path:  cleanPath(match),
			})
			s.reset()
			return true
		}
		// the pending duration only pairs with the very next line
		s.reset()
	}

	if m := durationRe.FindStringSubmatch(line); m != nil && m[2] != "" {
		s.duration = m[2]
		s.state = awaitingActivityPath
	}
	return false
}

// Records returns the records emitted so far.
func (s *Scanner) Records() []Record {
	return s.records
}

func (s *Scanner) reset() {
	s.state = awaitingDuration
	s.duration = ""
}

func cleanPath(match string) string {
	return cleanRe.ReplaceAllString(match, "")
}

// 📖 Scan reads r line by line and returns the records in document order.
// Lines may be of any length.
func Scan(ctx context.Context, r io.Reader) ([]Record, error) {
	logger := zerolog.Ctx(ctx)

	br := bufio.NewReader(r)

	var s Scanner
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("scan cancelled: %w", err)
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Errorf("reading lesson plan: %w", err)
		}
		if line == "" && err != nil {
			break
		}

		lineNo++
		if s.Line(strings.TrimRight(line, "\r\n")) {
			rec := s.records[len(s.records)-1]
			logger.Debug().Int("line", lineNo).Str("activity", rec.Path).Msg("found activity")
		}
		if err != nil {
			break
		}
	}

	if s.state == awaitingActivityPath {
		logger.Debug().Str("duration", s.duration).Msg("duration at end of file has no activity")
	}

	return s.Records(), nil
}

// 📄 ScanFile opens path and scans it
func ScanFile(ctx context.Context, path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening lesson plan: %w", err)
	}
	defer f.Close()

	records, err := Scan(ctx, f)
	if err != nil {
		return nil, errors.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}
