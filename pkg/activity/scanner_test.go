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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Record
	}{
		{
			name: "no_duration_lines",
			lines: []string{
				"# Lesson Plan",
				"`01-Stu_Demo/README.md`",
				"nothing scheduled here",
			},
			want: nil,
		},
		{
			name: "duration_then_path",
			lines: []string{
				". Student do: review `01-stu_demo/exercise/README.md` (10 min)",
				"`01-stu_demo/exercise/README.md`",
			},
			want: []Record{
				{
					Label: "Activity `01-stu_demo/exercise/README.md` (10 min)",
					Path:  "01-stu_demo/exercise",
				},
			},
		},
		{
			name: "case_insensitive",
			lines: []string{
				"### 4. EVERYONE DO: Pair Up (25 MIN)",
				"* Open `12-EVR_Pairs/Unsolved/index.html`",
			},
			want: []Record{
				{
					Label: "Activity `12-EVR_Pairs/Unsolved/index.html` (25 MIN)",
					Path:  "12-EVR_Pairs/Unsolved/index.html",
				},
			},
		},
		{
			name: "unpaired_duration_is_discarded",
			lines: []string{
				". Student do: first (5 min)",
				"some unrelated text",
				". Everyone do: second (20 min)",
				"`02-Evr_Second/README.md`",
			},
			want: []Record{
				{Label: "Activity `02-Evr_Second/README.md` (20 min)", Path: "02-Evr_Second"},
			},
		},
		{
			name: "duration_replaced_by_next_duration",
			lines: []string{
				". Student do: first (5 min)",
				". Student do: second (15 min)",
				"`03-Stu_Third/README.md`",
			},
			want: []Record{
				{Label: "Activity `03-Stu_Third/README.md` (15 min)", Path: "03-Stu_Third"},
			},
		},
		{
			name: "path_must_be_next_line",
			lines: []string{
				". Student do: spaced (10 min)",
				"",
				"`04-Stu_Spaced/README.md`",
			},
			want: nil,
		},
		{
			name: "duration_at_end_of_file",
			lines: []string{
				"`01-Stu_Before/README.md`",
				". Student do: dangling (10 min)",
			},
			want: nil,
		},
		{
			name: "duration_needs_minutes",
			lines: []string{
				". Student do: no time given",
				"`05-Stu_NoTime/README.md`",
			},
			want: nil,
		},
		{
			name: "path_needs_marker",
			lines: []string{
				". Student do: wrong marker (10 min)",
				"`06-ins_Demo/README.md`",
			},
			want: nil,
		},
		{
			name: "duration_uses_last_minutes_token",
			lines: []string{
				". Student do: (5 min) then more (30 min)",
				"`07-Stu_Long/Solved/README.md`",
			},
			want: []Record{
				{Label: "Activity `07-Stu_Long/Solved/README.md` (30 min)", Path: "07-Stu_Long/Solved"},
			},
		},
		{
			name: "two_spans_on_one_line",
			lines: []string{
				". Student do: compare (10 min)",
				"Open `01-Stu_A/README.md` and `01-Stu_A/Solved`",
			},
			want: []Record{
				{
					Label: "Activity `01-Stu_A/README.md` and `01-Stu_A/Solved` (10 min)",
					Path:  "01-Stu_A and 01-Stu_A/Solved",
				},
			},
		},
		{
			name: "multiple_activities_in_order",
			lines: []string{
				"## 1. Instructor Demo: intro (5 min)",
				"`01-Ins_Intro/README.md`",
				"## 2. Student Do: one (10 min)",
				"`02-Stu_One/README.md`",
				"## 3. Everyone Do: two (15 min)",
				"`03-Evr_Two/README.md`",
			},
			want: []Record{
				{Label: "Activity `02-Stu_One/README.md` (10 min)", Path: "02-Stu_One"},
				{Label: "Activity `03-Evr_Two/README.md` (15 min)", Path: "03-Evr_Two"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Scan(testContext(t), strings.NewReader(strings.Join(tt.lines, "\n")))
			require.NoError(t, err)
			assert.Equal(t, tt.want, records)
		})
	}
}

func TestScanCRLF(t *testing.T) {
	input := ". Student do: windows (10 min)\r\n`01-Stu_Win/README.md`\r\n"

	records, err := Scan(testContext(t), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "01-Stu_Win", records[0].Path)
	assert.Equal(t, "Activity `01-Stu_Win/README.md` (10 min)", records[0].Label)
}

func TestScanLongLine(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"200_KiB", 200 * 1024},
		{"3_MiB_inline_image", 3 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long := "![](data:image/png;base64," + strings.Repeat("A", tt.size) + ")"
			input := long + "\n. Student do: after a long line (10 min)\n`01-Stu_Long/README.md`\n"

			records, err := Scan(testContext(t), strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, []Record{{Label: "Activity `01-Stu_Long/README.md` (10 min)", Path: "01-Stu_Long"}}, records)
		})
	}
}

func TestScanNoTrailingNewline(t *testing.T) {
	records, err := Scan(testContext(t), strings.NewReader(". Everyone do: last (15 min)\n`08-Evr_Last/README.md`"))
	require.NoError(t, err)
	assert.Equal(t, []Record{{Label: "Activity `08-Evr_Last/README.md` (15 min)", Path: "08-Evr_Last"}}, records)
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err := Scan(ctx, strings.NewReader("line\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan cancelled")
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson-plan.md")
	require.NoError(t, os.WriteFile(path, []byte(". Everyone do: go (10 min)\n`09-Evr_Go/README.md`\n"), 0644))

	records, err := ScanFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, []Record{{Label: "Activity `09-Evr_Go/README.md` (10 min)", Path: "09-Evr_Go"}}, records)

	_, err = ScanFile(testContext(t), filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening lesson plan")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []Record{
		{Label: "Activity `01-Stu_A/README.md` (10 min)"},
		{Label: "Activity `02-Stu_B/README.md` (5 min)"},
	})
	require.NoError(t, err)
	assert.Equal(t, "\nActivity `01-Stu_A/README.md` (10 min)\nActivity `02-Stu_B/README.md` (5 min)\n\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, nil))
	assert.Equal(t, "\n\n", buf.String())
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "02-", Record{Path: "02-Evr_X"}.Prefix())

	assert.Equal(t, map[string]bool{"01-": true, "02-": true}, Prefixes([]Record{
		{Path: "01-Stu_A"}, {Path: "02-Stu_B"}, {Path: "01-Stu_A/Solved"},
	}))
}

func TestTitleOf(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"atx", "# 13.2 Lesson Plan - Express\n\n## Overview\n", "13.2 Lesson Plan - Express"},
		{"setext", "Routing Day\n===========\n\ntext\n", "Routing Day"},
		{"inline_markup", "# Day `3` **Algorithms**\n", "Day 3 Algorithms"},
		{"skips_lower_levels", "## Not this\n# This one\n", "This one"},
		{"no_heading", "just text\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleOf([]byte(tt.content)))
		})
	}
}
