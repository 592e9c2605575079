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

package selector

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gitlab.com/tozd/go/errors"
)

const (
	tuiWidth     = 60
	tuiMaxHeight = 20
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#6BCB77")).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().Margin(1, 2)
)

// 🖥️ TUIPrompter prompts with a bubbletea list
type TUIPrompter struct {
	// Input defaults to stdin
	Input io.Reader
	// Output defaults to stderr
	Output io.Writer
}

func (p *TUIPrompter) Select(ctx context.Context, message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.Errorf("%w: %s", ErrNoOptions, message)
	}

	var out io.Writer = os.Stderr
	if p.Output != nil {
		out = p.Output
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out)}
	if p.Input != nil {
		programOpts = append(programOpts, tea.WithInput(p.Input))
	}

	final, err := tea.NewProgram(newSelectModel(message, options), programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", errors.Errorf("%w: %s", ErrCancelled, err)
		}
		return "", errors.Errorf("running select menu: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok || m.choice == "" {
		return "", errors.WithStack(ErrCancelled)
	}
	return m.choice, nil
}

// option is a list.Item for one choice
type option string

func (o option) Title() string       { return string(o) }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return string(o) }

// 📋 selectModel is a single-choice list that quits on enter
type selectModel struct {
	list   list.Model
	choice string
}

func newSelectModel(message string, options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = option(o)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	height := len(options) + 8
	if height > tuiMaxHeight {
		height = tuiMaxHeight
	}

	l := list.New(items, delegate, tuiWidth, height)
	l.Title = message
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return selectModel{list: l}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := frameStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, min(msg.Height-v, tuiMaxHeight))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// keys belong to the filter input while it is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc", "q":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(option); ok {
				m.choice = string(item)
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.choice != "" {
		return ""
	}
	return frameStyle.Render(m.list.View())
}
