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

package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"gitlab.com/tozd/go/errors"
)

const shortCommit = 12

// 🏷️ VersionInfo identifies the running binary
type VersionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Dirty      bool   `json:"dirty,omitempty"`
	Go         string `json:"go"`
	Platform   string `json:"platform"`
}

// readVersionInfo builds a VersionInfo from the module build info, which is
// nil when the binary was built without module support.
func readVersionInfo(bi *debug.BuildInfo) VersionInfo {
	info := VersionInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	if bi.GoVersion != "" {
		info.Go = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.CommitTime = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String renders the one-line form, e.g.
// "lessoncopy v1.2.0 (3f2a9c1d0b7e, dirty) 2025-01-02T03:04:05Z go1.23.5 linux/amd64"
func (v VersionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lessoncopy %s", v.Version)

	if v.Commit != "" {
		commit := v.Commit
		if len(commit) > shortCommit {
			commit = commit[:shortCommit]
		}
		if v.Dirty {
			commit += ", dirty"
		}
		fmt.Fprintf(&b, " (%s)", commit)
	}
	if v.CommitTime != "" {
		fmt.Fprintf(&b, " %s", v.CommitTime)
	}
	fmt.Fprintf(&b, " %s %s", v.Go, v.Platform)
	return b.String()
}

func newVersionCmd(o *opts.RootOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version works without the environment
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			bi, _ := debug.ReadBuildInfo()
			info := readVersionInfo(bi)

			if !asJSON {
				_, err := fmt.Fprintln(o.Stdout, info.String())
				return err
			}
			if err := json.NewEncoder(o.Stdout).Encode(info); err != nil {
				return errors.Errorf("encoding version info: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as json")

	return cmd
}
