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

package copier

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Filters decide which nodes of a tree are copied. Regular expressions are
// matched against the full, slash-separated source path of a node. Ignore
// globs are matched against the path relative to Root.
type Filters struct {
	// Include, when set, must match every child of a directory for that child
	// to be visited. It is evaluated once per path and is not inherited by
	// descendants of an included directory.
	Include *regexp.Regexp
	// ExcludeDir skips a directory and everything below it.
	ExcludeDir *regexp.Regexp
	// ExcludeFile skips a regular file.
	ExcludeFile *regexp.Regexp
	// Ignore holds doublestar globs; a match skips the node.
	Ignore []string
	// Root is the directory Ignore globs are relative to. Defaults to the
	// source passed to CopyTree.
	Root string
}

// 🔧 Options configure a Copier
type Options struct {
	// DryRun walks and reports without touching the destination.
	DryRun bool
	// Reporter receives one entry per visited node. Defaults to status.Discard.
	Reporter status.Reporter
}

// 📦 Copier copies directory trees with filtering
type Copier struct {
	dryRun   bool
	reporter status.Reporter
}

// 🏭 New creates a Copier
func New(opts Options) *Copier {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = status.Discard
	}
	return &Copier{
		dryRun:   opts.DryRun,
		reporter: reporter,
	}
}

// 🏃 CopyTree copies src to dst applying filters to every node. Errors abort
// the copy and are returned as is; whatever was already copied stays.
func (c *Copier) CopyTree(ctx context.Context, src, dst string, filters Filters) error {
	root := filters.Root
	if root == "" {
		root = src
	}
	return c.copyNode(ctx, filepath.Clean(root), filepath.Clean(src), filepath.Clean(dst), &filters)
}

func (c *Copier) copyNode(ctx context.Context, root, src, dst string, f *Filters) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("copy cancelled: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("source", src).Str("destination", dst).Msg("visiting node")

	info, err := os.Lstat(src)
	if err != nil {
		return errors.Errorf("reading %s: %w", src, err)
	}

	if pattern, ok := f.ignored(ctx, root, src); ok {
		c.skip(ctx, src, dst, info.IsDir(), "ignored by "+pattern)
		return nil
	}

	switch {
	case info.IsDir():
		return c.copyDir(ctx, root, src, dst, f)
	case info.Mode().IsRegular():
		if f.ExcludeFile != nil && f.ExcludeFile.MatchString(filepath.ToSlash(src)) {
			c.skip(ctx, src, dst, false, "excluded file")
			return nil
		}
		return c.copyFile(ctx, src, dst, info)
	default:
		// symlinks, sockets, devices
		c.skip(ctx, src, dst, false, "unsupported node type "+info.Mode().Type().String())
		return nil
	}
}

func (c *Copier) copyDir(ctx context.Context, root, src, dst string, f *Filters) error {
	if f.ExcludeDir != nil && f.ExcludeDir.MatchString(filepath.ToSlash(src)) {
		c.skip(ctx, src, dst, true, "excluded directory")
		return nil
	}

	dirStatus, err := c.ensureDir(dst)
	if err != nil {
		return err
	}
	c.reporter.Track(ctx, status.FileEntry{Source: src, Destination: dst, Status: dirStatus, IsDir: true})

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Errorf("listing %s: %w", src, err)
	}

	for _, entry := range entries {
		childSrc := filepath.Join(src, entry.Name())
		childDst := filepath.Join(dst, entry.Name())

		if f.Include != nil && !f.Include.MatchString(filepath.ToSlash(childSrc)) {
			c.skip(ctx, childSrc, childDst, entry.IsDir(), "not included")
			continue
		}

		if err := c.copyNode(ctx, root, childSrc, childDst, f); err != nil {
			return err
		}
	}

	return nil
}

// 📁 ensureDir creates dst and its ancestors when missing
func (c *Copier) ensureDir(dst string) (status.FileStatus, error) {
	info, err := os.Stat(dst)
	if err == nil {
		if !info.IsDir() {
			return status.StatusUnknown, errors.Errorf("destination %s exists and is not a directory", dst)
		}
		return status.StatusUnchanged, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return status.StatusUnknown, errors.Errorf("checking %s: %w", dst, err)
	}

	if !c.dryRun {
		if err := os.MkdirAll(dst, 0755); err != nil {
			return status.StatusUnknown, errors.Errorf("creating directory %s: %w", dst, err)
		}
	}
	return status.StatusNew, nil
}

// 📄 copyFile writes the bytes of src to dst, replacing whatever is there
func (c *Copier) copyFile(ctx context.Context, src, dst string, info fs.FileInfo) error {
	fileStatus, err := compareFiles(src, dst, info)
	if err != nil {
		return err
	}

	entry := status.FileEntry{Source: src, Destination: dst, Status: fileStatus}

	if fileStatus != status.StatusUnchanged {
		entry.Size = info.Size()
		if !c.dryRun {
			if err := writeFileAtomic(src, dst, info.Mode().Perm()); err != nil {
				return errors.Errorf("copying %s: %w", src, err)
			}
		}
	}

	c.reporter.Track(ctx, entry)
	return nil
}

func (c *Copier) skip(ctx context.Context, src, dst string, isDir bool, reason string) {
	zerolog.Ctx(ctx).Debug().Str("source", src).Str("reason", reason).Msg("skipping node")
	c.reporter.Track(ctx, status.FileEntry{
		Source:      src,
		Destination: dst,
		Status:      status.StatusSkipped,
		IsDir:       isDir,
		Reason:      reason,
	})
}

// 🔍 ignored checks the node's root-relative path against the ignore globs
func (f *Filters) ignored(ctx context.Context, root, src string) (string, bool) {
	if len(f.Ignore) == 0 || src == root {
		return "", false
	}

	rel, err := filepath.Rel(root, src)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range f.Ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return pattern, true
		}
	}
	return "", false
}
