/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package cpio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/holocm/rpmkit/internal/common"
)

// ExtractOptions controls Extract's filesystem behavior.
type ExtractOptions struct {
	// CreatesDir, when false, makes a missing parent directory fatal
	// instead of creating it on demand.
	CreatesDir bool
	// ChangeOwner, when true, chowns and chmods extracted files on POSIX
	// hosts. Silently skipped (with a logged note) on non-POSIX hosts
	// regardless of this setting.
	ChangeOwner bool
}

// Extract reads entries from rd and materializes them under root until the
// trailer entry is reached. root is canonicalized once up front; every
// entry name is checked both lexically and, after joining to root, against
// symlink escape before any filesystem operation runs.
func Extract(rd *Reader, root string, opts ExtractOptions) error {
	canonicalRoot, err := canonicalize(root)
	if err != nil {
		return fmt.Errorf("cpio: canonicalizing extraction root: %w", err)
	}

	for {
		e, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if e.IsTrailer() {
			return nil
		}

		if err := checkLexicalSafety(e.Name); err != nil {
			return err
		}
		target := filepath.Join(root, filepath.FromSlash(e.Name))
		if err := checkSymlinkEscape(target, canonicalRoot); err != nil {
			return err
		}

		if err := extractOne(rd, e, target, opts); err != nil {
			return err
		}
	}
}

// checkLexicalSafety implements spec.md §4.E.3 step 1: reject a name that
// is absolute, begins with a root separator, or contains a ".." component,
// regardless of host OS conventions.
func checkLexicalSafety(name string) error {
	if name == "" {
		return fmt.Errorf("cpio: entry has empty name: %w", common.ErrInvalidInput)
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return fmt.Errorf("cpio: entry name %q is absolute: %w", name, common.ErrInvalidInput)
	}
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return fmt.Errorf("cpio: entry name %q escapes extraction root: %w", name, common.ErrInvalidInput)
		}
	}
	return nil
}

// canonicalize resolves path to its canonical absolute form, following
// symlinks, tolerating that the path does not yet exist by walking up to
// the nearest existing ancestor.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	ancestor := abs
	var missing []string
	for {
		resolved, err := filepath.EvalSymlinks(ancestor)
		if err == nil {
			full := resolved
			for i := len(missing) - 1; i >= 0; i-- {
				full = filepath.Join(full, missing[i])
			}
			return full, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			return "", fmt.Errorf("cpio: no existing ancestor found for %q", path)
		}
		missing = append(missing, filepath.Base(ancestor))
		ancestor = parent
	}
}

// checkSymlinkEscape implements spec.md §4.E.3 steps 2-3: canonicalize the
// joined path's nearest existing ancestor and assert it remains within
// canonicalRoot. This catches an intermediate directory that is itself a
// symlink pointing outside root.
func checkSymlinkEscape(target, canonicalRoot string) error {
	canonicalTarget, err := canonicalize(target)
	if err != nil {
		return fmt.Errorf("cpio: resolving extraction target: %w", err)
	}
	rel, err := filepath.Rel(canonicalRoot, canonicalTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("cpio: entry resolves outside extraction root: %w", common.ErrInvalidInput)
	}
	return nil
}

func extractOne(rd *Reader, e Entry, target string, opts ExtractOptions) error {
	if e.IsDirectory() {
		if err := os.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("cpio: creating directory %q: %w", target, err)
		}
		return finishEntry(target, e, opts)
	}

	parent := filepath.Dir(target)
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		if !opts.CreatesDir {
			return fmt.Errorf("cpio: parent directory %q missing for %q: %w", parent, e.Name, common.ErrNotFound)
		}
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("cpio: creating parent directory %q: %w", parent, err)
		}
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cpio: opening %q for write: %w", target, err)
	}
	defer f.Close()

	if err := rd.CopyPayload(f, e); err != nil {
		return err
	}
	return finishEntry(target, e, opts)
}

// classifyFSError wraps err with common.ErrPermissionDenied when the host
// refused the operation (spec.md §7's PermissionDenied kind), leaving other
// failures (e.g. a vanished target) unclassified.
func classifyFSError(err error) error {
	if os.IsPermission(err) {
		return fmt.Errorf("%w: %w", common.ErrPermissionDenied, err)
	}
	return err
}

func finishEntry(target string, e Entry, opts ExtractOptions) error {
	if opts.ChangeOwner {
		if runtime.GOOS == "windows" {
			common.Logger.WithField("path", target).Debug("cpio: ownership and permissions not supported on this host, skipped")
		} else {
			if err := os.Chmod(target, os.FileMode(e.Mode&0o7777)); err != nil {
				return fmt.Errorf("cpio: chmod %q: %w", target, classifyFSError(err))
			}
			if err := os.Chown(target, int(e.UID), int(e.GID)); err != nil {
				return fmt.Errorf("cpio: chown %q: %w", target, classifyFSError(err))
			}
		}
	}
	mtime := time.Unix(int64(e.Mtime), 0)
	if err := os.Chtimes(target, mtime, mtime); err != nil {
		return fmt.Errorf("cpio: setting mtime on %q: %w", target, err)
	}
	return nil
}
