/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Package buildconfig parses a declarative TOML package definition into the
// file-system entries and header metadata an RPM built by cmd/rpm-build
// needs, in the style of Holo's own package-definition format, trimmed to
// the fields RPM actually uses.
package buildconfig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/holocm/rpmkit/internal/common"
)

// Definition is the top-level shape of a package definition file. Every
// field has an exported, capitalized Go name so the TOML decoder can
// produce meaningful error messages on malformed input.
type Definition struct {
	Package   PackageSection
	File      []FileSection
	Directory []DirectorySection
	Symlink   []SymlinkSection
}

// PackageSection carries the header-level facts of the package.
type PackageSection struct {
	Name         string
	Version      string
	Release      uint
	Epoch        uint
	Description  string
	Summary      string
	License      string
	Architecture string
	Requires     []string
	Provides     []string
	Conflicts    []string
	Obsoletes    []string
}

// FileSection describes one regular file to embed in the payload.
type FileSection struct {
	Path        string
	Content     string
	ContentFrom string
	Mode        string // octal, e.g. "0644"; TOML has no octal literal
	Owner       uint32
	Group       uint32
}

// DirectorySection describes one explicit directory entry.
type DirectorySection struct {
	Path  string
	Mode  string
	Owner uint32
	Group uint32
}

// SymlinkSection describes one symbolic link.
type SymlinkSection struct {
	Path   string
	Target string
}

var versionRx = regexp.MustCompile(`^[0-9][0-9A-Za-z.]*$`)

// Parse decodes a package definition from r. baseDir resolves any
// ContentFrom path that is not itself absolute. It returns every validation
// error collected rather than stopping at the first one, the way the
// teacher's own parser does.
func Parse(r io.Reader, baseDir string) (*Definition, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buildconfig: reading package definition: %w", err)
	}

	var def Definition
	if _, err := toml.Decode(string(blob), &def); err != nil {
		return nil, fmt.Errorf("buildconfig: parsing package definition: %w", err)
	}

	ec := &common.ErrorCollector{}
	def.Package.Name = strings.TrimSpace(def.Package.Name)
	if def.Package.Name == "" {
		ec.Add(fmt.Errorf("missing package name: %w", common.ErrInvalidInput))
	} else if strings.ContainsAny(def.Package.Name, "/\r\n") {
		ec.Add(fmt.Errorf("package name %q may not contain slashes or newlines: %w", def.Package.Name, common.ErrInvalidInput))
	}

	def.Package.Version = strings.TrimSpace(def.Package.Version)
	if def.Package.Version == "" {
		ec.Add(fmt.Errorf("missing package version: %w", common.ErrInvalidInput))
	} else if !versionRx.MatchString(def.Package.Version) {
		ec.Add(fmt.Errorf("invalid package version %q: %w", def.Package.Version, common.ErrInvalidInput))
	}

	if def.Package.Release == 0 {
		def.Package.Release = 1
	}

	for i := range def.File {
		f := &def.File[i]
		if !strings.HasPrefix(f.Path, "/") {
			ec.Add(fmt.Errorf("file %q must be an absolute path: %w", f.Path, common.ErrInvalidInput))
		}
		if f.Content == "" && f.ContentFrom == "" {
			ec.Add(fmt.Errorf("file %q has no content: %w", f.Path, common.ErrInvalidInput))
		}
		if f.ContentFrom != "" && !filepath.IsAbs(f.ContentFrom) {
			f.ContentFrom = filepath.Join(baseDir, f.ContentFrom)
		}
	}
	for _, d := range def.Directory {
		if !strings.HasPrefix(d.Path, "/") {
			ec.Add(fmt.Errorf("directory %q must be an absolute path: %w", d.Path, common.ErrInvalidInput))
		}
	}
	for _, s := range def.Symlink {
		if !strings.HasPrefix(s.Path, "/") {
			ec.Add(fmt.Errorf("symlink %q must be an absolute path: %w", s.Path, common.ErrInvalidInput))
		}
		if s.Target == "" {
			ec.Add(fmt.Errorf("symlink %q is missing its target: %w", s.Path, common.ErrInvalidInput))
		}
	}

	if ec.Any() {
		return nil, ec.Join()
	}
	return &def, nil
}

// ParseMode parses an octal mode string like "0644", defaulting to
// defaultMode when modeStr is empty.
func ParseMode(modeStr string, defaultMode uint32) (uint32, error) {
	if modeStr == "" {
		return defaultMode, nil
	}
	v, err := strconv.ParseUint(modeStr, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("buildconfig: invalid mode %q: %w", modeStr, common.ErrInvalidInput)
	}
	return uint32(v), nil
}

// ReadFileContent returns a file section's literal bytes, reading from
// ContentFrom when Content itself is empty.
func ReadFileContent(f FileSection) ([]byte, error) {
	if f.Content != "" {
		return []byte(f.Content), nil
	}
	b, err := os.ReadFile(f.ContentFrom)
	if err != nil {
		return nil, fmt.Errorf("buildconfig: reading content for %q: %w", f.Path, err)
	}
	return b, nil
}
