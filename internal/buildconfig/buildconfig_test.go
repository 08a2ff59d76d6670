/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package buildconfig

import (
	"strings"
	"testing"

	"github.com/holocm/rpmkit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidDefinition(t *testing.T) {
	src := `
[Package]
Name = "example"
Version = "1.0"

[[File]]
Path = "/etc/example.conf"
Content = "hello\n"
Mode = "0644"

[[Directory]]
Path = "/var/lib/example"

[[Symlink]]
Path = "/usr/bin/example"
Target = "/usr/bin/example-1.0"
`
	def, err := Parse(strings.NewReader(src), "/base")
	require.NoError(t, err)
	assert.Equal(t, "example", def.Package.Name)
	assert.Equal(t, uint(1), def.Package.Release)
	require.Len(t, def.File, 1)
	assert.Equal(t, "/etc/example.conf", def.File[0].Path)
}

func TestParseRejectsMissingName(t *testing.T) {
	src := `
[Package]
Version = "1.0"
`
	_, err := Parse(strings.NewReader(src), "/base")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestParseRejectsInvalidVersion(t *testing.T) {
	src := `
[Package]
Name = "example"
Version = "not-a-version"
`
	_, err := Parse(strings.NewReader(src), "/base")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestParseRejectsRelativeFilePath(t *testing.T) {
	src := `
[Package]
Name = "example"
Version = "1.0"

[[File]]
Path = "etc/example.conf"
Content = "hello"
`
	_, err := Parse(strings.NewReader(src), "/base")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestParseRejectsFileWithNoContent(t *testing.T) {
	src := `
[Package]
Name = "example"
Version = "1.0"

[[File]]
Path = "/etc/example.conf"
`
	_, err := Parse(strings.NewReader(src), "/base")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestParseRejectsSymlinkMissingTarget(t *testing.T) {
	src := `
[Package]
Name = "example"
Version = "1.0"

[[Symlink]]
Path = "/usr/bin/example"
`
	_, err := Parse(strings.NewReader(src), "/base")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestParseCollectsMultipleErrors(t *testing.T) {
	src := `
[[File]]
Path = "relative/path"
`
	_, err := Parse(strings.NewReader(src), "/base")
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "missing package name")
	assert.Contains(t, msg, "missing package version")
	assert.Contains(t, msg, "must be an absolute path")
}

func TestParseResolvesRelativeContentFrom(t *testing.T) {
	src := `
[Package]
Name = "example"
Version = "1.0"

[[File]]
Path = "/etc/example.conf"
ContentFrom = "files/example.conf"
`
	def, err := Parse(strings.NewReader(src), "/base")
	require.NoError(t, err)
	assert.Equal(t, "/base/files/example.conf", def.File[0].ContentFrom)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("0755", 0o644)
	require.NoError(t, err)
	assert.Equal(t, uint32(0o755), m)

	m, err = ParseMode("", 0o644)
	require.NoError(t, err)
	assert.Equal(t, uint32(0o644), m)

	_, err = ParseMode("not-octal", 0o644)
	assert.Error(t, err)
}

func TestReadFileContentInline(t *testing.T) {
	b, err := ReadFileContent(FileSection{Path: "/etc/x", Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}
