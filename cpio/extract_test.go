/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package cpio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveWithOneEntry(t *testing.T, e Entry, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	b := NewBuilder(&buf)
	b.AddEntry(e, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(content)), nil
	})
	require.NoError(t, b.Finalize())
	return buf.Bytes()
}

func TestExtractRejectsParentDirTraversal(t *testing.T) {
	root := t.TempDir()
	e := Entry{Name: "../../etc/passwd", Nlink: 1, FileSize: 0}
	raw := archiveWithOneEntry(t, e, nil)

	err := Extract(NewReader(bytes.NewReader(raw)), root, ExtractOptions{CreatesDir: true})
	assert.Error(t, err)
}

func TestExtractRejectsAbsoluteName(t *testing.T) {
	root := t.TempDir()
	e := Entry{Name: "/etc/passwd", Nlink: 1, FileSize: 0}
	raw := archiveWithOneEntry(t, e, nil)

	err := Extract(NewReader(bytes.NewReader(raw)), root, ExtractOptions{CreatesDir: true})
	assert.Error(t, err)
}

func TestExtractRejectsEmbeddedTraversal(t *testing.T) {
	root := t.TempDir()
	e := Entry{Name: "foo/bar/../../../etc/passwd", Nlink: 1, FileSize: 0}
	raw := archiveWithOneEntry(t, e, nil)

	err := Extract(NewReader(bytes.NewReader(raw)), root, ExtractOptions{CreatesDir: true})
	assert.Error(t, err)
}

func TestExtractRejectsSymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	e := Entry{Name: "link/evil", Nlink: 1, FileSize: 0}
	raw := archiveWithOneEntry(t, e, nil)

	err := Extract(NewReader(bytes.NewReader(raw)), root, ExtractOptions{CreatesDir: true})
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(outside, "evil"))
	assert.True(t, os.IsNotExist(statErr), "traversal must not have created a file outside root")
}

func TestExtractSingleFile(t *testing.T) {
	root := t.TempDir()
	e := Entry{Name: "h.txt", Nlink: 1, FileSize: 5, Mtime: 1700000000}
	raw := archiveWithOneEntry(t, e, []byte("hello"))

	require.NoError(t, Extract(NewReader(bytes.NewReader(raw)), root, ExtractOptions{CreatesDir: true}))

	got, err := os.ReadFile(filepath.Join(root, "h.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestExtractStopsAtTrailerWithoutMaterializingIt(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer
	b := NewBuilder(&buf)
	require.NoError(t, b.Finalize())

	require.NoError(t, Extract(NewReader(bytes.NewReader(buf.Bytes())), root, ExtractOptions{CreatesDir: true}))

	_, err := os.Stat(filepath.Join(root, TrailerName))
	assert.True(t, os.IsNotExist(err))
}
