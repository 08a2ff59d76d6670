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
)

// source pairs an Entry with whatever supplies its payload bytes.
type source struct {
	entry Entry
	open  func() (io.ReadCloser, error)
}

// Builder accumulates (entry, byte-source) pairs and a single sink,
// emitting a newc archive on Finalize (spec.md §4.E.4).
type Builder struct {
	w       *Writer
	sources []source
}

// NewBuilder returns a Builder that will write to sink on Finalize.
func NewBuilder(sink io.Writer) *Builder {
	return &Builder{w: NewWriter(sink)}
}

// AddRaw adds path to the archive under its own basename.
func (b *Builder) AddRaw(path string) error {
	return b.addFromPath(path, filepath.Base(path))
}

// AddAs adds path to the archive under the caller-supplied archive name.
func (b *Builder) AddAs(path, name string) error {
	return b.addFromPath(path, name)
}

// AddEntry adds an already-constructed entry together with an explicit
// payload reader, for callers that are not synthesizing the entry from a
// filesystem path (e.g. dump-and-rebuild tooling).
func (b *Builder) AddEntry(e Entry, open func() (io.ReadCloser, error)) {
	b.sources = append(b.sources, source{entry: e, open: open})
}

func (b *Builder) addFromPath(path, name string) error {
	e, err := synthesizeEntry(path, name)
	if err != nil {
		return err
	}
	b.sources = append(b.sources, source{
		entry: e,
		open: func() (io.ReadCloser, error) {
			if e.IsDirectory() {
				return io.NopCloser(noBytes{}), nil
			}
			return os.Open(path)
		},
	})
	return nil
}

type noBytes struct{}

func (noBytes) Read([]byte) (int, error) { return 0, io.EOF }

// Finalize writes every accumulated pair as header-then-payload-then-pad4,
// then the trailer entry.
func (b *Builder) Finalize() error {
	for _, s := range b.sources {
		if err := b.w.WriteHeader(s.entry); err != nil {
			return err
		}
		rc, err := s.open()
		if err != nil {
			return fmt.Errorf("cpio: opening payload for %q: %w", s.entry.Name, err)
		}
		err = b.w.WritePayload(rc, s.entry)
		closeErr := rc.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return fmt.Errorf("cpio: closing payload source for %q: %w", s.entry.Name, closeErr)
		}
	}
	return b.w.WriteTrailer()
}

// synthesizeEntry stats path and fills inode/mode/uid/gid/nlink/mtime/size/
// device/rdev fields. On non-POSIX hosts the owner/device fields are zero
// and mode comes from the portable file-attribute bits only.
func synthesizeEntry(path, name string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, fmt.Errorf("cpio: stating %q: %w", path, err)
	}

	e := Entry{
		Name:  name,
		Mtime: uint32(info.ModTime().Unix()),
	}
	if info.IsDir() {
		fillPlatformStat(&e, info)
		// newc directories are marked by nlink == 2 (see Entry.IsDirectory),
		// whatever link count the host reports.
		e.Nlink = 2
		e.Mode = 0o040000 | uint32(info.Mode().Perm())
		return e, nil
	}
	e.Nlink = 1
	e.Mode = 0o100000 | uint32(info.Mode().Perm())
	e.FileSize = uint32(info.Size())

	fillPlatformStat(&e, info)
	return e, nil
}
