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
	"unicode/utf8"

	"github.com/holocm/rpmkit/internal/common"
	"github.com/holocm/rpmkit/internal/wire"
)

// Reader decodes a sequence of newc entries from a seekable byte source.
// The source must be seekable so SkipPayload can advance past an entry's
// file data without the caller consuming it.
type Reader struct {
	r io.ReadSeeker
}

// NewReader wraps src for entry-by-entry reading.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{r: src}
}

// Next reads and returns the next entry's header. It returns io.EOF when the
// source ends before a complete 6-byte magic (including a source that ends
// part-way through one); it does not track whether a trailer was seen. The
// trailer itself is returned like any other entry with Entry.IsTrailer true,
// so the caller can observe archive termination explicitly.
func (rd *Reader) Next() (Entry, error) {
	var magicBuf [6]byte
	if _, err := io.ReadFull(rd.r, magicBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return Entry{}, io.EOF
		}
		return Entry{}, fmt.Errorf("cpio: reading entry magic: %w", err)
	}
	if string(magicBuf[:]) != magic {
		return Entry{}, fmt.Errorf("cpio: bad entry magic %q: %w", magicBuf, common.ErrInvalidData)
	}

	fields := make([]uint32, 13)
	for i := range fields {
		v, err := wire.ReadHexUint32(rd.r)
		if err != nil {
			return Entry{}, fmt.Errorf("cpio: reading entry header field %d: %w", i, err)
		}
		fields[i] = v
	}

	e := Entry{
		Inode:     fields[0],
		Mode:      fields[1],
		UID:       fields[2],
		GID:       fields[3],
		Nlink:     fields[4],
		Mtime:     fields[5],
		FileSize:  fields[6],
		DevMajor:  fields[7],
		DevMinor:  fields[8],
		RdevMajor: fields[9],
		RdevMinor: fields[10],
	}
	nameSize := fields[11]
	// fields[12] is the checksum field, always zero in this format and not
	// otherwise meaningful.

	if nameSize > MaxNameSize {
		return Entry{}, fmt.Errorf("cpio: name_size %d exceeds %d: %w", nameSize, MaxNameSize, common.ErrInvalidData)
	}
	if e.FileSize > MaxFileSize {
		return Entry{}, fmt.Errorf("cpio: file_size %d exceeds %d: %w", e.FileSize, MaxFileSize, common.ErrInvalidData)
	}

	nameBuf := make([]byte, nameSize)
	if _, err := io.ReadFull(rd.r, nameBuf); err != nil {
		return Entry{}, fmt.Errorf("cpio: reading entry name: %w", err)
	}
	if nameSize == 0 || nameBuf[nameSize-1] != 0 {
		return Entry{}, fmt.Errorf("cpio: entry name not NUL-terminated: %w", common.ErrInvalidData)
	}
	nameBuf = nameBuf[:nameSize-1]
	if !utf8.Valid(nameBuf) {
		return Entry{}, fmt.Errorf("cpio: entry name is not valid UTF-8: %w", common.ErrInvalidData)
	}
	e.Name = string(nameBuf)

	if err := wire.AlignSkip(rd.r, int(6+nameSize), 4); err != nil {
		return Entry{}, fmt.Errorf("cpio: skipping header padding: %w", err)
	}

	return e, nil
}

// CopyPayload copies exactly e.FileSize bytes of the current entry's
// payload to dst, then skips the 4-byte alignment padding that follows it.
// Must be called (or SkipPayload) before the next call to Next.
func (rd *Reader) CopyPayload(dst io.Writer, e Entry) error {
	if err := copyExactly(dst, rd.r, int64(e.FileSize)); err != nil {
		return fmt.Errorf("cpio: copying entry payload: %w", err)
	}
	if err := wire.AlignSkip(rd.r, int(e.FileSize), 4); err != nil {
		return fmt.Errorf("cpio: skipping payload padding: %w", err)
	}
	return nil
}

// SkipPayload advances past the current entry's payload and its padding
// without copying it anywhere.
func (rd *Reader) SkipPayload(e Entry) error {
	total := int64(e.FileSize) + int64(wire.PadLen(int(e.FileSize), 4))
	if _, err := rd.r.Seek(total, io.SeekCurrent); err != nil {
		return fmt.Errorf("cpio: skipping entry payload: %w", err)
	}
	return nil
}

// chunkSize is the fixed buffer size used by the chunked copy primitive
// (spec.md §4.E.5): exact byte counts without relying on sink-driven length
// estimates.
const chunkSize = 8 * 1024

// copyExactly copies exactly n bytes from src to dst using a fixed-size
// buffer, looping over full chunks and one trailing partial chunk.
func copyExactly(dst io.Writer, src io.Reader, n int64) error {
	buf := make([]byte, chunkSize)
	full := n / chunkSize
	rem := n % chunkSize
	for i := int64(0); i < full; i++ {
		if _, err := io.ReadFull(src, buf); err != nil {
			return err
		}
		if _, err := dst.Write(buf); err != nil {
			return err
		}
	}
	if rem > 0 {
		if _, err := io.ReadFull(src, buf[:rem]); err != nil {
			return err
		}
		if _, err := dst.Write(buf[:rem]); err != nil {
			return err
		}
	}
	return nil
}
