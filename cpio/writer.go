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

	"github.com/holocm/rpmkit/internal/wire"
)

// Writer emits a sequence of newc entries to a sequential sink.
type Writer struct {
	w      io.Writer
	closed bool
}

// NewWriter wraps sink for entry-by-entry writing.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{w: sink}
}

// WriteHeader emits one entry's 110-byte-plus-name header (magic, 13 hex
// fields, NUL-terminated name, alignment padding). The caller must then
// write exactly e.FileSize bytes via WritePayload.
func (w *Writer) WriteHeader(e Entry) error {
	if _, err := io.WriteString(w.w, magic); err != nil {
		return fmt.Errorf("cpio: writing entry magic: %w", err)
	}

	nameSize := uint32(len(e.Name)) + 1
	fields := [13]uint32{
		e.Inode, e.Mode, e.UID, e.GID, e.Nlink, e.Mtime, e.FileSize,
		e.DevMajor, e.DevMinor, e.RdevMajor, e.RdevMinor,
		nameSize, 0, // checksum field is always zero
	}
	for _, f := range fields {
		if err := wire.WriteHexUint32(w.w, f); err != nil {
			return fmt.Errorf("cpio: writing entry header field: %w", err)
		}
	}

	if _, err := io.WriteString(w.w, e.Name); err != nil {
		return fmt.Errorf("cpio: writing entry name: %w", err)
	}
	if _, err := w.w.Write([]byte{0}); err != nil {
		return fmt.Errorf("cpio: writing entry name terminator: %w", err)
	}
	if _, err := wire.AlignPad(w.w, int(6+nameSize), 4); err != nil {
		return fmt.Errorf("cpio: writing header padding: %w", err)
	}
	return nil
}

// WritePayload copies exactly e.FileSize bytes from src and then emits the
// 4-byte alignment padding.
func (w *Writer) WritePayload(src io.Reader, e Entry) error {
	if err := copyExactly(w.w, src, int64(e.FileSize)); err != nil {
		return fmt.Errorf("cpio: writing entry payload: %w", err)
	}
	if _, err := wire.AlignPad(w.w, int(e.FileSize), 4); err != nil {
		return fmt.Errorf("cpio: writing payload padding: %w", err)
	}
	return nil
}

// WriteTrailer emits the archive terminator entry. It does not close the
// underlying sink.
func (w *Writer) WriteTrailer() error {
	return w.WriteHeader(trailerEntry())
}
