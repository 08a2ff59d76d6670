/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Package wire implements the low-level primitives shared by the RPM tag
// store codec and the CPIO payload engine: fixed-width big-endian integer
// read/write, alignment padding, and the hex-ASCII integer encoding used by
// newc-format CPIO headers.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint8 reads a single byte.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a big-endian uint16.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadUint32 reads a big-endian uint32.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadUint64 reads a big-endian uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// WriteUint8 writes a single byte.
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// WriteUint16 writes a big-endian uint16.
func WriteUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint32 writes a big-endian uint32.
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint64 writes a big-endian uint64.
func WriteUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// AlignPad writes zero bytes to the sink so that length advances to the next
// multiple of n (n is normally 4 or 8). length is the number of bytes already
// written from whatever origin alignment is being measured; it returns the
// number of padding bytes written.
func AlignPad(w io.Writer, length int, n int) (int, error) {
	pad := PadLen(length, n)
	if pad == 0 {
		return 0, nil
	}
	if _, err := w.Write(make([]byte, pad)); err != nil {
		return 0, err
	}
	return pad, nil
}

// PadLen returns the number of padding bytes needed to advance length to the
// next multiple of n.
func PadLen(length int, n int) int {
	rem := length % n
	if rem == 0 {
		return 0
	}
	return n - rem
}

// AlignSkip advances r past the padding bytes implied by AlignPad, discarding
// them.
func AlignSkip(r io.Reader, length int, n int) error {
	pad := PadLen(length, n)
	if pad == 0 {
		return nil
	}
	_, err := io.CopyN(io.Discard, r, int64(pad))
	return err
}

// ReadHexUint32 reads exactly 8 ASCII hex characters and returns the value
// they encode. It fails if any of the 8 bytes is not a hex digit.
func ReadHexUint32(r io.Reader) (uint32, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	var v uint32
	for _, c := range buf {
		digit, ok := hexDigitValue(c)
		if !ok {
			return 0, fmt.Errorf("wire: invalid hex digit %q in CPIO field", c)
		}
		v = v<<4 | uint32(digit)
	}
	return v, nil
}

// WriteHexUint32 writes v as exactly 8 lowercase hex characters, zero-padded.
func WriteHexUint32(w io.Writer, v uint32) error {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = lowerHexDigits[v&0xF]
		v >>= 4
	}
	_, err := w.Write(buf[:])
	return err
}

const lowerHexDigits = "0123456789abcdef"

func hexDigitValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
