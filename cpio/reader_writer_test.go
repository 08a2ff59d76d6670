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
	"testing"

	"github.com/holocm/rpmkit/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryHeaderRoundTrip(t *testing.T) {
	e := Entry{
		Inode: 1, Mode: 0o100644, UID: 1000, GID: 1000, Nlink: 1,
		Mtime: 1700000000, FileSize: 5,
		DevMajor: 0, DevMinor: 1, RdevMajor: 0, RdevMinor: 0,
		Name: "h.txt",
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(e))
	require.NoError(t, w.WritePayload(bytes.NewReader([]byte("hello")), e))
	require.NoError(t, w.WriteTrailer())

	rd := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, e.Name, got.Name)
	assert.Equal(t, e.Mode, got.Mode)
	assert.Equal(t, e.FileSize, got.FileSize)

	var payload bytes.Buffer
	require.NoError(t, rd.CopyPayload(&payload, got))
	assert.Equal(t, "hello", payload.String())

	trailer, err := rd.Next()
	require.NoError(t, err)
	assert.True(t, trailer.IsTrailer())
}

func TestTrailerOnlyArchive(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(&buf)
	require.NoError(t, b.Finalize())

	rd := NewReader(bytes.NewReader(buf.Bytes()))
	e, err := rd.Next()
	require.NoError(t, err)
	assert.True(t, e.IsTrailer())
}

func TestBuilderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(&buf)
	b.AddEntry(Entry{Name: "h.txt", Mode: 0o100644, Nlink: 1, FileSize: 5}, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader([]byte("hello"))), nil
	})
	require.NoError(t, b.Finalize())

	rd := NewReader(bytes.NewReader(buf.Bytes()))
	e, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, "h.txt", e.Name)

	var got bytes.Buffer
	require.NoError(t, rd.CopyPayload(&got, e))
	assert.Equal(t, "hello", got.String())

	trailer, err := rd.Next()
	require.NoError(t, err)
	assert.True(t, trailer.IsTrailer())
}

func TestHeaderAlignsTo4(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(Entry{Name: "abc", Nlink: 1}))
	assert.Zero(t, buf.Len()%4)
}

func TestPayloadAlignsTo4(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	e := Entry{Name: "abc", Nlink: 1, FileSize: 5}
	require.NoError(t, w.WriteHeader(e))
	require.NoError(t, w.WritePayload(bytes.NewReader([]byte("hello")), e))
	assert.Zero(t, buf.Len()%4)
}

func TestDeviceMajorMinorMasks(t *testing.T) {
	packed := PackDevice(7, 250)
	assert.Equal(t, uint32(7), DeviceMajor(packed))
	assert.Equal(t, uint32(250), DeviceMinor(packed))
}

func TestRejectsBadMagic(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("zzzzzz"))).Next()
	assert.Error(t, err)
}

func TestRejectsOversizedNameBeforeAllocating(t *testing.T) {
	var header bytes.Buffer
	header.WriteString(magic)
	fields := [13]uint32{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, MaxNameSize + 1, 0}
	for _, f := range fields {
		require.NoError(t, wire.WriteHexUint32(&header, f))
	}
	_, err := NewReader(bytes.NewReader(header.Bytes())).Next()
	assert.Error(t, err)
}

func TestRejectsOversizedFileSizeBeforeAllocating(t *testing.T) {
	var header bytes.Buffer
	header.WriteString(magic)
	fields := [13]uint32{0, 0, 0, 0, 1, 0, MaxFileSize + 1, 0, 0, 0, 0, 1, 0}
	for _, f := range fields {
		require.NoError(t, wire.WriteHexUint32(&header, f))
	}
	header.WriteByte(0) // 1-byte NUL name
	header.Write(make([]byte, wire.PadLen(6+1, 4)))
	_, err := NewReader(bytes.NewReader(header.Bytes())).Next()
	assert.Error(t, err)
}

func TestAcceptsBoundaryNameAndFileSize(t *testing.T) {
	name := make([]byte, MaxNameSize-1)
	for i := range name {
		name[i] = 'a'
	}
	e := Entry{Name: string(name), Nlink: 1, FileSize: MaxFileSize}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(e))

	rd := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, e.Name, got.Name)
	assert.Equal(t, uint32(MaxFileSize), got.FileSize)
}
