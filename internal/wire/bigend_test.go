/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUint32(&buf, 0xDEADBEEF))
	got, err := ReadUint32(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), got)
}

func TestAlignPadLen(t *testing.T) {
	cases := []struct {
		length, n, want int
	}{
		{0, 8, 0},
		{1, 8, 7},
		{8, 8, 0},
		{9, 8, 7},
		{6, 4, 2},
		{4, 4, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PadLen(c.length, c.n))
	}
}

func TestAlignPadThenSkip(t *testing.T) {
	var buf bytes.Buffer
	n, err := buf.WriteString("abc")
	require.NoError(t, err)
	_ = n
	pad, err := AlignPad(&buf, buf.Len(), 8)
	require.NoError(t, err)
	assert.Equal(t, 5, pad)
	assert.Equal(t, 8, buf.Len())

	r := bytes.NewReader(buf.Bytes()[3:])
	require.NoError(t, AlignSkip(r, 3, 8))
	assert.Equal(t, 0, r.Len())
}

func TestHexUint32RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHexUint32(&buf, 0x1a2b3c4d))
	assert.Equal(t, "1a2b3c4d", buf.String())

	got, err := ReadHexUint32(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1a2b3c4d), got)
}

func TestReadHexUint32RejectsNonHex(t *testing.T) {
	_, err := ReadHexUint32(bytes.NewReader([]byte("zzzzzzzz")))
	assert.Error(t, err)
}
