/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/holocm/rpmkit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, name string) {
	t.Helper()

	var buf bytes.Buffer
	w, err := Create(name, &buf)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello, rpm"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := Open(name, &buf)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello, rpm", string(got))
}

func TestGzipRoundTrip(t *testing.T) {
	roundTrip(t, "gzip")
}

func TestZstdRoundTrip(t *testing.T) {
	roundTrip(t, "zstd")
}

func TestXzRoundTrip(t *testing.T) {
	roundTrip(t, "xz")
}

func TestLzmaRoundTrip(t *testing.T) {
	roundTrip(t, "lzma")
}

func TestOpenUnknownCompressorFails(t *testing.T) {
	_, err := Open("snappy", bytes.NewReader(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupported)
}

func TestCreateUnknownCompressorFails(t *testing.T) {
	_, err := Create("snappy", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupported)
}
