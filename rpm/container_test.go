/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestContainer(t *testing.T, compressor string) []byte {
	t.Helper()

	lead := NewLead("testpkg-1.0-1", 1, 1, KindBinaryPackage)

	sig := NewTagStore[SignatureNamespace]()
	sig.Values[SigTagPayloadSize] = NewInt32(5)

	meta := NewTagStore[MetadataNamespace]()
	meta.Values[TagName] = NewString("testpkg")
	meta.Values[TagVersion] = NewString("1.0")
	if compressor != "" {
		meta.Values[TagPayloadCompressor] = NewString(compressor)
	}

	c := &Container{Lead: lead, Signature: sig, Metadata: meta}

	var buf bytes.Buffer
	require.NoError(t, c.WriteTo(&buf))

	pw, err := c.PayloadWriter(&buf)
	require.NoError(t, err)
	_, err = pw.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	return buf.Bytes()
}

func TestContainerOpenRoundTrip(t *testing.T) {
	raw := buildTestContainer(t, "gzip")

	c, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "testpkg-1.0-1", c.Lead.NameVersionRelease)

	name, ok := c.Metadata.Values[TagName].AsString()
	require.True(t, ok)
	assert.Equal(t, "testpkg", name)

	payload, err := c.PayloadReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer payload.Close()
	got, err := io.ReadAll(payload)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestContainerDefaultsToGzipWhenCompressorTagMissing(t *testing.T) {
	raw := buildTestContainer(t, "")

	c, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "gzip", c.payloadCompressorName())
}

func TestContainerUnknownCompressorFails(t *testing.T) {
	// PayloadWriter refuses "snappy" as well, so the head is written
	// directly and followed by raw bytes instead of a compressed payload.
	meta := NewTagStore[MetadataNamespace]()
	meta.Values[TagName] = NewString("testpkg")
	meta.Values[TagPayloadCompressor] = NewString("snappy")
	head := &Container{
		Lead:      NewLead("testpkg-1.0-1", 1, 1, KindBinaryPackage),
		Signature: NewTagStore[SignatureNamespace](),
		Metadata:  meta,
	}
	var buf bytes.Buffer
	require.NoError(t, head.WriteTo(&buf))
	buf.WriteString("hello")
	raw := buf.Bytes()

	c, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)

	_, err = c.PayloadReader(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestOpenRejectsUnsupportedLeadVersion(t *testing.T) {
	raw := buildTestContainer(t, "gzip")
	raw[4] = 2 // major = 2, minor = 0: not an accepted combination
	raw[5] = 0

	_, err := Open(bytes.NewReader(raw))
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported")
}

func TestContainerZstdDispatch(t *testing.T) {
	raw := buildTestContainer(t, "zstd")

	c, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)

	payload, err := c.PayloadReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer payload.Close()
	got, err := io.ReadAll(payload)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}
