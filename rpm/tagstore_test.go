/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagStoreRoundTrip(t *testing.T) {
	s := NewTagStore[MetadataNamespace]()
	s.Values[TagName] = NewString("foo")
	s.Values[TagVersion] = NewString("1.2.3")
	s.Values[TagSize] = NewInt32(12345)
	s.Values[TagBuildTime] = NewInt64(1700000000)
	s.Values[TagProvideFlags] = NewInt32Array([]int32{1, 2, 3})

	var buf bytes.Buffer
	require.NoError(t, WriteStore[MetadataNamespace](&buf, s))

	got, err := ReadStore[MetadataNamespace](&buf)
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}

func TestTagStoreWriteAlignsTo8(t *testing.T) {
	s := NewTagStore[MetadataNamespace]()
	s.Values[TagName] = NewString("x")

	var buf bytes.Buffer
	require.NoError(t, WriteStore[MetadataNamespace](&buf, s))
	assert.Zero(t, buf.Len()%8)
}

func TestSingleBuildTimeEntryLiteralBytes(t *testing.T) {
	s := NewTagStore[MetadataNamespace]()
	s.Values[TagBuildTime] = NewInt32(0)

	var buf bytes.Buffer
	require.NoError(t, WriteStore[MetadataNamespace](&buf, s))

	want := []byte{
		0x8E, 0xAD, 0xE8, 0x01, // header lead magic
		0x00, 0x00, 0x00, 0x00, // reserved
		0x00, 0x00, 0x00, 0x01, // nindex = 1
		0x00, 0x00, 0x00, 0x04, // hsize = 4
	}
	require.GreaterOrEqual(t, buf.Len(), len(want))
	assert.Equal(t, want, buf.Bytes()[:len(want)])

	got, err := ReadStore[MetadataNamespace](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}

func TestTagStoreRoundTripsStringSharingOffsetWithNull(t *testing.T) {
	// TagName (1000) sorts and is written before TagEpoch (1003), so Name
	// lands at data offset 0; a Null value is always forced to offset 0
	// too (spec.md §4.C). Both index entries then share offset 0, and the
	// terminator computation for Name must not mistake Epoch's zero-width
	// Null entry for the end of Name's string.
	s := NewTagStore[MetadataNamespace]()
	s.Values[TagName] = NewString("foo")
	s.Values[TagEpoch] = NewNull()

	var buf bytes.Buffer
	require.NoError(t, WriteStore[MetadataNamespace](&buf, s))

	got, err := ReadStore[MetadataNamespace](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, s.Equal(got))

	name, ok := got.Values[TagName].AsString()
	require.True(t, ok)
	assert.Equal(t, "foo", name)
}

func TestReadStoreToleratesUnknownTagID(t *testing.T) {
	s := NewTagStore[MetadataNamespace]()
	s.Values[99999] = NewInt32(1)

	var buf bytes.Buffer
	require.NoError(t, WriteStore[MetadataNamespace](&buf, s))

	got, err := ReadStore[MetadataNamespace](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	v, ok := got.Values[99999]
	require.True(t, ok)
	n, ok := v.AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(1), n)
}

func TestWriteStoreRejectsUnrepresentableKind(t *testing.T) {
	s := NewTagStore[MetadataNamespace]()
	s.Values[TagName] = Value{Kind: Kind(999)}

	var buf bytes.Buffer
	err := WriteStore[MetadataNamespace](&buf, s)
	assert.Error(t, err)
}
