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

func TestLeadRoundTrip(t *testing.T) {
	l := NewLead("foo-1.2.3-1", 1, 1, KindBinaryPackage)

	var buf bytes.Buffer
	require.NoError(t, l.WriteTo(&buf))
	assert.Equal(t, leadSize, buf.Len())

	got, err := ReadLead(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, l.Equal(got))
}

func TestLeadRejectsBadMagic(t *testing.T) {
	buf := make([]byte, leadSize)
	copy(buf, []byte{0x00, 0x00, 0x00, 0x00})
	_, err := ReadLead(bytes.NewReader(buf))
	assert.Error(t, err)
}

func TestLeadRejectsUnsupportedVersion(t *testing.T) {
	buf := make([]byte, leadSize)
	copy(buf, leadMagic[:])
	buf[4] = 2 // major = 2, minor = 0: not an accepted combination
	buf[5] = 0
	_, err := ReadLead(bytes.NewReader(buf))
	assert.ErrorContains(t, err, "unsupported")
}

func TestLeadTruncatesOverlongName(t *testing.T) {
	longName := ""
	for i := 0; i < 100; i++ {
		longName += "x"
	}
	l := NewLead(longName, 1, 1, KindBinaryPackage)

	var buf bytes.Buffer
	require.NoError(t, l.WriteTo(&buf))

	got, err := ReadLead(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Len(t, got.NameVersionRelease, leadNameVersionReleaseSize-1)
}
