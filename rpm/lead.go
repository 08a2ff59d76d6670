/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

import (
	"fmt"
	"io"

	"github.com/holocm/rpmkit/internal/common"
)

// PackageKind is the Lead.Type enum (spec.md §3).
type PackageKind uint16

const (
	KindBinaryPackage PackageKind = 0
	KindSourcePackage PackageKind = 1
)

func (k PackageKind) String() string {
	switch k {
	case KindBinaryPackage:
		return "binary"
	case KindSourcePackage:
		return "source"
	default:
		return "invalid"
	}
}

// Version is the (major, minor) pair stored in the Lead. spec.md §3
// accepts exactly (3,0), (3,1), and (4,0).
type Version struct {
	Major, Minor uint8
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

func (v Version) valid() bool {
	switch v {
	case Version{3, 0}, Version{3, 1}, Version{4, 0}:
		return true
	default:
		return false
	}
}

const leadSize = 96
const leadNameVersionReleaseSize = 66

var leadMagic = [4]byte{0xed, 0xab, 0xee, 0xdb}

// Lead is the fixed 96-byte block identifying a file as an RPM (spec.md §3).
type Lead struct {
	Version            Version
	Kind               PackageKind
	Architecture       uint16
	NameVersionRelease string
	OperatingSystem    uint16
	SignatureType      uint16
}

// NewLead builds a Lead for a package about to be built, defaulting
// SignatureType to 5 ("signature section follows") as spec.md §3 states,
// and version to 3.0 following the teacher's own NewLead.
func NewLead(nameVersionRelease string, architecture, operatingSystem uint16, kind PackageKind) *Lead {
	return &Lead{
		Version:            Version{3, 0},
		Kind:               kind,
		Architecture:       architecture,
		NameVersionRelease: nameVersionRelease,
		OperatingSystem:    operatingSystem,
		SignatureType:      5,
	}
}

// ReadLead reads and validates the 96-byte lead.
func ReadLead(r io.Reader) (*Lead, error) {
	buf := make([]byte, leadSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("rpm: reading lead: %w", err)
	}

	var magic [4]byte
	copy(magic[:], buf[0:4])
	if magic != leadMagic {
		return nil, fmt.Errorf("rpm: lead has bad magic %x: %w", magic, common.ErrInvalidData)
	}

	v := Version{Major: buf[4], Minor: buf[5]}
	if !v.valid() {
		return nil, fmt.Errorf("rpm: unsupported lead version %s: %w", v, common.ErrUnsupported)
	}

	kindNum := uint16(buf[6])<<8 | uint16(buf[7])
	kind := PackageKind(kindNum)
	if kind != KindBinaryPackage && kind != KindSourcePackage {
		return nil, fmt.Errorf("rpm: lead has invalid package kind %d: %w", kindNum, common.ErrInvalidData)
	}

	arch := uint16(buf[8])<<8 | uint16(buf[9])

	nvr := buf[10 : 10+leadNameVersionReleaseSize]
	nulAt := len(nvr)
	for i, b := range nvr {
		if b == 0 {
			nulAt = i
			break
		}
	}

	os := uint16(buf[76])<<8 | uint16(buf[77])
	sigType := uint16(buf[78])<<8 | uint16(buf[79])

	return &Lead{
		Version:            v,
		Kind:               kind,
		Architecture:       arch,
		NameVersionRelease: string(nvr[:nulAt]),
		OperatingSystem:    os,
		SignatureType:      sigType,
	}, nil
}

// WriteTo writes the 96-byte lead.
func (l *Lead) WriteTo(w io.Writer) error {
	buf := make([]byte, leadSize)
	copy(buf[0:4], leadMagic[:])
	buf[4] = l.Version.Major
	buf[5] = l.Version.Minor
	buf[6] = byte(l.Kind >> 8)
	buf[7] = byte(l.Kind)
	buf[8] = byte(l.Architecture >> 8)
	buf[9] = byte(l.Architecture)

	nvr := []byte(l.NameVersionRelease)
	if len(nvr) > leadNameVersionReleaseSize-1 {
		nvr = nvr[:leadNameVersionReleaseSize-1]
	}
	copy(buf[10:10+leadNameVersionReleaseSize], nvr)
	// remainder of the 66-byte field, including the terminating NUL, is
	// already zero from make([]byte, ...).

	buf[76] = byte(l.OperatingSystem >> 8)
	buf[77] = byte(l.OperatingSystem)
	buf[78] = byte(l.SignatureType >> 8)
	buf[79] = byte(l.SignatureType)
	// buf[80:96] reserved, already zero.

	_, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("rpm: writing lead: %w", err)
	}
	return nil
}

// Equal reports whether l and other describe the same lead, for round-trip
// tests (spec.md §8).
func (l *Lead) Equal(other *Lead) bool {
	return l.Version == other.Version &&
		l.Kind == other.Kind &&
		l.Architecture == other.Architecture &&
		l.NameVersionRelease == other.NameVersionRelease &&
		l.OperatingSystem == other.OperatingSystem &&
		l.SignatureType == other.SignatureType
}
