/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/holocm/rpmkit/internal/common"
	"github.com/holocm/rpmkit/internal/wire"
)

const headerLeadMagic0, headerLeadMagic1, headerLeadMagic2, headerLeadMagic3 = 0x8e, 0xad, 0xe8, 0x01

// indexEntry is the 16-byte on-disk index record (spec.md §3 "Index entry").
type indexEntry struct {
	Tag, Type, Offset, Count uint32
}

// TagStore is a generic, typed, offset-addressed tag-to-Value mapping
// parameterized over the closed tag namespace N (SignatureNamespace or
// MetadataNamespace), as specified in spec.md §4.C. Insertion order is not
// significant for reads; WriteStore emits entries in ascending tag-id order
// and assigns data offsets sequentially in that order.
type TagStore[N TagNamespace] struct {
	Values map[uint32]Value
}

// NewTagStore returns an empty TagStore.
func NewTagStore[N TagNamespace]() *TagStore[N] {
	return &TagStore[N]{Values: make(map[uint32]Value)}
}

// Equal reports whether s and other hold the same tag -> Value mapping,
// used by the round-trip tests required by spec.md §8.
func (s *TagStore[N]) Equal(other *TagStore[N]) bool {
	if len(s.Values) != len(other.Values) {
		return false
	}
	for tag, v := range s.Values {
		ov, ok := other.Values[tag]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ReadStore implements spec.md §4.C's read_store: read a header lead,
// nindex index entries (sorted ascending by offset), exactly hsize bytes of
// data blob, then decode each entry's Value using the sorted-next-offset as
// the terminator for variable-length variants.
func ReadStore[N TagNamespace](r io.Reader) (*TagStore[N], error) {
	var namer N

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("rpm: reading %s header lead: %w", namer.Label(), err)
	}
	if magic != [4]byte{headerLeadMagic0, headerLeadMagic1, headerLeadMagic2, headerLeadMagic3} {
		return nil, fmt.Errorf("rpm: %s header lead has bad magic %x: %w", namer.Label(), magic, common.ErrInvalidData)
	}
	if _, err := io.CopyN(io.Discard, r, 4); err != nil { // 4 reserved bytes
		return nil, fmt.Errorf("rpm: reading %s header lead: %w", namer.Label(), err)
	}
	nindex, err := wire.ReadUint32(r)
	if err != nil {
		return nil, fmt.Errorf("rpm: reading %s nindex: %w", namer.Label(), err)
	}
	hsize, err := wire.ReadUint32(r)
	if err != nil {
		return nil, fmt.Errorf("rpm: reading %s hsize: %w", namer.Label(), err)
	}

	entries := make([]indexEntry, nindex)
	for i := range entries {
		tag, err := wire.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("rpm: reading %s index entry %d: %w", namer.Label(), i, err)
		}
		typ, err := wire.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("rpm: reading %s index entry %d: %w", namer.Label(), i, err)
		}
		offset, err := wire.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("rpm: reading %s index entry %d: %w", namer.Label(), i, err)
		}
		count, err := wire.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("rpm: reading %s index entry %d: %w", namer.Label(), i, err)
		}
		entries[i] = indexEntry{Tag: tag, Type: typ, Offset: offset, Count: count}
	}

	data := make([]byte, hsize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("rpm: reading %s data blob: %w", namer.Label(), err)
	}

	sorted := make([]indexEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	store := NewTagStore[N]()
	for i, e := range sorted {
		terminator := uint32(len(data))
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Offset > e.Offset {
				terminator = sorted[j].Offset
				break
			}
		}
		v, err := decodeValue(e, data, terminator)
		if err != nil {
			return nil, fmt.Errorf("rpm: decoding %s tag %d: %w", namer.Label(), e.Tag, err)
		}

		if _, ok := namer.SymbolicName(e.Tag); !ok {
			common.Logger.WithFields(map[string]interface{}{
				"tag":       e.Tag,
				"namespace": namer.Label(),
			}).Warn("rpm: unknown tag id on read, tolerated")
		}
		if _, dup := store.Values[e.Tag]; dup {
			common.Logger.WithFields(map[string]interface{}{
				"tag":       e.Tag,
				"namespace": namer.Label(),
			}).Warn("rpm: duplicate tag id on read, last occurrence wins")
		}
		store.Values[e.Tag] = v
	}
	return store, nil
}

// decodeValue decodes the Value named by index entry e out of data, using
// terminator as the end offset for variable-length variants (the next
// higher index offset, or len(data) for the last entry by offset).
func decodeValue(e indexEntry, data []byte, terminator uint32) (Value, error) {
	switch Kind(e.Type) {
	case KindNull:
		return NewNull(), nil
	case KindChar:
		vals, err := decodeFixedWidthInts(data, e.Offset, e.Count, 4)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindChar, ints: vals}, nil
	case KindInt8:
		vals, err := decodeFixedWidthInts(data, e.Offset, e.Count, 1)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt8, ints: vals}, nil
	case KindInt16:
		vals, err := decodeFixedWidthInts(data, e.Offset, e.Count, 2)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt16, ints: vals}, nil
	case KindInt32:
		vals, err := decodeFixedWidthInts(data, e.Offset, e.Count, 4)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt32, ints: vals}, nil
	case KindInt64:
		vals, err := decodeFixedWidthInts(data, e.Offset, e.Count, 8)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt64, ints: vals}, nil
	case KindString:
		s, err := decodeNULString(data, e.Offset, terminator)
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil
	case KindI18nString:
		s, err := decodeNULString(data, e.Offset, terminator)
		if err != nil {
			return Value{}, err
		}
		return NewI18nString(s), nil
	case KindBin:
		end := e.Offset + e.Count
		if end < e.Offset || int(end) > len(data) {
			return Value{}, fmt.Errorf("bin value out of bounds: %w", common.ErrInvalidData)
		}
		return NewBin(data[e.Offset:end]), nil
	case KindStringArray:
		if int(terminator) > len(data) || terminator < e.Offset {
			return Value{}, fmt.Errorf("string array out of bounds: %w", common.ErrInvalidData)
		}
		strs := make([]string, 0, e.Count)
		off := e.Offset
		for i := uint32(0); i < e.Count; i++ {
			s, next, err := decodeOneNULString(data, off, terminator)
			if err != nil {
				return Value{}, err
			}
			strs = append(strs, s)
			off = next
		}
		return NewStringArray(strs), nil
	default:
		// Unknown type id: tolerated per spec.md §4.B, mapped to Null.
		return NewNull(), nil
	}
}

func decodeFixedWidthInts(data []byte, offset, count uint32, width int) ([]int64, error) {
	need := uint64(offset) + uint64(count)*uint64(width)
	if need > uint64(len(data)) {
		return nil, fmt.Errorf("integer array out of bounds: %w", common.ErrInvalidData)
	}
	vals := make([]int64, count)
	for i := uint32(0); i < count; i++ {
		start := offset + i*uint32(width)
		var v uint64
		for j := 0; j < width; j++ {
			v = v<<8 | uint64(data[int(start)+j])
		}
		vals[i] = signExtend(v, width)
	}
	return vals, nil
}

func signExtend(v uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(v))
	case 2:
		return int64(int16(v))
	case 4:
		return int64(int32(v))
	default:
		return int64(v)
	}
}

func decodeNULString(data []byte, offset, terminator uint32) (string, error) {
	if int(offset) > len(data) || terminator > uint32(len(data)) || terminator < offset {
		return "", fmt.Errorf("string out of bounds: %w", common.ErrInvalidData)
	}
	region := data[offset:terminator]
	idx := bytes.IndexByte(region, 0)
	if idx < 0 {
		return string(region), nil
	}
	return string(region[:idx]), nil
}

// decodeOneNULString decodes one NUL-terminated string starting at offset,
// not crossing limit, and returns the offset just past its NUL terminator.
func decodeOneNULString(data []byte, offset, limit uint32) (string, uint32, error) {
	if int(offset) > len(data) || limit > uint32(len(data)) || limit < offset {
		return "", 0, fmt.Errorf("string array element out of bounds: %w", common.ErrInvalidData)
	}
	region := data[offset:limit]
	idx := bytes.IndexByte(region, 0)
	if idx < 0 {
		return "", 0, fmt.Errorf("string array element has no NUL terminator: %w", common.ErrInvalidData)
	}
	return string(region[:idx]), offset + uint32(idx) + 1, nil
}

// WriteStore implements spec.md §4.C's write_store: build index and data
// buffers, emit a header lead, the indexes, then the data, then pad the
// sink to the next 8-byte boundary (measured from this call's own byte
// count, which is equivalent to the absolute stream position because
// everything written before any TagStore is itself always 8-aligned).
func WriteStore[N TagNamespace](w io.Writer, s *TagStore[N]) error {
	var namer N

	tags := make([]uint32, 0, len(s.Values))
	for tag := range s.Values {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	var data bytes.Buffer
	entries := make([]indexEntry, 0, len(tags))
	for _, tag := range tags {
		v := s.Values[tag]
		typeID, ok := typeIDForKind(v.Kind)
		if !ok {
			return fmt.Errorf("rpm: tag %d has unrepresentable kind %s: %w", tag, v.Kind, common.ErrInvalidInput)
		}
		offset := uint32(data.Len())
		count := uint32(v.Count())
		if v.Kind == KindNull {
			offset = 0
			count = 1
		} else if err := encodeValue(&data, v); err != nil {
			return fmt.Errorf("rpm: encoding tag %d: %w", tag, err)
		}
		entries = append(entries, indexEntry{Tag: tag, Type: typeID, Offset: offset, Count: count})
	}

	nindex := uint32(len(entries))
	hsize := uint32(data.Len())

	var buf bytes.Buffer
	buf.Write([]byte{headerLeadMagic0, headerLeadMagic1, headerLeadMagic2, headerLeadMagic3})
	buf.Write([]byte{0, 0, 0, 0})
	if err := wire.WriteUint32(&buf, nindex); err != nil {
		return err
	}
	if err := wire.WriteUint32(&buf, hsize); err != nil {
		return err
	}
	for _, e := range entries {
		if err := wire.WriteUint32(&buf, e.Tag); err != nil {
			return err
		}
		if err := wire.WriteUint32(&buf, e.Type); err != nil {
			return err
		}
		if err := wire.WriteUint32(&buf, e.Offset); err != nil {
			return err
		}
		if err := wire.WriteUint32(&buf, e.Count); err != nil {
			return err
		}
	}
	buf.Write(data.Bytes())

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("rpm: writing %s store: %w", namer.Label(), err)
	}
	if _, err := wire.AlignPad(w, buf.Len(), 8); err != nil {
		return fmt.Errorf("rpm: writing %s store padding: %w", namer.Label(), err)
	}
	return nil
}

func typeIDForKind(k Kind) (uint32, bool) {
	switch k {
	case KindNull, KindChar, KindInt8, KindInt16, KindInt32, KindInt64,
		KindString, KindBin, KindStringArray, KindI18nString:
		return uint32(k), true
	default:
		return 0, false
	}
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind {
	case KindChar, KindInt8, KindInt16, KindInt32, KindInt64:
		width := v.Kind.elementSize()
		for _, n := range v.ints {
			u := uint64(n)
			for i := width - 1; i >= 0; i-- {
				buf.WriteByte(byte(u >> (8 * i)))
			}
		}
		return nil
	case KindString, KindI18nString:
		buf.WriteString(v.str)
		buf.WriteByte(0)
		return nil
	case KindBin:
		buf.Write(v.bin)
		return nil
	case KindStringArray:
		for _, s := range v.strs {
			buf.WriteString(s)
			buf.WriteByte(0)
		}
		return nil
	default:
		return nil
	}
}
