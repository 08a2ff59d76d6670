/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Kind identifies which of the ten typed-value variants a Value holds. The
// numeric values double as the on-disk RPM type id (see typeIDForKind), matching
// the canonical mapping named in spec.md §4.B: String -> 6, Bin -> 7,
// StringArray -> 8, I18nString -> 9.
type Kind uint32

const (
	KindNull Kind = iota
	KindChar
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindString
	KindBin
	KindStringArray
	KindI18nString
)

// String gives a human-readable name for debugging and log output.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindChar:
		return "Char"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindString:
		return "String"
	case KindBin:
		return "Bin"
	case KindStringArray:
		return "StringArray"
	case KindI18nString:
		return "I18nString"
	default:
		return "Unknown"
	}
}

// elementSize returns the on-disk width, in bytes, of one element of a
// fixed-width numeric Kind. It is meaningless for String/Bin/StringArray/
// I18nString, which are variable-length.
func (k Kind) elementSize() int {
	switch k {
	case KindChar, KindInt8:
		// Char occupies 4 bytes on disk for historical reasons (spec.md §3),
		// even though Int8 itself is one byte.
		if k == KindChar {
			return 4
		}
		return 1
	case KindInt16:
		return 2
	case KindInt32:
		return 4
	case KindInt64:
		return 8
	default:
		return 0
	}
}

// isFixedWidthInt reports whether k is one of the integer-scalar kinds
// (Int8/16/32/64), excluding Char, which has its own dedicated accessor.
func (k Kind) isFixedWidthInt() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// Value is a tagged union over the ten RPM value variants. Exactly one of
// the payload fields is meaningful, selected by Kind. Construct values with
// the New* constructors rather than building a Value literal directly.
type Value struct {
	Kind Kind
	ints []int64  // Char (len 1), Int8/16/32/64 (scalar or array)
	str  string   // String, I18nString
	strs []string // StringArray
	bin  []byte   // Bin
}

// NewNull returns the Null value.
func NewNull() Value { return Value{Kind: KindNull} }

// NewChar returns a Char value holding the given code point.
func NewChar(r rune) Value { return Value{Kind: KindChar, ints: []int64{int64(r)}} }

// NewInt8 returns a scalar Int8 value.
func NewInt8(v int8) Value { return Value{Kind: KindInt8, ints: []int64{int64(v)}} }

// NewInt8Array returns an array Int8 value.
func NewInt8Array(vs []int8) Value {
	ints := make([]int64, len(vs))
	for i, v := range vs {
		ints[i] = int64(v)
	}
	return Value{Kind: KindInt8, ints: ints}
}

// NewInt16 returns a scalar Int16 value.
func NewInt16(v int16) Value { return Value{Kind: KindInt16, ints: []int64{int64(v)}} }

// NewInt16Array returns an array Int16 value.
func NewInt16Array(vs []int16) Value {
	ints := make([]int64, len(vs))
	for i, v := range vs {
		ints[i] = int64(v)
	}
	return Value{Kind: KindInt16, ints: ints}
}

// NewInt32 returns a scalar Int32 value.
func NewInt32(v int32) Value { return Value{Kind: KindInt32, ints: []int64{int64(v)}} }

// NewInt32Array returns an array Int32 value.
func NewInt32Array(vs []int32) Value {
	ints := make([]int64, len(vs))
	for i, v := range vs {
		ints[i] = int64(v)
	}
	return Value{Kind: KindInt32, ints: ints}
}

// NewInt64 returns a scalar Int64 value.
func NewInt64(v int64) Value { return Value{Kind: KindInt64, ints: []int64{v}} }

// NewInt64Array returns an array Int64 value.
func NewInt64Array(vs []int64) Value {
	ints := make([]int64, len(vs))
	copy(ints, vs)
	return Value{Kind: KindInt64, ints: ints}
}

// NewString returns a String value.
func NewString(s string) Value { return Value{Kind: KindString, str: s} }

// NewI18nString returns an I18nString value.
func NewI18nString(s string) Value { return Value{Kind: KindI18nString, str: s} }

// NewBin returns a Bin value.
func NewBin(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{Kind: KindBin, bin: cp}
}

// NewStringArray returns a StringArray value.
func NewStringArray(ss []string) Value {
	cp := make([]string, len(ss))
	copy(cp, ss)
	return Value{Kind: KindStringArray, strs: cp}
}

// Count returns the element count this value would be written with: the
// number of NUL-separated strings for StringArray, the byte length for Bin,
// 1 for String/I18nString/Null, and len(ints) for Char/Int8/16/32/64.
func (v Value) Count() int {
	switch v.Kind {
	case KindNull:
		return 1
	case KindString, KindI18nString:
		return 1
	case KindBin:
		return len(v.bin)
	case KindStringArray:
		return len(v.strs)
	default:
		return len(v.ints)
	}
}

// AsString implements spec.md §4.B's as_string accessor: it succeeds for
// String, I18nString, Char, Null (empty), Bin (hex dump, a debug-oriented
// convenience per spec.md §9 — do not rely on it in round-trip contexts),
// and all integer scalars (decimal); for StringArray it joins elements with
// a comma.
func (v Value) AsString() (string, bool) {
	switch v.Kind {
	case KindString, KindI18nString:
		return v.str, true
	case KindChar:
		if len(v.ints) != 1 {
			return "", false
		}
		return string(rune(v.ints[0])), true
	case KindNull:
		return "", true
	case KindBin:
		return hex.EncodeToString(v.bin), true
	case KindStringArray:
		return strings.Join(v.strs, ","), true
	case KindInt8, KindInt16, KindInt32, KindInt64:
		if len(v.ints) != 1 {
			return "", false
		}
		return strconv.FormatInt(v.ints[0], 10), true
	default:
		return "", false
	}
}

// AsStringArray succeeds only for StringArray.
func (v Value) AsStringArray() ([]string, bool) {
	if v.Kind != KindStringArray {
		return nil, false
	}
	out := make([]string, len(v.strs))
	copy(out, v.strs)
	return out, true
}

// AsChar succeeds only for Char.
func (v Value) AsChar() (rune, bool) {
	if v.Kind != KindChar || len(v.ints) != 1 {
		return 0, false
	}
	return rune(v.ints[0]), true
}

// AsBin succeeds only for Bin.
func (v Value) AsBin() ([]byte, bool) {
	if v.Kind != KindBin {
		return nil, false
	}
	out := make([]byte, len(v.bin))
	copy(out, v.bin)
	return out, true
}

func (v Value) scalarInt() (int64, bool) {
	if !v.Kind.isFixedWidthInt() || len(v.ints) != 1 {
		return 0, false
	}
	return v.ints[0], true
}

// AsU8 succeeds when v is an integer scalar whose value fits in a uint8
// without narrowing loss. It never silently truncates: a value that does
// not fit returns (0, false) rather than the low 8 bits.
func (v Value) AsU8() (uint8, bool) {
	n, ok := v.scalarInt()
	if !ok || n < 0 || n > int64(^uint8(0)) {
		return 0, false
	}
	return uint8(n), true
}

// AsU16 succeeds when v is an integer scalar whose value fits in a uint16.
func (v Value) AsU16() (uint16, bool) {
	n, ok := v.scalarInt()
	if !ok || n < 0 || n > int64(^uint16(0)) {
		return 0, false
	}
	return uint16(n), true
}

// AsU32 succeeds when v is an integer scalar whose value fits in a uint32.
func (v Value) AsU32() (uint32, bool) {
	n, ok := v.scalarInt()
	if !ok || n < 0 || n > int64(^uint32(0)) {
		return 0, false
	}
	return uint32(n), true
}

// AsU64 succeeds when v is an integer scalar whose value is non-negative
// (any int64 >= 0 fits in a uint64).
func (v Value) AsU64() (uint64, bool) {
	n, ok := v.scalarInt()
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

// AsI64 succeeds when v is any integer scalar; int64 is the widest signed
// width so this conversion always succeeds for Int8/16/32/64.
func (v Value) AsI64() (int64, bool) {
	return v.scalarInt()
}

func (v Value) arrayInts() ([]int64, bool) {
	if !v.Kind.isFixedWidthInt() {
		return nil, false
	}
	return v.ints, true
}

// AsU8Array is the widening array conversion for AsU8.
func (v Value) AsU8Array() ([]uint8, bool) {
	ints, ok := v.arrayInts()
	if !ok {
		return nil, false
	}
	out := make([]uint8, len(ints))
	for i, n := range ints {
		if n < 0 || n > int64(^uint8(0)) {
			return nil, false
		}
		out[i] = uint8(n)
	}
	return out, true
}

// AsU16Array is the widening array conversion for AsU16.
func (v Value) AsU16Array() ([]uint16, bool) {
	ints, ok := v.arrayInts()
	if !ok {
		return nil, false
	}
	out := make([]uint16, len(ints))
	for i, n := range ints {
		if n < 0 || n > int64(^uint16(0)) {
			return nil, false
		}
		out[i] = uint16(n)
	}
	return out, true
}

// AsU32Array is the widening array conversion for AsU32.
func (v Value) AsU32Array() ([]uint32, bool) {
	ints, ok := v.arrayInts()
	if !ok {
		return nil, false
	}
	out := make([]uint32, len(ints))
	for i, n := range ints {
		if n < 0 || n > int64(^uint32(0)) {
			return nil, false
		}
		out[i] = uint32(n)
	}
	return out, true
}

// AsU64Array is the widening array conversion for AsU64.
func (v Value) AsU64Array() ([]uint64, bool) {
	ints, ok := v.arrayInts()
	if !ok {
		return nil, false
	}
	out := make([]uint64, len(ints))
	for i, n := range ints {
		if n < 0 {
			return nil, false
		}
		out[i] = uint64(n)
	}
	return out, true
}

// Equal reports whether v and other hold the same Kind and payload. Used by
// the round-trip tests required by spec.md §8.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindString, KindI18nString:
		return v.str == other.str
	case KindBin:
		return string(v.bin) == string(other.bin)
	case KindStringArray:
		if len(v.strs) != len(other.strs) {
			return false
		}
		for i := range v.strs {
			if v.strs[i] != other.strs[i] {
				return false
			}
		}
		return true
	default:
		if len(v.ints) != len(other.ints) {
			return false
		}
		for i := range v.ints {
			if v.ints[i] != other.ints[i] {
				return false
			}
		}
		return true
	}
}
