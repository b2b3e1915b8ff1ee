package numeric

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Int8, "int8"},
		{Uint64, "uint64"},
		{Bool, "bool"},
		{Char16, "char16"},
		{KindInvalid, "invalid"},
		{Kind(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestKindOf(t *testing.T) {
	type level int8
	type mask uint32
	type toggle bool
	type wide int

	tests := []struct {
		name string
		typ  reflect.Type
		kind Kind
		ok   bool
	}{
		{"named int8", reflect.TypeFor[level](), Int8, true},
		{"named uint32", reflect.TypeFor[mask](), Uint32, true},
		{"named bool", reflect.TypeFor[toggle](), Bool, true},
		{"int64", reflect.TypeFor[int64](), Int64, true},
		{"platform int", reflect.TypeFor[wide](), KindInvalid, false},
		{"uintptr", reflect.TypeFor[uintptr](), KindInvalid, false},
		{"string", reflect.TypeFor[string](), KindInvalid, false},
		{"nil", nil, KindInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.typ)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible(Uint16, KindInvalid))
	assert.True(t, Compatible(Uint16, Uint16))
	assert.True(t, Compatible(Uint16, Char16))
	assert.False(t, Compatible(Int16, Char16))
	assert.False(t, Compatible(Uint8, Int8))
}

func TestIntegerWraparound(t *testing.T) {
	i8 := ForInt8[int8]()
	assert.Equal(t, int8(-128), i8.Add(127, 1))
	assert.Equal(t, int8(127), i8.Subtract(-128, 1))
	assert.Equal(t, int8(-128), i8.ShiftLeft(1, 7))
	assert.Equal(t, int8(0), i8.ShiftLeft(1, 8))
	assert.Equal(t, int8(0), i8.FromSmallInt(256))

	u8 := ForUint8[uint8]()
	assert.Equal(t, uint8(0), u8.Add(255, 1))
	assert.Equal(t, uint8(255), u8.Subtract(0, 1))
	assert.Equal(t, uint8(0), u8.ShiftLeft(128, 1))

	u64 := ForUint64[uint64]()
	assert.Equal(t, uint64(1)<<63, u64.ShiftLeft(1, 63))
	assert.Equal(t, uint64(0), u64.ShiftLeft(1, 64))
}

func TestIntegerBitCount(t *testing.T) {
	i8 := ForInt8[int8]()
	assert.Equal(t, 8, i8.BitCount(-1))
	assert.Equal(t, 1, i8.BitCount(-128))
	assert.Equal(t, 0, i8.BitCount(0))

	i16 := ForInt16[int16]()
	assert.Equal(t, 16, i16.BitCount(-1))

	i32 := ForInt32[int32]()
	assert.Equal(t, 32, i32.BitCount(-1))
	assert.Equal(t, 3, i32.BitCount(7))

	i64 := ForInt64[int64]()
	assert.Equal(t, 64, i64.BitCount(-1))

	u32 := ForUint32[uint32]()
	assert.Equal(t, 2, u32.BitCount(0x80000001))
}

func TestIntegerCompareAndSign(t *testing.T) {
	i16 := ForInt16[int16]()
	assert.Equal(t, -1, i16.Compare(-5, 3))
	assert.Equal(t, 0, i16.Compare(3, 3))
	assert.Equal(t, 1, i16.Compare(3, -5))
	assert.True(t, i16.IsNegative(-1))
	assert.False(t, i16.IsNegative(0))

	u16 := ForUint16[uint16]()
	assert.False(t, u16.IsNegative(0xFFFF))
	assert.Equal(t, 1, u16.Compare(0xFFFF, 1))
}

func TestIntegerFormat(t *testing.T) {
	assert.Equal(t, "-128", ForInt8[int8]().Format(-128))
	assert.Equal(t, "255", ForUint8[uint8]().Format(255))
	assert.Equal(t, "18446744073709551615", ForUint64[uint64]().Format(^uint64(0)))
	assert.Equal(t, "65", ForChar16[uint16]().Format('A'))
}

func TestForInteger(t *testing.T) {
	p, ok := ForInteger[uint16](Char16)
	require.True(t, ok)
	assert.Equal(t, Char16, p.Kind())
	assert.Equal(t, uint16(0), p.Add(0xFFFF, 1))

	_, ok = ForInteger[uint8](Bool)
	assert.False(t, ok)
	_, ok = ForInteger[uint8](KindInvalid)
	assert.False(t, ok)
}

func TestBoolean(t *testing.T) {
	type flag bool
	p := ForBool[flag]()

	assert.Equal(t, Bool, p.Kind())
	assert.Equal(t, flag(false), p.Zero())
	assert.Equal(t, flag(true), p.One())
	assert.Equal(t, flag(false), p.Add(true, true))
	assert.Equal(t, flag(true), p.Add(true, false))
	assert.Equal(t, flag(true), p.Subtract(false, true))
	assert.Equal(t, flag(false), p.And(true, false))
	assert.Equal(t, flag(true), p.Or(true, false))
	assert.Equal(t, flag(true), p.ShiftLeft(true, 0))
	assert.Equal(t, flag(false), p.ShiftLeft(true, 1))
	assert.Equal(t, -1, p.Compare(false, true))
	assert.Equal(t, 1, p.Compare(true, false))
	assert.Equal(t, 0, p.Compare(true, true))
	assert.Equal(t, 1, p.BitCount(true))
	assert.Equal(t, 0, p.BitCount(false))
	assert.Equal(t, flag(true), p.FromSmallInt(3))
	assert.Equal(t, flag(false), p.FromSmallInt(2))
	assert.False(t, p.IsNegative(true))
	assert.Equal(t, "true", p.Format(true))
}

func TestFromInt64(t *testing.T) {
	i8 := ForInt8[int8]()
	tests := []struct {
		name string
		in   int64
		want int8
		ok   bool
	}{
		{"zero", 0, 0, true},
		{"max", 127, 127, true},
		{"min", -128, -128, true},
		{"minus one", -1, -1, true},
		{"above", 128, 0, false},
		{"below", -129, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromInt64(i8, tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	u16 := ForUint16[uint16]()
	_, ok := FromInt64(u16, -1)
	assert.False(t, ok)
	got, ok := FromInt64(u16, 65535)
	assert.True(t, ok)
	assert.Equal(t, uint16(65535), got)

	i64 := ForInt64[int64]()
	n, ok := FromInt64(i64, math.MinInt64)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), n)
}

func TestFromUint64(t *testing.T) {
	u64 := ForUint64[uint64]()
	got, ok := FromUint64(u64, math.MaxUint64)
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), got)

	i64 := ForInt64[int64]()
	_, ok = FromUint64(i64, 1<<63)
	assert.False(t, ok)

	b := ForBool[bool]()
	v, ok := FromUint64(b, 1)
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = FromUint64(b, 2)
	assert.False(t, ok)
}
