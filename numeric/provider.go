package numeric

import (
	"cmp"
	"math/bits"
	"strconv"
)

// Provider supplies the arithmetic and bitwise semantics of one encoding for
// values of T. Implementations are stateless and reproduce the wraparound
// behavior of the fixed-width type they model.
type Provider[T comparable] interface {
	Kind() Kind
	Zero() T
	One() T
	Add(a, b T) T
	Subtract(a, b T) T
	And(a, b T) T
	Or(a, b T) T
	ShiftLeft(v T, n int) T
	Compare(a, b T) int
	Equals(a, b T) bool
	// BitCount returns the number of set bits in v.
	BitCount(v T) int
	FromSmallInt(n int) T
	// IsNegative reports whether v has the sign bit set in a signed encoding.
	IsNegative(v T) bool
	// Format renders v in its canonical decimal (or boolean) text form.
	Format(v T) string
}

// Integer is the set of Go types whose values can be handled by an integer
// provider. The platform-width members are accepted by the constraint so that
// such types can be rejected at runtime with a descriptive error.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int | ~uint | ~uintptr
}

// ForInteger returns the provider of kind k for T. It fails for the boolean
// kind and for kinds that are not supported.
func ForInteger[T Integer](k Kind) (Provider[T], bool) {
	if !k.Valid() || k == Bool {
		return nil, false
	}
	return integer[T]{kind: k, mask: widthMask(k.Bits())}, true
}

// ForInt8 returns the signed 8-bit provider.
func ForInt8[T ~int8]() Provider[T] { return integer[T]{kind: Int8, mask: widthMask(8)} }

// ForInt16 returns the signed 16-bit provider.
func ForInt16[T ~int16]() Provider[T] { return integer[T]{kind: Int16, mask: widthMask(16)} }

// ForInt32 returns the signed 32-bit provider.
func ForInt32[T ~int32]() Provider[T] { return integer[T]{kind: Int32, mask: widthMask(32)} }

// ForInt64 returns the signed 64-bit provider.
func ForInt64[T ~int64]() Provider[T] { return integer[T]{kind: Int64, mask: widthMask(64)} }

// ForUint8 returns the unsigned 8-bit provider.
func ForUint8[T ~uint8]() Provider[T] { return integer[T]{kind: Uint8, mask: widthMask(8)} }

// ForUint16 returns the unsigned 16-bit provider.
func ForUint16[T ~uint16]() Provider[T] { return integer[T]{kind: Uint16, mask: widthMask(16)} }

// ForUint32 returns the unsigned 32-bit provider.
func ForUint32[T ~uint32]() Provider[T] { return integer[T]{kind: Uint32, mask: widthMask(32)} }

// ForUint64 returns the unsigned 64-bit provider.
func ForUint64[T ~uint64]() Provider[T] { return integer[T]{kind: Uint64, mask: widthMask(64)} }

// ForChar16 returns the UTF-16 code unit provider.
func ForChar16[T ~uint16]() Provider[T] { return integer[T]{kind: Char16, mask: widthMask(16)} }

// ForBool returns the boolean provider.
func ForBool[T ~bool]() Provider[T] { return boolean[T]{} }

func widthMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

type integer[T Integer] struct {
	kind Kind
	mask uint64
}

func (p integer[T]) Kind() Kind            { return p.kind }
func (integer[T]) Zero() T                 { return 0 }
func (integer[T]) One() T                  { return 1 }
func (integer[T]) Add(a, b T) T            { return a + b }
func (integer[T]) Subtract(a, b T) T       { return a - b }
func (integer[T]) And(a, b T) T            { return a & b }
func (integer[T]) Or(a, b T) T             { return a | b }
func (integer[T]) Compare(a, b T) int      { return cmp.Compare(a, b) }
func (integer[T]) Equals(a, b T) bool      { return a == b }
func (integer[T]) FromSmallInt(n int) T    { return T(n) }
func (integer[T]) IsNegative(v T) bool     { return v < 0 }
func (integer[T]) ShiftLeft(v T, n int) T  { return v << uint(n) }
func (p integer[T]) BitCount(v T) int      { return bits.OnesCount64(uint64(v) & p.mask) }

func (p integer[T]) Format(v T) string {
	if p.kind.Signed() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// boolean models a one-bit unsigned integer: addition wraps (1+1 == 0) and any
// shift past the single bit yields zero.
type boolean[T ~bool] struct{}

func (boolean[T]) Kind() Kind         { return Bool }
func (boolean[T]) Zero() T            { return false }
func (boolean[T]) One() T             { return true }
func (boolean[T]) Add(a, b T) T       { return a != b }
func (boolean[T]) Subtract(a, b T) T  { return a != b }
func (boolean[T]) And(a, b T) T       { return a && b }
func (boolean[T]) Or(a, b T) T        { return a || b }
func (boolean[T]) Equals(a, b T) bool { return a == b }
func (boolean[T]) IsNegative(T) bool  { return false }
func (boolean[T]) FromSmallInt(n int) T {
	return n&1 == 1
}

func (boolean[T]) ShiftLeft(v T, n int) T {
	if n == 0 {
		return v
	}
	return false
}

func (boolean[T]) Compare(a, b T) int {
	switch {
	case a == b:
		return 0
	case !bool(a):
		return -1
	}
	return 1
}

func (boolean[T]) BitCount(v T) int {
	if v {
		return 1
	}
	return 0
}

func (boolean[T]) Format(v T) string {
	return strconv.FormatBool(bool(v))
}
