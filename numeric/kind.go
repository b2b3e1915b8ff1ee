// Package numeric provides operation tables for the fixed-width encodings that
// can back an enumerated type.
package numeric

import (
	"fmt"
	"reflect"
)

// Kind identifies the underlying encoding of an enumerated type.
type Kind uint8

// Supported kinds. KindInvalid is the zero value and never backs a type.
const (
	KindInvalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Bool
	Char16 // UTF-16 code unit, stored as an unsigned 16-bit integer
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	Int8:        "int8",
	Int16:       "int16",
	Int32:       "int32",
	Int64:       "int64",
	Uint8:       "uint8",
	Uint16:      "uint16",
	Uint32:      "uint32",
	Uint64:      "uint64",
	Bool:        "bool",
	Char16:      "char16",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("unknown(%d)", k)
}

// Valid reports whether k is one of the supported encodings.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= Char16
}

// Bits returns the storage width of k in bits. Bool is one bit wide.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16, Char16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	case Bool:
		return 1
	}
	return 0
}

// Signed reports whether k is a two's complement signed encoding.
func (k Kind) Signed() bool {
	return k >= Int8 && k <= Int64
}

// KindOf maps a Go type to the kind of its underlying representation.
// Platform-width integers (int, uint, uintptr) have no fixed encoding and are
// reported as unsupported, as is every non-integer, non-boolean type.
func KindOf(t reflect.Type) (Kind, bool) {
	if t == nil {
		return KindInvalid, false
	}
	switch t.Kind() {
	case reflect.Int8:
		return Int8, true
	case reflect.Int16:
		return Int16, true
	case reflect.Int32:
		return Int32, true
	case reflect.Int64:
		return Int64, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Uint16:
		return Uint16, true
	case reflect.Uint32:
		return Uint32, true
	case reflect.Uint64:
		return Uint64, true
	case reflect.Bool:
		return Bool, true
	}
	return KindInvalid, false
}

// Compatible reports whether a type whose Go underlying kind is detected may be
// declared as the kind declared. The only reinterpretation allowed is a 16-bit
// unsigned integer carrying UTF-16 code units.
func Compatible(detected, declared Kind) bool {
	if declared == KindInvalid || declared == detected {
		return true
	}
	return detected == Uint16 && declared == Char16
}
