package enums

import "github.com/yaroher/protoc-gen-enummeta/numeric"

// Member is one named constant of an enumerated type.
type Member[E comparable] struct {
	Name  string
	Value E
}

// Selection chooses which members an enumeration visits.
type Selection uint8

const (
	// All visits canonical members and their aliases.
	All Selection = iota
	// Distinct visits one member per value, the first declared.
	Distinct
)

func (s Selection) String() string {
	switch s {
	case All:
		return "all"
	case Distinct:
		return "distinct"
	}
	return "unknown"
}

// Declaration describes an enumerated type: its members in declaration order,
// whether it is used as a bitmask, and optionally the encoding backing it.
//
// Name defaults to the Go type name. Kind defaults to the kind detected from
// the Go underlying type; set it to numeric.Char16 for uint16-backed types
// that carry UTF-16 code units.
type Declaration[E comparable] struct {
	Name    string
	Kind    numeric.Kind
	Flags   bool
	Members []Member[E]
}

// Declarer is implemented by enumerated types that describe themselves. The
// method is called on the zero value, at most once per process.
type Declarer[E comparable] interface {
	EnumDeclaration() Declaration[E]
}

// M builds a Member.
func M[E comparable](name string, value E) Member[E] {
	return Member[E]{Name: name, Value: value}
}
