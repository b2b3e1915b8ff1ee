package enums

import "github.com/yaroher/protoc-gen-enummeta/numeric"

// entry is a member together with the text forms the parser compares against.
type entry[E comparable] struct {
	Member[E]
	text   string // decimal form of Value
	folded string // case-folded Name
}

// Metadata is the immutable index built once per enumerated type. It is safe
// for concurrent use.
type Metadata[E comparable] struct {
	name  string
	kind  numeric.Kind
	flags bool
	num   numeric.Provider[E]

	// primary holds one entry per distinct value, ascending; index maps a
	// value to its position in primary.
	primary []entry[E]
	index   map[E]int
	// duplicates holds later-declared aliases of values in primary, ascending.
	duplicates []entry[E]

	min, max   E
	allFlags   E
	contiguous bool
}

// TypeName returns the name the type was declared under.
func (m *Metadata[E]) TypeName() string { return m.name }

// Kind returns the underlying encoding.
func (m *Metadata[E]) Kind() numeric.Kind { return m.kind }

// IsFlags reports whether the type is a bitmask.
func (m *Metadata[E]) IsFlags() bool { return m.flags }

// Min returns the smallest declared value, or zero for an empty type.
func (m *Metadata[E]) Min() E { return m.min }

// Max returns the largest declared value, or zero for an empty type.
func (m *Metadata[E]) Max() E { return m.max }

// AllFlags returns the union of every declared single-bit value.
func (m *Metadata[E]) AllFlags() E { return m.allFlags }

// IsContiguous reports whether the distinct values form an unbroken run from
// Min to Max.
func (m *Metadata[E]) IsContiguous() bool { return m.contiguous }

// Provider returns the numeric provider bound to the type.
func (m *Metadata[E]) Provider() numeric.Provider[E] { return m.num }
