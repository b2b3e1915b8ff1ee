package enums

import (
	"iter"
	"strings"
)

// MemberCount returns the number of members visited by sel.
func (m *Metadata[E]) MemberCount(sel Selection) int {
	if sel == Distinct {
		return len(m.primary)
	}
	return len(m.primary) + len(m.duplicates)
}

// FlagCount returns the number of declared single-bit values.
func (m *Metadata[E]) FlagCount() int {
	return m.num.BitCount(m.allFlags)
}

// FlagCountOf returns the number of declared flags set in v.
func (m *Metadata[E]) FlagCountOf(v E) int {
	return m.num.BitCount(m.num.And(v, m.allFlags))
}

// Member returns the canonical member carrying v.
func (m *Metadata[E]) Member(v E) (Member[E], error) {
	if i, ok := m.index[v]; ok {
		return m.primary[i].Member, nil
	}
	return Member[E]{}, m.notDefined(v)
}

// Name returns the name of the canonical member carrying v. Aliases never
// shadow the first declared name.
func (m *Metadata[E]) Name(v E) (string, bool) {
	if i, ok := m.index[v]; ok {
		return m.primary[i].Name, true
	}
	return "", false
}

// Members enumerates members in ascending value order. With All, aliases are
// interleaved after the canonical member of the same value.
func (m *Metadata[E]) Members(sel Selection) iter.Seq[Member[E]] {
	return func(yield func(Member[E]) bool) {
		for e := range m.entries(sel) {
			if !yield(e.Member) {
				return
			}
		}
	}
}

// Values enumerates member values; see Members.
func (m *Metadata[E]) Values(sel Selection) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range m.entries(sel) {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Names enumerates member names; see Members.
func (m *Metadata[E]) Names(sel Selection) iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := range m.entries(sel) {
			if !yield(e.Name) {
				return
			}
		}
	}
}

// entries merges the ascending primary and duplicate lists.
func (m *Metadata[E]) entries(sel Selection) iter.Seq[*entry[E]] {
	return func(yield func(*entry[E]) bool) {
		if sel == Distinct {
			for i := range m.primary {
				if !yield(&m.primary[i]) {
					return
				}
			}
			return
		}
		p, d := 0, 0
		for p < len(m.primary) || d < len(m.duplicates) {
			if d < len(m.duplicates) &&
				(p == len(m.primary) || m.num.Compare(m.duplicates[d].Value, m.primary[p].Value) < 0) {
				if !yield(&m.duplicates[d]) {
					return
				}
				d++
				continue
			}
			if !yield(&m.primary[p]) {
				return
			}
			p++
		}
	}
}

// Flags enumerates the declared single-bit values set in v, ascending.
func (m *Metadata[E]) Flags(v E) iter.Seq[E] {
	p := m.num
	valid := p.And(v, m.allFlags)
	// A negative value has its top bit set, so the walk has to run until the
	// candidate bit shifts out of the type.
	negative := p.IsNegative(valid)
	return func(yield func(E) bool) {
		zero := p.Zero()
		for bit := p.One(); !p.Equals(bit, zero); bit = p.ShiftLeft(bit, 1) {
			if !negative && p.Compare(bit, valid) > 0 {
				return
			}
			if m.HasAnyFlags(valid, bit) && !yield(bit) {
				return
			}
		}
	}
}

// mask ORs flags together, or returns AllFlags when none are given.
func (m *Metadata[E]) mask(flags []E) E {
	if len(flags) == 0 {
		return m.allFlags
	}
	out := m.num.Zero()
	for _, f := range flags {
		out = m.num.Or(out, f)
	}
	return out
}

// HasAllFlags reports whether every bit of flags is set in v. Without flags,
// v is tested against AllFlags.
func (m *Metadata[E]) HasAllFlags(v E, flags ...E) bool {
	want := m.mask(flags)
	return m.num.Equals(m.num.And(v, want), want)
}

// HasAnyFlags reports whether any bit of flags is set in v. Without flags,
// v is tested against AllFlags.
func (m *Metadata[E]) HasAnyFlags(v E, flags ...E) bool {
	want := m.mask(flags)
	return !m.num.Equals(m.num.And(v, want), m.num.Zero())
}

// IsDefined reports whether some member carries v.
func (m *Metadata[E]) IsDefined(v E) bool {
	if m.contiguous {
		return m.num.Compare(m.min, v) <= 0 && m.num.Compare(v, m.max) <= 0
	}
	_, ok := m.index[v]
	return ok
}

// IsValidFlagCombination reports whether v carries no bits outside AllFlags.
func (m *Metadata[E]) IsValidFlagCombination(v E) bool {
	return m.num.Equals(m.num.And(m.allFlags, v), v)
}

// Validate checks v against the type: flag types accept any combination of
// declared flags, other types only declared values.
func (m *Metadata[E]) Validate(v E) error {
	if m == nil {
		return &Error{Code: ErrCodeInvalidArgument, Detail: "nil metadata"}
	}
	if m.flags {
		if !m.IsValidFlagCombination(v) {
			return &Error{Code: ErrCodeInvalidFlagCombination, Type: m.name, Value: m.num.Format(v)}
		}
		return nil
	}
	if !m.IsDefined(v) {
		return m.notDefined(v)
	}
	return nil
}

// Format renders v as the canonical member name. A valid combination of a
// flag type renders as its flag names joined by ", "; anything else renders
// as decimal text.
func (m *Metadata[E]) Format(v E) string {
	if name, ok := m.Name(v); ok {
		return name
	}
	p := m.num
	if m.flags && !p.Equals(v, p.Zero()) && m.IsValidFlagCombination(v) {
		names := make([]string, 0, m.FlagCountOf(v))
		for bit := range m.Flags(v) {
			names = append(names, m.primary[m.index[bit]].Name)
		}
		return strings.Join(names, ", ")
	}
	return p.Format(v)
}

func (m *Metadata[E]) notDefined(v E) *Error {
	return &Error{Code: ErrCodeValueNotDefined, Type: m.name, Value: m.num.Format(v)}
}
