package enums

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/yaroher/protoc-gen-enummeta/logger"
	"github.com/yaroher/protoc-gen-enummeta/numeric"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

var log = logger.Named("enums")

// Build constructs the metadata of an integer-backed type from decl without
// consulting or populating the registry.
func Build[E numeric.Integer](decl Declaration[E]) (*Metadata[E], error) {
	kind, err := resolveKind(decl)
	if err != nil {
		return nil, err
	}
	p, ok := numeric.ForInteger[E](kind)
	if !ok {
		return nil, unsupported(decl, kind.String())
	}
	return build(decl, p), nil
}

// BuildBool is Build for boolean-backed types.
func BuildBool[E ~bool](decl Declaration[E]) (*Metadata[E], error) {
	if _, err := resolveKind(decl); err != nil {
		return nil, err
	}
	return build(decl, numeric.ForBool[E]()), nil
}

func typeName[E comparable](decl Declaration[E]) string {
	if decl.Name != "" {
		return decl.Name
	}
	return reflect.TypeFor[E]().String()
}

func unsupported[E comparable](decl Declaration[E], detail string) *Error {
	return &Error{
		Code:   ErrCodeUnsupportedUnderlyingType,
		Type:   typeName(decl),
		Detail: detail,
	}
}

// resolveKind detects the encoding of E and reconciles it with the kind the
// declaration asks for.
func resolveKind[E comparable](decl Declaration[E]) (numeric.Kind, error) {
	t := reflect.TypeFor[E]()
	detected, ok := numeric.KindOf(t)
	if !ok {
		return numeric.KindInvalid, unsupported(decl, fmt.Sprintf("underlying type %s", t.Kind()))
	}
	if !numeric.Compatible(detected, decl.Kind) {
		return numeric.KindInvalid, unsupported(decl,
			fmt.Sprintf("declared %s over underlying %s", decl.Kind, detected))
	}
	if decl.Kind != numeric.KindInvalid {
		return decl.Kind, nil
	}
	return detected, nil
}

func build[E comparable](decl Declaration[E], p numeric.Provider[E]) *Metadata[E] {
	m := &Metadata[E]{
		name:     typeName(decl),
		kind:     p.Kind(),
		flags:    decl.Flags,
		num:      p,
		index:    make(map[E]int, len(decl.Members)),
		min:      p.Zero(),
		max:      p.Zero(),
		allFlags: p.Zero(),
	}

	fold := cases.Fold()
	primary := make([]entry[E], 0, len(decl.Members))
	var duplicates []entry[E]
	for _, member := range decl.Members {
		e := entry[E]{
			Member: member,
			text:   p.Format(member.Value),
			folded: fold.String(member.Name),
		}
		if _, seen := m.index[member.Value]; seen {
			duplicates = append(duplicates, e)
			continue
		}
		m.index[member.Value] = len(primary)
		primary = append(primary, e)
		if p.BitCount(member.Value) == 1 {
			m.allFlags = p.Or(m.allFlags, member.Value)
		}
	}

	// Enumeration merges primary and duplicates by value, so primary must
	// iterate ascending.
	resorted := false
	for i := 1; i < len(primary); i++ {
		if p.Compare(primary[i-1].Value, primary[i].Value) > 0 {
			resorted = true
			break
		}
	}
	if resorted {
		sorted := slices.Clone(primary)
		slices.SortFunc(sorted, func(a, b entry[E]) int {
			return p.Compare(a.Value, b.Value)
		})
		primary = sorted
		for i := range primary {
			m.index[primary[i].Value] = i
		}
	}
	m.primary = primary

	if n := len(primary); n > 0 {
		m.min = primary[0].Value
		m.max = primary[n-1].Value
		// max-min+1 == count, evaluated in the type's own wraparound
		// arithmetic so a type covering its whole range still qualifies.
		span := p.Add(p.Subtract(m.max, m.min), p.One())
		m.contiguous = p.Equals(span, p.FromSmallInt(n))
	}

	slices.SortStableFunc(duplicates, func(a, b entry[E]) int {
		return p.Compare(a.Value, b.Value)
	})
	m.duplicates = slices.Clip(duplicates)

	log.Debug("metadata built",
		zap.String("type", m.name),
		zap.Stringer("kind", m.kind),
		zap.Bool("flags", m.flags),
		zap.Int("distinct", len(m.primary)),
		zap.Int("duplicates", len(m.duplicates)),
		zap.Bool("contiguous", m.contiguous),
		zap.Bool("resorted", resorted),
	)
	return m
}
