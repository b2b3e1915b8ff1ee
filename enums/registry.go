package enums

import (
	"reflect"
	"sync"

	"github.com/yaroher/protoc-gen-enummeta/numeric"
	"go.uber.org/zap"
)

// registration is the per-type cache slot. once guards the single build; meta
// and err are written inside it and read only after it returns.
type registration struct {
	once   sync.Once
	source any // func() Declaration[E]
	meta   any // *Metadata[E]
	err    error
}

// registry maps reflect.Type to *registration. Entries are never removed.
var registry sync.Map

// Register associates a declaration source with E. The source runs at most
// once, on first access through Of, OfBool or Load. Registering a type that
// is already registered, or has already been accessed, is a no-op and
// reports false.
func Register[E comparable](source func() Declaration[E]) bool {
	if source == nil {
		return false
	}
	t := reflect.TypeFor[E]()
	_, loaded := registry.LoadOrStore(t, &registration{source: source})
	if loaded {
		log.Debug("enum already registered", zap.Stringer("type", t))
	}
	return !loaded
}

// Of returns the cached metadata of the integer-backed type E, building it on
// first access.
func Of[E numeric.Integer]() (*Metadata[E], error) {
	return resolve(Build[E])
}

// OfBool is Of for boolean-backed types.
func OfBool[E ~bool]() (*Metadata[E], error) {
	return resolve(BuildBool[E])
}

// MustOf is Of that panics on error. It suits package-level variables.
func MustOf[E numeric.Integer]() *Metadata[E] {
	m, err := Of[E]()
	if err != nil {
		panic(err)
	}
	return m
}

// MustOfBool is OfBool that panics on error.
func MustOfBool[E ~bool]() *Metadata[E] {
	m, err := OfBool[E]()
	if err != nil {
		panic(err)
	}
	return m
}

// Load registers source unless E already has one and returns the cached
// metadata.
func Load[E numeric.Integer](source func() Declaration[E]) (*Metadata[E], error) {
	Register(source)
	return Of[E]()
}

// LoadBool is Load for boolean-backed types.
func LoadBool[E ~bool](source func() Declaration[E]) (*Metadata[E], error) {
	Register(source)
	return OfBool[E]()
}

func resolve[E comparable](build func(Declaration[E]) (*Metadata[E], error)) (*Metadata[E], error) {
	t := reflect.TypeFor[E]()
	v, ok := registry.Load(t)
	if !ok {
		var zero E
		d, ok := any(zero).(Declarer[E])
		if !ok {
			return nil, &Error{Code: ErrCodeNotDeclared, Type: t.String()}
		}
		v, _ = registry.LoadOrStore(t, &registration{source: d.EnumDeclaration})
	}
	r := v.(*registration)
	r.once.Do(func() {
		source := r.source.(func() Declaration[E])
		r.meta, r.err = build(source())
		if r.err != nil {
			log.Warn("enum metadata build failed", zap.Stringer("type", t), zap.Error(r.err))
		}
	})
	if r.err != nil {
		return nil, r.err
	}
	return r.meta.(*Metadata[E]), nil
}

// reset empties the registry. Tests only.
func reset() {
	registry.Clear()
}
