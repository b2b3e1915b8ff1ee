// Package protoenum feeds protobuf enum types into the enums engine.
//
// Generated enum types are described straight from their descriptors, so
// allow_alias values become aliases and declaration order is preserved.
// Dynamic descriptors, for which no Go type exists, are described over
// protoreflect.EnumNumber.
package protoenum

import (
	"strings"

	"github.com/yaroher/protoc-gen-enummeta/enums"
	"github.com/yaroher/protoc-gen-enummeta/internal/help"
	"github.com/yaroher/protoc-gen-enummeta/numeric"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Enum is satisfied by protoc-gen-go enum types.
type Enum interface {
	protoreflect.Enum
	~int32
}

type options struct {
	flags      bool
	flagNames  map[protoreflect.FullName]bool
	trimPrefix bool
	name       string
}

// Option configures how a descriptor is turned into a declaration.
type Option func(*options)

// AsFlags marks every described enum as a flag type.
func AsFlags() Option {
	return func(o *options) {
		o.flags = true
	}
}

// FlagsFor marks the named enums as flag types.
func FlagsFor(names ...protoreflect.FullName) Option {
	return func(o *options) {
		if o.flagNames == nil {
			o.flagNames = make(map[protoreflect.FullName]bool, len(names))
		}
		for _, n := range names {
			o.flagNames[n] = true
		}
	}
}

// TrimPrefix strips the SCREAMING_SNAKE form of the enum name from value
// names, so Color.COLOR_RED is declared as RED.
func TrimPrefix() Option {
	return func(o *options) {
		o.trimPrefix = true
	}
}

// WithName overrides the declared type name, which defaults to the enum's
// full name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) typeName(desc protoreflect.EnumDescriptor) string {
	if o.name != "" {
		return o.name
	}
	return string(desc.FullName())
}

func (o *options) isFlags(desc protoreflect.EnumDescriptor) bool {
	return o.flags || o.flagNames[desc.FullName()]
}

func (o *options) memberName(desc protoreflect.EnumDescriptor, value protoreflect.Name) string {
	name := string(value)
	if !o.trimPrefix {
		return name
	}
	if trimmed, ok := strings.CutPrefix(name, help.ValuePrefix(desc.Name())); ok && trimmed != "" {
		return trimmed
	}
	return name
}

// Declaration describes E from its descriptor. Values are read back through
// E's enum type, keyed by name, rather than converted from raw numbers.
func Declaration[E Enum](opts ...Option) enums.Declaration[E] {
	var zero E
	desc := zero.Descriptor()
	o := newOptions(opts)

	values := desc.Values()
	table := make(map[protoreflect.Name]E, values.Len())
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		table[v.Name()] = zero.Type().New(v.Number()).(E)
	}

	decl := enums.Declaration[E]{
		Name:    o.typeName(desc),
		Kind:    numeric.Int32,
		Flags:   o.isFlags(desc),
		Members: make([]enums.Member[E], 0, values.Len()),
	}
	for i := 0; i < values.Len(); i++ {
		name := values.Get(i).Name()
		decl.Members = append(decl.Members, enums.M(o.memberName(desc, name), table[name]))
	}
	return decl
}

// Of returns the cached metadata of E. Options apply only to the call that
// first builds it.
func Of[E Enum](opts ...Option) (*enums.Metadata[E], error) {
	return enums.Load(func() enums.Declaration[E] {
		return Declaration[E](opts...)
	})
}

// MustOf is Of that panics on error.
func MustOf[E Enum](opts ...Option) *enums.Metadata[E] {
	m, err := Of[E](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// DescriptorDeclaration describes a dynamic enum over its raw numbers.
func DescriptorDeclaration(desc protoreflect.EnumDescriptor, opts ...Option) enums.Declaration[protoreflect.EnumNumber] {
	o := newOptions(opts)
	values := desc.Values()
	decl := enums.Declaration[protoreflect.EnumNumber]{
		Name:    o.typeName(desc),
		Kind:    numeric.Int32,
		Flags:   o.isFlags(desc),
		Members: make([]enums.Member[protoreflect.EnumNumber], 0, values.Len()),
	}
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		decl.Members = append(decl.Members, enums.M(o.memberName(desc, v.Name()), v.Number()))
	}
	return decl
}

// Describe builds uncached metadata for desc.
func Describe(desc protoreflect.EnumDescriptor, opts ...Option) (*enums.Metadata[protoreflect.EnumNumber], error) {
	return enums.Build(DescriptorDeclaration(desc, opts...))
}
