package protoenum

import (
	"sync"

	"github.com/go-faster/errors"
	"github.com/yaroher/protoc-gen-enummeta/enums"
	"github.com/yaroher/protoc-gen-enummeta/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

var log = logger.Named("protoenum")

// Resolver finds enum types by full name. *protoregistry.Types implements it.
type Resolver interface {
	FindEnumByName(protoreflect.FullName) (protoreflect.EnumType, error)
}

type lookup struct {
	once sync.Once
	typ   protoreflect.EnumType
	meta  *enums.Metadata[protoreflect.EnumNumber]
	exact *enums.Metadata[protoreflect.EnumNumber] // declared names, no options
	err   error
}

// Registry resolves enums by full name and caches their metadata.
type Registry struct {
	resolver Resolver
	opts     []Option
	entries  sync.Map // protoreflect.FullName -> *lookup
}

// NewRegistry returns a registry over resolver. A nil resolver means
// protoregistry.GlobalTypes.
func NewRegistry(resolver Resolver, opts ...Option) *Registry {
	if resolver == nil {
		resolver = protoregistry.GlobalTypes
	}
	return &Registry{resolver: resolver, opts: opts}
}

var global = NewRegistry(nil)

// Lookup returns the metadata of the enum named fullName in the global types
// registry.
func Lookup(fullName protoreflect.FullName) (*enums.Metadata[protoreflect.EnumNumber], error) {
	return global.Lookup(fullName)
}

// Lookup returns the metadata of the enum named fullName. Resolution and
// build run once per name; later calls return the same result.
func (r *Registry) Lookup(fullName protoreflect.FullName) (*enums.Metadata[protoreflect.EnumNumber], error) {
	l := r.load(fullName)
	return l.meta, l.err
}

func (r *Registry) load(fullName protoreflect.FullName) *lookup {
	v, _ := r.entries.LoadOrStore(fullName, &lookup{})
	l := v.(*lookup)
	l.once.Do(func() {
		l.typ, l.err = r.resolver.FindEnumByName(fullName)
		if l.err != nil {
			if errors.Is(l.err, protoregistry.NotFound) {
				l.err = &enums.Error{Code: enums.ErrCodeNotDeclared, Type: string(fullName), Cause: l.err}
			} else {
				l.err = errors.Wrapf(l.err, "find enum %s", fullName)
			}
			log.Debug("enum lookup failed", zap.String("enum", string(fullName)), zap.Error(l.err))
			return
		}
		desc := l.typ.Descriptor()
		if l.exact, l.err = Describe(desc); l.err != nil {
			return
		}
		if len(r.opts) == 0 {
			l.meta = l.exact
			return
		}
		l.meta, l.err = Describe(desc, r.opts...)
	})
	return l
}
