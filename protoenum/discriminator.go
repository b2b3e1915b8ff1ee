package protoenum

import (
	"strconv"
	"strings"

	"github.com/yaroher/protoc-gen-enummeta/enums"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Discriminator is a self-describing enum reference of the form
// "full.Name:VALUE_NAME". Values without a declared name fall back to the
// decimal number.
type Discriminator string

func (d Discriminator) String() string {
	return string(d)
}

// NewDiscriminator encodes v.
func NewDiscriminator[E protoreflect.Enum](v E) Discriminator {
	desc := v.Descriptor()
	var b strings.Builder
	b.WriteString(string(desc.FullName()))
	b.WriteByte(':')
	if value := desc.Values().ByNumber(v.Number()); value != nil {
		b.WriteString(string(value.Name()))
	} else {
		b.WriteString(strconv.FormatInt(int64(v.Number()), 10))
	}
	return Discriminator(b.String())
}

// ParseDiscriminator decodes d against the global types registry.
func ParseDiscriminator(d Discriminator) (protoreflect.Enum, error) {
	return global.ParseDiscriminator(d)
}

// ParseDiscriminator decodes d. The value part may be a decimal number, which
// is taken as is, or a member name matched exactly without prefix trimming.
func (r *Registry) ParseDiscriminator(d Discriminator) (protoreflect.Enum, error) {
	fullName, value, ok := strings.Cut(string(d), ":")
	if !ok || fullName == "" || value == "" {
		return nil, &enums.Error{Code: enums.ErrCodeInvalidArgument, Detail: "malformed discriminator " + strconv.Quote(string(d))}
	}
	l := r.load(protoreflect.FullName(fullName))
	if l.typ == nil {
		return nil, l.err
	}
	if n, err := strconv.ParseInt(value, 10, 32); err == nil {
		return l.typ.New(protoreflect.EnumNumber(n)), nil
	}
	if l.exact == nil {
		return nil, l.err
	}
	num, ok, err := l.exact.TryParse(value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &enums.Error{Code: enums.ErrCodeFormat, Type: fullName, Value: value}
	}
	return l.typ.New(num), nil
}
