// Package enumjson encodes enum values and metadata reports as JSON with jx.
//
// A value is written as its member name when it has one, as an array of
// member names when it is a combination of flags, and as a bare number
// otherwise. Decoding accepts all three forms.
package enumjson

import (
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/yaroher/protoc-gen-enummeta/enums"
	"github.com/yaroher/protoc-gen-enummeta/numeric"
)

type config struct {
	parse  []enums.ParseOption
	strict bool
}

// Option configures decoding.
type Option func(*config)

// IgnoreCase matches member names case-insensitively.
func IgnoreCase() Option {
	return func(c *config) {
		c.parse = append(c.parse, enums.IgnoreCase())
	}
}

// Strict rejects decoded values that fail Metadata.Validate.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// Encode writes v to e.
func Encode[E comparable](e *jx.Encoder, m *enums.Metadata[E], v E) {
	if name, ok := m.Name(v); ok {
		e.Str(name)
		return
	}
	p := m.Provider()
	if m.IsFlags() && !p.Equals(v, p.Zero()) && m.IsValidFlagCombination(v) {
		e.ArrStart()
		for flag := range m.Flags(v) {
			name, _ := m.Name(flag)
			e.Str(name)
		}
		e.ArrEnd()
		return
	}
	writeNumber(e, m, v)
}

func writeNumber[E comparable](e *jx.Encoder, m *enums.Metadata[E], v E) {
	// Decimal and boolean forms are both valid JSON literals.
	e.RawStr(m.Provider().Format(v))
}

// Marshal returns the JSON encoding of v.
func Marshal[E comparable](m *enums.Metadata[E], v E) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	Encode(e, m, v)
	return slices.Clone(e.Bytes())
}

// Decode reads a value of m's type from d. Null decodes as zero.
func Decode[E comparable](d *jx.Decoder, m *enums.Metadata[E], opts ...Option) (E, error) {
	var zero E
	if m == nil {
		return zero, &enums.Error{Code: enums.ErrCodeInvalidArgument, Detail: "nil metadata"}
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	p := m.Provider()

	var (
		v   E
		err error
	)
	switch d.Next() {
	case jx.Null:
		return p.Zero(), d.Null()
	case jx.Array:
		if !m.IsFlags() {
			return zero, &enums.Error{Code: enums.ErrCodeInvalidArgument, Type: m.TypeName(), Detail: "array for a non-flag type"}
		}
		v = p.Zero()
		err = d.Arr(func(d *jx.Decoder) error {
			flag, err := decodeScalar(d, m, cfg)
			if err != nil {
				return err
			}
			v = p.Or(v, flag)
			return nil
		})
	default:
		v, err = decodeScalar(d, m, cfg)
	}
	if err != nil {
		return zero, errors.Wrapf(err, "decode %s", m.TypeName())
	}
	if cfg.strict {
		if err := m.Validate(v); err != nil {
			return zero, err
		}
	}
	return v, nil
}

func decodeScalar[E comparable](d *jx.Decoder, m *enums.Metadata[E], cfg *config) (E, error) {
	var zero E
	p := m.Provider()
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return zero, err
		}
		return m.Parse(s, cfg.parse...)
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return zero, err
		}
		return fromNum(m, n)
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return zero, err
		}
		if p.Kind() != numeric.Bool {
			return zero, &enums.Error{Code: enums.ErrCodeInvalidArgument, Type: m.TypeName(), Detail: "boolean for a non-boolean type"}
		}
		if b {
			return p.One(), nil
		}
		return p.Zero(), nil
	default:
		return zero, errors.Errorf("unexpected %s", d.Next())
	}
}

func fromNum[E comparable](m *enums.Metadata[E], n jx.Num) (E, error) {
	var zero E
	if !n.IsInt() {
		return zero, numberError(m, n, "not an integer")
	}
	var (
		v  E
		ok bool
	)
	if n.Negative() {
		i, err := n.Int64()
		if err != nil {
			return zero, err
		}
		v, ok = numeric.FromInt64(m.Provider(), i)
	} else {
		u, err := n.Uint64()
		if err != nil {
			return zero, err
		}
		v, ok = numeric.FromUint64(m.Provider(), u)
	}
	if !ok {
		return zero, numberError(m, n, "out of range for "+m.Kind().String())
	}
	return v, nil
}

func numberError[E comparable](m *enums.Metadata[E], n jx.Num, detail string) *enums.Error {
	return &enums.Error{Code: enums.ErrCodeFormat, Type: m.TypeName(), Value: n.String(), Detail: detail}
}

// Unmarshal decodes data as a value of m's type.
func Unmarshal[E comparable](m *enums.Metadata[E], data []byte, opts ...Option) (E, error) {
	return Decode(jx.DecodeBytes(data), m, opts...)
}
