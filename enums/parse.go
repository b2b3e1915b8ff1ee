package enums

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// DefaultDelimiter separates flag names in ParseFlags.
const DefaultDelimiter = ","

// ParseOption configures parsing.
type ParseOption func(*parseConfig)

type parseConfig struct {
	ignoreCase bool
	delimiter  string
}

// IgnoreCase matches member names case-insensitively. Decimal value text is
// always compared exactly.
func IgnoreCase() ParseOption {
	return func(c *parseConfig) {
		c.ignoreCase = true
	}
}

// WithIgnoreCase sets case sensitivity explicitly.
func WithIgnoreCase(ignore bool) ParseOption {
	return func(c *parseConfig) {
		c.ignoreCase = ignore
	}
}

// WithDelimiter sets the flag separator. It may be longer than one character.
func WithDelimiter(delimiter string) ParseOption {
	return func(c *parseConfig) {
		c.delimiter = delimiter
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Parse converts text to a value. Flag types are parsed as a delimited list of
// members; other types accept one member name or decimal value, ignoring
// surrounding whitespace.
func (m *Metadata[E]) Parse(text string, opts ...ParseOption) (E, error) {
	var zero E
	if m == nil {
		return zero, &Error{Code: ErrCodeInvalidArgument, Detail: "nil metadata"}
	}
	cfg := newParseConfig(opts)
	if m.flags {
		return m.parseFlags(text, cfg)
	}
	v, ok, err := m.tryParse(strings.TrimSpace(text), cfg.ignoreCase)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, m.formatError(text)
	}
	return v, nil
}

// TryParse looks text up as a single member name or decimal value. It reports
// false when nothing matches and fails only when text matches more than one
// member, which means the type itself declares conflicting names or values.
func (m *Metadata[E]) TryParse(text string, opts ...ParseOption) (E, bool, error) {
	var zero E
	if m == nil {
		return zero, false, &Error{Code: ErrCodeInvalidArgument, Detail: "nil metadata"}
	}
	return m.tryParse(text, newParseConfig(opts).ignoreCase)
}

func (m *Metadata[E]) tryParse(text string, ignoreCase bool) (E, bool, error) {
	var zero E
	var folded string
	if ignoreCase {
		folded = cases.Fold().String(text)
	}
	var found *entry[E]
	for e := range m.entries(All) {
		matched := e.text == text
		if !matched {
			if ignoreCase {
				matched = e.folded == folded
			} else {
				matched = e.Name == text
			}
		}
		if !matched {
			continue
		}
		if found != nil {
			return zero, false, &Error{
				Code:       ErrCodeAmbiguousMatch,
				Type:       m.name,
				Value:      text,
				IgnoreCase: ignoreCase,
				Detail:     found.Name + ", " + e.Name,
			}
		}
		found = e
	}
	if found == nil {
		return zero, false, nil
	}
	return found.Value, true, nil
}

// ParseFlags ORs together every delimited member in text. Empty text yields
// zero; any token that does not name a member fails with a format error
// naming that token.
func (m *Metadata[E]) ParseFlags(text string, opts ...ParseOption) (E, error) {
	var zero E
	if m == nil {
		return zero, &Error{Code: ErrCodeInvalidArgument, Detail: "nil metadata"}
	}
	return m.parseFlags(text, newParseConfig(opts))
}

func (m *Metadata[E]) parseFlags(text string, cfg parseConfig) (E, error) {
	v, bad, err := m.accumulate(text, cfg)
	if err != nil {
		return m.num.Zero(), err
	}
	if bad != nil {
		return m.num.Zero(), m.formatError(*bad)
	}
	return v, nil
}

// TryParseFlags is ParseFlags reporting false instead of a format error.
// Ambiguous tokens still fail.
func (m *Metadata[E]) TryParseFlags(text string, opts ...ParseOption) (E, bool, error) {
	var zero E
	if m == nil {
		return zero, false, &Error{Code: ErrCodeInvalidArgument, Detail: "nil metadata"}
	}
	v, bad, err := m.accumulate(text, newParseConfig(opts))
	if err != nil {
		return m.num.Zero(), false, err
	}
	if bad != nil {
		return m.num.Zero(), false, nil
	}
	return v, true, nil
}

// accumulate returns the OR of all tokens, or the first token that matched
// nothing.
func (m *Metadata[E]) accumulate(text string, cfg parseConfig) (E, *string, error) {
	acc := m.num.Zero()
	if cfg.delimiter == "" {
		return acc, nil, &Error{Code: ErrCodeInvalidArgument, Type: m.name, Detail: "empty flag delimiter"}
	}
	if text == "" {
		return acc, nil, nil
	}
	for token := range tokens(text, cfg.delimiter) {
		v, ok, err := m.tryParse(token, cfg.ignoreCase)
		if err != nil {
			return acc, nil, err
		}
		if !ok {
			return acc, &token, nil
		}
		acc = m.num.Or(acc, v)
	}
	return acc, nil, nil
}

// tokens splits text on delimiter, dropping whitespace around each token.
// A delimiter always introduces a token, so "A," yields "A" and "".
func tokens(text, delimiter string) iter.Seq[string] {
	return func(yield func(string) bool) {
		pos := 0
		for {
			for pos < len(text) {
				r, size := utf8.DecodeRuneInString(text[pos:])
				if !unicode.IsSpace(r) {
					break
				}
				pos += size
			}
			end, next := len(text), -1
			if i := strings.Index(text[pos:], delimiter); i >= 0 {
				end = pos + i
				next = end + len(delimiter)
			}
			if !yield(strings.TrimRightFunc(text[pos:end], unicode.IsSpace)) {
				return
			}
			if next < 0 {
				return
			}
			pos = next
		}
	}
}

func (m *Metadata[E]) formatError(text string) *Error {
	return &Error{Code: ErrCodeFormat, Type: m.name, Value: text}
}
