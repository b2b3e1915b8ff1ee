package enums

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NonFlag(t *testing.T) {
	m := mustBuild(t, sparseDecl)

	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  sparse
	}{
		{"name", "Two", nil, 2},
		{"padded name", "  Five\t", nil, 5},
		{"decimal", "1", nil, 1},
		{"folded name", "fIVE", []ParseOption{IgnoreCase()}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Parse(tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	m := mustBuild(t, sparseDecl)

	for _, input := range []string{"", "   ", "Three", "five", "3", "One,Two"} {
		t.Run(input, func(t *testing.T) {
			_, err := m.Parse(input)
			require.ErrorIs(t, err, ErrFormat)
			var enumErr *Error
			require.ErrorAs(t, err, &enumErr)
			assert.Equal(t, input, enumErr.Value)
			assert.Equal(t, "Sparse", enumErr.Type)
		})
	}

	var nilMeta *Metadata[sparse]
	_, err := nilMeta.Parse("One")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTryParse_DecimalIsCaseSensitiveAndExact(t *testing.T) {
	m := mustBuild(t, glyphDecl)

	v, ok, err := m.TryParse("65", IgnoreCase())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, glyph('A'), v)

	_, ok, err = m.TryParse(" 65")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = m.TryParse("065")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryParse_Ambiguous(t *testing.T) {
	m := mustBuild(t, aliasDecl)

	_, _, err := m.TryParse("1")
	require.ErrorIs(t, err, ErrAmbiguousMatch)
	var enumErr *Error
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "Alias", enumErr.Type)
	assert.Equal(t, "1", enumErr.Value)
	assert.False(t, enumErr.IgnoreCase)

	v, ok, err := m.TryParse("B")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alias(1), v)

	_, ok, err = m.TryParse("b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryParse_AmbiguousOnlyWhenFolding(t *testing.T) {
	m := mustBuild(t, clashDecl)

	v, ok, err := m.TryParse("LOW")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, clash(2), v)

	_, _, err = m.TryParse("low", IgnoreCase())
	require.ErrorIs(t, err, ErrAmbiguousMatch)
	var enumErr *Error
	require.ErrorAs(t, err, &enumErr)
	assert.True(t, enumErr.IgnoreCase)
	assert.Contains(t, err.Error(), "case-insensitive")
}

func TestParseFlags(t *testing.T) {
	m := MustOf[Color]()

	tests := []struct {
		name  string
		input string
		opts  []ParseOption
		want  Color
	}{
		{"pair", "Red, Blue", nil, 5},
		{"single", "Green", nil, 2},
		{"empty", "", nil, 0},
		{"padding", "  Red ,  Green  ", nil, 3},
		{"semicolon", "Red;Blue", []ParseOption{WithDelimiter(";")}, 5},
		{"multi-char delimiter", "Red || Green||Blue", []ParseOption{WithDelimiter("||")}, 7},
		{"decimal token", "1, 4", nil, 5},
		{"repeated", "Red,Red", nil, 1},
		{"folded", "red, BLUE", []ParseOption{IgnoreCase()}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.ParseFlags(tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_NamesOffendingToken(t *testing.T) {
	m := MustOf[Color]()

	tests := []struct {
		input string
		bad   string
	}{
		{"Red,Purple", "Purple"},
		{"Red, Purple ,Blue", "Purple"},
		{"Red,", ""},
		{" ", ""},
		{"Red;Blue", "Red;Blue"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := m.ParseFlags(tt.input)
			require.ErrorIs(t, err, ErrFormat)
			var enumErr *Error
			require.ErrorAs(t, err, &enumErr)
			assert.Equal(t, tt.bad, enumErr.Value)
		})
	}

	_, err := m.ParseFlags("Red", WithDelimiter(""))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParse_FlagTypeDelegates(t *testing.T) {
	m := MustOf[Color]()

	v, err := m.Parse("Green ,Blue")
	require.NoError(t, err)
	assert.Equal(t, Color(6), v)

	v, err = m.Parse("")
	require.NoError(t, err)
	assert.Equal(t, Color(0), v)
}

func TestTryParseFlags(t *testing.T) {
	m := mustBuild(t, permDecl)

	v, ok, err := m.TryParseFlags("Read|Sticky", WithDelimiter("|"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, perm(-127), v)

	v, ok, err = m.TryParseFlags("Read, Nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, perm(0), v)

	al := mustBuild(t, aliasDecl)
	_, _, err = al.TryParseFlags("C, 1")
	require.ErrorIs(t, err, ErrAmbiguousMatch)
}

func TestFormat_RoundTripsThroughParse(t *testing.T) {
	m := mustBuild(t, permDecl)
	p := m.Provider()

	for i := -128; i < 128; i++ {
		v := perm(i)
		if !m.IsValidFlagCombination(v) {
			continue
		}
		got, err := m.Parse(m.Format(v))
		require.NoError(t, err, "value %d", i)
		assert.True(t, p.Equals(v, got), "value %d rendered as %q", i, m.Format(v))
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		text      string
		delimiter string
		want      []string
	}{
		{"a,b", ",", []string{"a", "b"}},
		{" a , b ", ",", []string{"a", "b"}},
		{"a", ",", []string{"a"}},
		{"a,", ",", []string{"a", ""}},
		{",a", ",", []string{"", "a"}},
		{"a<>b<> c", "<>", []string{"a", "b", "c"}},
		{"a ,　b", ",", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(tokens(tt.text, tt.delimiter)))
		})
	}
}
