package enums

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yaroher/protoc-gen-enummeta/numeric"
)

type Color uint8

const (
	Red   Color = 1
	Green Color = 2
	Blue  Color = 4
)

func (Color) EnumDeclaration() Declaration[Color] {
	return Declaration[Color]{
		Name:  "Color",
		Flags: true,
		Members: []Member[Color]{
			M("Red", Red), M("Green", Green), M("Blue", Blue),
		},
	}
}

type sparse int32

var sparseDecl = Declaration[sparse]{
	Name:    "Sparse",
	Members: []Member[sparse]{M[sparse]("One", 1), M[sparse]("Two", 2), M[sparse]("Five", 5)},
}

type alias int16

var aliasDecl = Declaration[alias]{
	Name:    "Alias",
	Members: []Member[alias]{M[alias]("A", 1), M[alias]("B", 1), M[alias]("C", 2)},
}

type status uint8

var statusDecl = Declaration[status]{
	Name: "Status",
	Members: []Member[status]{
		M[status]("Done", 3),
		M[status]("Pending", 1),
		M[status]("Running", 2),
		M[status]("Queued", 1),
	},
}

type perm int8

var permDecl = Declaration[perm]{
	Name:  "Perm",
	Flags: true,
	Members: []Member[perm]{
		M[perm]("None", 0),
		M[perm]("Read", 1),
		M[perm]("Write", 2),
		M[perm]("Exec", 4),
		M[perm]("Sticky", -128),
		M[perm]("ReadWrite", 3),
	},
}

type clash uint8

var clashDecl = Declaration[clash]{
	Name:    "Clash",
	Members: []Member[clash]{M[clash]("Low", 1), M[clash]("LOW", 2)},
}

type toggle bool

var toggleDecl = Declaration[toggle]{
	Name:    "Toggle",
	Flags:   true,
	Members: []Member[toggle]{M[toggle]("Off", false), M[toggle]("On", true)},
}

type glyph uint16

var glyphDecl = Declaration[glyph]{
	Name:    "Glyph",
	Kind:    numeric.Char16,
	Members: []Member[glyph]{M[glyph]("A", 'A'), M[glyph]("B", 'B'), M[glyph]("C", 'C')},
}

type bigMask uint64

var bigMaskDecl = Declaration[bigMask]{
	Name:    "BigMask",
	Flags:   true,
	Members: []Member[bigMask]{M[bigMask]("Low", 1), M[bigMask]("High", 1<<63)},
}

type wide int

type orphan uint8

func mustBuild[E numeric.Integer](t *testing.T, decl Declaration[E]) *Metadata[E] {
	t.Helper()
	m, err := Build(decl)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}
