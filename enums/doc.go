// Package enums builds and queries metadata for enumerated types: Go defined
// types over a fixed-width integer or boolean whose named constants are
// described by a Declaration.
//
// A type describes itself by implementing Declarer, or is described by a
// source passed to Register:
//
//	type Color uint8
//
//	const (
//		Red   Color = 1
//		Green Color = 2
//		Blue  Color = 4
//	)
//
//	func (Color) EnumDeclaration() enums.Declaration[Color] {
//		return enums.Declaration[Color]{
//			Name:  "Color",
//			Flags: true,
//			Members: []enums.Member[Color]{
//				enums.M("Red", Red), enums.M("Green", Green), enums.M("Blue", Blue),
//			},
//		}
//	}
//
//	colors := enums.MustOf[Color]()
//	v, err := colors.Parse("Red, Blue") // 5
//	for bit := range colors.Flags(v) { ... } // Red, Blue
//
// The first call to Of for a type builds its Metadata and caches it for the
// life of the process; concurrent first calls build it once. Metadata is
// immutable and safe for concurrent readers.
//
// Values that share a number with an earlier member are aliases: lookups by
// value always resolve to the first declared name, and enumeration with All
// lists aliases next to their canonical member in ascending value order.
package enums
