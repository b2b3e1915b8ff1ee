package enumjson

import (
	"slices"

	"github.com/go-faster/jx"
	"github.com/yaroher/protoc-gen-enummeta/enums"
)

// EncodeReport writes a summary of m:
//
//	{"name":..., "kind":..., "flags":..., "contiguous":..., "min":..., "max":...,
//	 "allFlags":..., "members":[{"name":..., "value":..., "alias":...}]}
//
// Members are listed in value order, aliases included. allFlags is present
// only for flag types.
func EncodeReport[E comparable](e *jx.Encoder, m *enums.Metadata[E]) {
	if m == nil {
		e.Null()
		return
	}
	e.ObjStart()
	e.FieldStart("name")
	e.Str(m.TypeName())
	e.FieldStart("kind")
	e.Str(m.Kind().String())
	e.FieldStart("flags")
	e.Bool(m.IsFlags())
	e.FieldStart("contiguous")
	e.Bool(m.IsContiguous())
	if m.MemberCount(enums.Distinct) > 0 {
		e.FieldStart("min")
		writeNumber(e, m, m.Min())
		e.FieldStart("max")
		writeNumber(e, m, m.Max())
	}
	if m.IsFlags() {
		e.FieldStart("allFlags")
		writeNumber(e, m, m.AllFlags())
	}
	e.FieldStart("members")
	e.ArrStart()
	for member := range m.Members(enums.All) {
		primary, _ := m.Name(member.Value)
		e.ObjStart()
		e.FieldStart("name")
		e.Str(member.Name)
		e.FieldStart("value")
		writeNumber(e, m, member.Value)
		if primary != member.Name {
			e.FieldStart("alias")
			e.Bool(true)
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Report returns the JSON report of m.
func Report[E comparable](m *enums.Metadata[E]) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	EncodeReport(e, m)
	return slices.Clone(e.Bytes())
}
