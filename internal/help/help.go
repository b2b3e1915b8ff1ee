package help

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/samber/lo"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// WalkEnums returns every enum declared in file: top-level enums first, then
// the enums nested in each message, depth first in declaration order.
func WalkEnums(file *protogen.File) []*protogen.Enum {
	result := append([]*protogen.Enum(nil), file.Enums...)
	for _, message := range file.Messages {
		result = appendMessageEnums(result, message)
	}
	return result
}

func appendMessageEnums(result []*protogen.Enum, message *protogen.Message) []*protogen.Enum {
	result = append(result, message.Enums...)
	for _, nested := range message.Messages {
		result = appendMessageEnums(result, nested)
	}
	return result
}

// ValuePrefix is the conventional prefix of the values of an enum: COLOR_ for
// Color, HTTP_STATUS_ for HttpStatus.
func ValuePrefix(enum protoreflect.Name) string {
	return strcase.ToScreamingSnake(string(enum)) + "_"
}

// SplitList splits s on sep, trims the parts and drops empty and repeated
// ones.
func SplitList(s string, sep string) []string {
	parts := lo.Map(strings.Split(s, sep), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Uniq(lo.Compact(parts))
}

func StringOrDefault(s string, d string) string {
	if s != "" {
		return s
	}
	return d
}
