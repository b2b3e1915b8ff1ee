// Package generator implements the protoc-gen-enummeta plugin: for every
// input file declaring enums it writes a JSON document describing each enum's
// metadata.
package generator

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/yaroher/protoc-gen-enummeta/enumjson"
	"github.com/yaroher/protoc-gen-enummeta/enums"
	"github.com/yaroher/protoc-gen-enummeta/internal/help"
	"github.com/yaroher/protoc-gen-enummeta/logger"
	"github.com/yaroher/protoc-gen-enummeta/protoenum"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// DefaultSuffix is appended to the generated filename prefix of each file.
const DefaultSuffix = ".enummeta.json"

type Generator struct {
	Settings *PluginSettings
	Plugin   *protogen.Plugin
	suffix   string
	indent   int
}

type Option func(*Generator) error

func WithSuffix(suffix string) Option {
	return func(g *Generator) error {
		if suffix == "" {
			return errors.New("empty suffix")
		}
		g.suffix = suffix
		return nil
	}
}

// WithIndent sets the JSON indentation width. Zero writes compact output.
func WithIndent(n int) Option {
	return func(g *Generator) error {
		if n < 0 {
			return errors.Errorf("negative indent %d", n)
		}
		g.indent = n
		return nil
	}
}

func NewGenerator(p *protogen.Plugin, opts ...Option) (*Generator, error) {
	settings, err := NewPluginSettingsFromPlugin(p)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		Settings: settings,
		Plugin:   p,
		suffix:   DefaultSuffix,
		indent:   2,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FileEnums pairs a file to generate with the enums it declares.
type FileEnums struct {
	File  *protogen.File
	Enums []*protogen.Enum
}

// Collect returns the files protoc asked for that declare at least one enum.
func (g *Generator) Collect() []*FileEnums {
	result := make([]*FileEnums, 0, len(g.Plugin.Files))
	l := logger.Named("Collect")
	for _, file := range g.Plugin.Files {
		if !file.Generate {
			continue
		}
		found := help.WalkEnums(file)
		l.Debug("file", zap.String("path", file.Desc.Path()), zap.Int("enums", len(found)))
		if len(found) == 0 {
			continue
		}
		result = append(result, &FileEnums{File: file, Enums: found})
	}
	return result
}

func (g *Generator) Generate() error {
	g.warnUnknownFlags()
	for _, fe := range g.Collect() {
		content, err := g.render(fe)
		if err != nil {
			return errors.Wrapf(err, "file %s", fe.File.Desc.Path())
		}
		gf := g.Plugin.NewGeneratedFile(fe.File.GeneratedFilenamePrefix+g.suffix, fe.File.GoImportPath)
		if _, err := gf.Write(content); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}

// render writes the document of one file:
//
//	{"file":..., "package":..., "delimiter":..., "enums":[report...]}
func (g *Generator) render(fe *FileEnums) ([]byte, error) {
	l := logger.Named("Generate")
	opts := g.Settings.Options()

	e := &jx.Encoder{}
	e.SetIdent(g.indent)
	e.ObjStart()
	e.FieldStart("file")
	e.Str(fe.File.Desc.Path())
	e.FieldStart("package")
	e.Str(string(fe.File.Desc.Package()))
	e.FieldStart("delimiter")
	e.Str(g.Settings.Delimiter)
	e.FieldStart("enums")
	e.ArrStart()
	for _, enum := range fe.Enums {
		meta, err := protoenum.Describe(enum.Desc, opts...)
		if err != nil {
			return nil, err
		}
		if err := g.checkDelimiter(meta); err != nil {
			return nil, err
		}
		l.Debug("enum",
			zap.String("name", meta.TypeName()),
			zap.Bool("flags", meta.IsFlags()),
			zap.Int("members", meta.MemberCount(enums.All)),
			zap.Bool("contiguous", meta.IsContiguous()),
		)
		enumjson.EncodeReport(e, meta)
	}
	e.ArrEnd()
	e.ObjEnd()
	return append(e.Bytes(), '\n'), nil
}

// checkDelimiter rejects flag enums whose member names contain the
// delimiter, since their text form could not be parsed back.
func (g *Generator) checkDelimiter(meta *enums.Metadata[protoreflect.EnumNumber]) error {
	if !meta.IsFlags() {
		return nil
	}
	for name := range meta.Names(enums.All) {
		if strings.Contains(name, g.Settings.Delimiter) {
			return errors.Errorf("enum %s: member %s contains delimiter %q", meta.TypeName(), name, g.Settings.Delimiter)
		}
	}
	return nil
}

func (g *Generator) warnUnknownFlags() {
	known := make(map[protoreflect.FullName]bool)
	for _, file := range g.Plugin.Files {
		for _, enum := range help.WalkEnums(file) {
			known[enum.Desc.FullName()] = true
		}
	}
	for _, name := range g.Settings.Flags {
		if !known[name] {
			logger.Warn("flags names an unknown enum", zap.String("enum", string(name)))
		}
	}
}
