package generator

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/samber/lo"
	"github.com/yaroher/protoc-gen-enummeta/enums"
	"github.com/yaroher/protoc-gen-enummeta/internal/help"
	"github.com/yaroher/protoc-gen-enummeta/logger"
	"github.com/yaroher/protoc-gen-enummeta/protoenum"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type PluginSettings struct {
	// Flags lists the full names of enums described as flag types.
	Flags      []protoreflect.FullName
	TrimPrefix bool
	// Delimiter is the flag delimiter readers of the report should use.
	Delimiter string
}

func mapGetOrDefault(paramsMap map[string]string, key string, defaultValue string) string {
	if val, ok := paramsMap[key]; ok {
		return val
	}
	return defaultValue
}

func NewPluginSettingsFromPlugin(p *protogen.Plugin) (*PluginSettings, error) {
	return NewPluginSettings(p.Request.GetParameter())
}

// NewPluginSettings parses a protoc parameter string: comma separated
// key=value pairs. Keys this plugin does not know, protogen's own included,
// are ignored.
func NewPluginSettings(parameter string) (*PluginSettings, error) {
	paramsMap := make(map[string]string)
	for _, param := range strings.Split(parameter, ",") {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			continue
		}
		paramsMap[strings.TrimSpace(key)] = value
	}
	logger.Debug("plugin parameters", zap.String("raw", parameter), zap.Int("len", len(paramsMap)))

	settings := &PluginSettings{
		Delimiter: help.StringOrDefault(paramsMap["delimiter"], enums.DefaultDelimiter),
	}
	switch v := mapGetOrDefault(paramsMap, "trim_prefix", "false"); v {
	case "true":
		settings.TrimPrefix = true
	case "false":
	default:
		return nil, errors.Errorf("trim_prefix: want true or false, got %q", v)
	}

	settings.Flags = lo.Map(help.SplitList(paramsMap["flags"], "+"), func(name string, _ int) protoreflect.FullName {
		return protoreflect.FullName(strings.TrimPrefix(name, "."))
	})
	if bad, found := lo.Find(settings.Flags, func(name protoreflect.FullName) bool {
		return !name.IsValid()
	}); found {
		return nil, errors.Errorf("flags: %q is not a valid full name", bad)
	}
	return settings, nil
}

// Options converts the settings into protoenum options.
func (s *PluginSettings) Options() []protoenum.Option {
	opts := []protoenum.Option{protoenum.FlagsFor(s.Flags...)}
	if s.TrimPrefix {
		opts = append(opts, protoenum.TrimPrefix())
	}
	return opts
}
