package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/style"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Current is the value viper resolves for the field right now.
func (f *Field) Current() any {
	return viper.Get(f.Key)
}

func (f *Field) typeName() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(fieldTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"value":       f.Current(),
		"default":     f.Value,
		"type":        f.typeName(),
		"description": f.Description,
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return style.Fg(color.Cyan)(fmt.Sprint(value))
	}
}

var fieldTemplate = template.Must(template.New("field").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"key":    style.New().Bold(true).Foreground(color.Purple).Render,
	"label":  style.Fg(color.Blue),
	"hl":     highlight,
	"typeof": func(f *Field) string { return f.typeName() },
	"indent": func(s string) string { return strings.ReplaceAll(s, "\n", "\n  ") },
}).Parse(`{{ key .Key }} {{ faint (typeof .) }}
  {{ faint (indent .Description) }}
  {{ label "env" }}     {{ .Env }}
  {{ label "current" }} {{ hl .Current }}
  {{ label "default" }} {{ hl .Value }}`))
