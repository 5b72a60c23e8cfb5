package template

import (
	"regexp"
	"sort"
	"strings"
)

// ParamType is the closed set of parameter declaration types.
type ParamType string

const (
	ParamTypeText   ParamType = "text"
	ParamTypeNumber ParamType = "number"
	ParamTypeColor  ParamType = "color"
	ParamTypeBool   ParamType = "bool"
)

// ParseParamType normalizes a declaration's type token. Unrecognized tokens
// fall back to text so one odd declaration still yields a usable schema entry.
func ParseParamType(raw string) ParamType {
	switch ParamType(strings.ToLower(strings.TrimSpace(raw))) {
	case ParamTypeNumber:
		return ParamTypeNumber
	case ParamTypeColor:
		return ParamTypeColor
	case ParamTypeBool:
		return ParamTypeBool
	default:
		return ParamTypeText
	}
}

// ParameterSpec describes one customizable template input extracted from a
// {{name:type=default}} declaration token.
type ParameterSpec struct {
	Name    string    `json:"name"`
	Type    ParamType `json:"type"`
	Default string    `json:"default"`
	Label   string    `json:"label"`
}

// Schema is the full parse result for one template: the media size derived
// from its path and the declared parameters keyed by name.
type Schema struct {
	MediaWidth  int                      `json:"media_width"`
	MediaHeight int                      `json:"media_height"`
	Params      map[string]ParameterSpec `json:"params"`
}

// ParamNames returns the declared parameter names in sorted order.
func (s Schema) ParamNames() []string {
	names := make([]string, 0, len(s.Params))
	for name := range s.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declaration token: {{name:type=default}}. The default is the literal text
// up to the closing braces; no whitespace is tolerated around the separators.
var declToken = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*):([A-Za-z]+)=([^{}]*)\}\}`)

// ParseParameters extracts every well-formed declaration token from the
// template text. Malformed declarations simply do not match and are skipped;
// one bad token never hides the valid ones. When a name is declared more than
// once the last declaration wins. The label has no dedicated syntax and
// defaults to the parameter name.
func ParseParameters(source string) map[string]ParameterSpec {
	params := make(map[string]ParameterSpec)
	for _, m := range declToken.FindAllStringSubmatch(source, -1) {
		name := m[1]
		params[name] = ParameterSpec{
			Name:    name,
			Type:    ParseParamType(m[2]),
			Default: m[3],
			Label:   name,
		}
	}
	return params
}

// ParseSchema runs the full schema parse for a loaded template. It is pure:
// two calls on the same template yield identical results.
func ParseSchema(t *Template) Schema {
	return Schema{
		MediaWidth:  t.Width,
		MediaHeight: t.Height,
		Params:      ParseParameters(t.Source),
	}
}
