package render

import (
	"fmt"
	"reflect"
	"strings"
	"text/template"
)

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// funcMap returns the helpers available to every template. The builtin
// html function covers HTML escaping.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"join":    join,
		"upper":   func(v any) string { return strings.ToUpper(toString(v)) },
		"lower":   func(v any) string { return strings.ToLower(toString(v)) },
		"default": defaultValue,
		"latex":   func(v any) string { return latexEscaper.Replace(toString(v)) },
	}
}

// join concatenates a list field. A single string is returned as is and a
// missing value yields "".
func join(v any, sep string) string {
	switch list := v.(type) {
	case nil:
		return ""
	case string:
		return list
	case []string:
		return strings.Join(list, sep)
	case []any:
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = toString(item)
		}
		return strings.Join(parts, sep)
	default:
		return toString(v)
	}
}

// defaultValue returns v unless it is empty, in which case def.
// Used as {{default "n/a" .range}}.
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		if rv.Len() == 0 {
			return def
		}
	}
	return v
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
