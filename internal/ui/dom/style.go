package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// StyleDecl is one property of an inline style attribute.
type StyleDecl struct {
	Prop  string
	Value string
}

// ParseStyle splits an inline style attribute into declarations, keeping
// their order. Declarations that do not parse, or that have no property name
// or value, are dropped the way a browser drops them.
func ParseStyle(attr string) []StyleDecl {
	if strings.TrimSpace(attr) == "" {
		return nil
	}
	if parsed, err := parser.ParseDeclarations(attr); err == nil {
		return fromDeclarations(nil, parsed)
	}
	// One malformed declaration must not discard the rest of the attribute.
	var decls []StyleDecl
	for _, part := range strings.Split(attr, ";") {
		parsed, err := parser.ParseDeclarations(part)
		if err != nil {
			continue
		}
		decls = fromDeclarations(decls, parsed)
	}
	return decls
}

func fromDeclarations(decls []StyleDecl, parsed []*css.Declaration) []StyleDecl {
	for _, d := range parsed {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		value := strings.TrimSpace(d.Value)
		if prop == "" || value == "" {
			continue
		}
		if d.Important {
			value += " !important"
		}
		decls = append(decls, StyleDecl{Prop: prop, Value: value})
	}
	return decls
}

// FormatStyle renders declarations back into an inline style attribute.
func FormatStyle(decls []StyleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Prop+": "+d.Value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// WithStyle returns decls with prop set to value. An empty value removes prop.
func WithStyle(decls []StyleDecl, prop, value string) []StyleDecl {
	prop = strings.ToLower(strings.TrimSpace(prop))
	out := decls[:0:0]
	replaced := false
	for _, d := range decls {
		if d.Prop != prop {
			out = append(out, d)
			continue
		}
		if value != "" && !replaced {
			out = append(out, StyleDecl{Prop: prop, Value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, StyleDecl{Prop: prop, Value: value})
	}
	return out
}

// LookupStyle returns the value of prop, or "" when unset.
func LookupStyle(decls []StyleDecl, prop string) string {
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range decls {
		if d.Prop == prop {
			return d.Value
		}
	}
	return ""
}
