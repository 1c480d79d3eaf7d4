// Package template expands path and file-name templates containing
// ${name} placeholders.
//
// Substitution is strictly textual over an enumerated binding map; the
// template is never evaluated as an expression, so a template string can
// never execute code no matter where it came from.
package template

import (
	"fmt"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z][A-Za-z0-9]*)\}`)

// UnboundPlaceholderError reports a ${name} reference that has no binding.
type UnboundPlaceholderError struct {
	Name     string
	Template string
}

func (e *UnboundPlaceholderError) Error() string {
	return fmt.Sprintf("template %q references unbound placeholder ${%s}", e.Template, e.Name)
}

// Resolve substitutes each ${name} occurrence in tmpl with bindings[name].
//
// A ${name} whose name is absent from bindings fails with
// *UnboundPlaceholderError; it is never left literal. Text that merely
// resembles a placeholder but does not match the ${identifier} grammar
// (for example "${foo bar}") is copied through unchanged. Resolution is
// deterministic and idempotent for templates whose placeholders are all
// bound to placeholder-free values.
func Resolve(tmpl string, bindings map[string]string) (string, error) {
	var unbound *UnboundPlaceholderError
	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[2 : len(m)-1]
		value, ok := bindings[name]
		if !ok {
			if unbound == nil {
				unbound = &UnboundPlaceholderError{Name: name, Template: tmpl}
			}
			return m
		}
		return value
	})
	if unbound != nil {
		return "", unbound
	}
	return out, nil
}
