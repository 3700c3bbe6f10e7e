// Package template resolves {identifier} tokens in path and naming
// templates. The set of recognized variables is closed: {Name}, {name},
// {package}, {app}, plus caller-supplied custom variables.
package template

import (
	"fmt"
	"strings"

	"organizer-cli/internal/naming"
)

// VarKind tags a recognized template variable with its derivation rule.
type VarKind int

const (
	// VarPascalName is {Name}: the request name in PascalCase.
	VarPascalName VarKind = iota
	// VarSnakeName is {name}: the request name in snake_case.
	VarSnakeName
	// VarPackage is {package}: base_package with dots replaced by "/".
	VarPackage
	// VarCustom covers {app} and any other caller-supplied variable.
	VarCustom
)

// KindOf classifies a token identifier.
func KindOf(identifier string) VarKind {
	switch identifier {
	case "Name":
		return VarPascalName
	case "name":
		return VarSnakeName
	case "package":
		return VarPackage
	default:
		return VarCustom
	}
}

// Segment is one piece of a parsed template: either a literal run or a
// single variable token.
type Segment struct {
	Literal string
	Var     string // token identifier, empty for literal segments
}

// IsVar reports whether the segment is a variable token.
func (s Segment) IsVar() bool { return s.Var != "" }

// Vars carries the values available to Render.
type Vars struct {
	RawName     string
	BasePackage string
	Extra       map[string]string
}

// MissingVariableError reports a template variable the caller must supply
// (for example {app}). Recoverable by prompting for the value.
type MissingVariableError struct {
	Variable string
	Template string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template %q requires variable {%s} which was not supplied", e.Template, e.Variable)
}

// UnresolvedVariableError reports a token outside the supported set. Fixing
// it requires editing the template itself.
type UnresolvedVariableError struct {
	Token    string
	Template string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("template %q references unsupported variable {%s}", e.Template, e.Token)
}

// SyntaxError reports malformed token syntax such as an unbalanced brace.
type SyntaxError struct {
	Template string
	Detail   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid template %q: %s", e.Template, e.Detail)
}

// Parse splits a template into literal and variable segments. It fails on
// unbalanced braces, empty tokens and identifiers containing braces.
func Parse(tmpl string) ([]Segment, error) {
	var segments []Segment
	rest := tmpl

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, &SyntaxError{Template: tmpl, Detail: "unmatched '}'"}
			}
			if rest != "" {
				segments = append(segments, Segment{Literal: rest})
			}
			return segments, nil
		}

		if lit := rest[:open]; lit != "" {
			if strings.IndexByte(lit, '}') >= 0 {
				return nil, &SyntaxError{Template: tmpl, Detail: "unmatched '}'"}
			}
			segments = append(segments, Segment{Literal: lit})
		}

		rest = rest[open+1:]
		close := strings.IndexByte(rest, '}')
		if close < 0 {
			return nil, &SyntaxError{Template: tmpl, Detail: "unmatched '{'"}
		}
		identifier := rest[:close]
		if identifier == "" {
			return nil, &SyntaxError{Template: tmpl, Detail: "empty variable token {}"}
		}
		if strings.IndexByte(identifier, '{') >= 0 {
			return nil, &SyntaxError{Template: tmpl, Detail: "nested '{' inside variable token"}
		}
		segments = append(segments, Segment{Var: identifier})
		rest = rest[close+1:]
	}
}

// Tokens returns the variable identifiers referenced by a template, in
// order of appearance. Used by the schema validator.
func Tokens(tmpl string) ([]string, error) {
	segments, err := Parse(tmpl)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, s := range segments {
		if s.IsVar() {
			tokens = append(tokens, s.Var)
		}
	}
	return tokens, nil
}

// Render substitutes all variables in a single left-to-right pass. It is
// pure: identical inputs yield identical output with no side effects.
func Render(tmpl string, vars Vars) (string, error) {
	segments, err := Parse(tmpl)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range segments {
		if !s.IsVar() {
			b.WriteString(s.Literal)
			continue
		}
		value, err := resolve(tmpl, s.Var, vars)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
	}
	return b.String(), nil
}

func resolve(tmpl, identifier string, vars Vars) (string, error) {
	switch KindOf(identifier) {
	case VarPascalName:
		return naming.Transform(vars.RawName, naming.PascalCase), nil
	case VarSnakeName:
		return naming.Transform(vars.RawName, naming.SnakeCase), nil
	case VarPackage:
		if vars.BasePackage == "" {
			return "", &MissingVariableError{Variable: "package", Template: tmpl}
		}
		return strings.ReplaceAll(vars.BasePackage, ".", "/"), nil
	default:
		if value, ok := vars.Extra[identifier]; ok {
			return value, nil
		}
		if identifier == "app" {
			// Known variable, value is supplied per request.
			return "", &MissingVariableError{Variable: "app", Template: tmpl}
		}
		return "", &UnresolvedVariableError{Token: identifier, Template: tmpl}
	}
}
