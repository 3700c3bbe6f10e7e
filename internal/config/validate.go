package config

import (
	"fmt"
	"strings"

	"organizer-cli/internal/template"
)

// Severity grades a schema diagnostic. Warnings never block use of a
// configuration; errors do.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one validation finding tied to a dotted field path.
type Diagnostic struct {
	Field    string
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Field, d.Message)
}

// Result collects the diagnostics of one validation pass.
type Result struct {
	Diagnostics []Diagnostic
}

// Valid reports whether the pass produced no error-level diagnostics.
func (r *Result) Valid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns only the error-level diagnostics.
func (r *Result) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}

// Warnings returns only the warning-level diagnostics.
func (r *Result) Warnings() []Diagnostic {
	var warns []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			warns = append(warns, d)
		}
	}
	return warns
}

func (r *Result) errorf(field, format string, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (r *Result) warnf(field, format string, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

var knownTopLevelKeys = map[string]bool{
	"project_type":       true,
	"language":           true,
	"base_package":       true,
	"version":            true,
	"structure":          true,
	"naming_conventions": true,
	"auto_generate":      true,
	"annotations":        true,
	"imports":            true,
	"notes":              true,
}

var knownConventions = map[string]bool{
	"PascalCase": true,
	"camelCase":  true,
	"snake_case": true,
	"kebab-case": true,
}

// Validate checks a document against the configuration schema. With root
// set, required fields (project_type, language, structure) must be present;
// contributor documents in a chain are only type-checked, since an ancestor
// may supply the required fields they omit. Unknown top-level keys are
// warnings for forward compatibility.
func Validate(doc *Document, root bool) *Result {
	result := &Result{}
	raw := doc.Raw

	if root {
		for _, field := range []string{"project_type", "language", "structure"} {
			if _, ok := raw[field]; !ok {
				result.errorf(field, "required field is missing")
			}
		}
	}

	for _, field := range []string{"project_type", "language", "base_package", "version"} {
		if value, ok := raw[field]; ok {
			s, isString := value.(string)
			if !isString {
				result.errorf(field, "must be a string, got %T", value)
			} else if strings.TrimSpace(s) == "" {
				result.errorf(field, "must be a non-empty string")
			}
		}
	}

	for key := range raw {
		if !knownTopLevelKeys[key] && !isReplaceMarker(key) {
			result.warnf(key, "unknown configuration key (ignored)")
		}
	}

	if value, ok := raw["structure"]; ok {
		validateStructure(result, value, root)
	}

	if value, ok := raw["naming_conventions"]; ok {
		validateNamingConventions(result, value)
	}

	for _, field := range []string{"annotations", "imports"} {
		if value, ok := raw[field]; ok {
			validateStringListMap(result, field, value)
		}
	}

	if value, ok := raw["auto_generate"]; ok {
		validateBoolMap(result, "auto_generate", value)
	}

	return result
}

func validateStructure(result *Result, value interface{}, root bool) {
	structure, ok := asMap(value)
	if !ok {
		result.errorf("structure", "must be a mapping of file types, got %T", value)
		return
	}
	if root && len(structure) == 0 {
		result.errorf("structure", "must define at least one file type")
		return
	}

	for fileType, entryValue := range structure {
		if isReplaceMarker(fileType) {
			continue
		}
		field := "structure." + fileType
		entry, ok := asMap(entryValue)
		if !ok {
			result.errorf(field, "must be a mapping, got %T", entryValue)
			continue
		}
		validateStructureEntry(result, field, entry, root)
	}
}

func validateStructureEntry(result *Result, field string, entry map[string]interface{}, root bool) {
	if root {
		for _, required := range []string{"path", "naming"} {
			if _, ok := entry[required]; !ok {
				result.errorf(field+"."+required, "required field is missing")
			}
		}
	}

	for _, templateField := range []string{"path", "naming", "test_path"} {
		value, ok := entry[templateField]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			result.errorf(field+"."+templateField, "must be a string, got %T", value)
			continue
		}
		if strings.TrimSpace(s) == "" {
			result.errorf(field+"."+templateField, "must be a non-empty string")
			continue
		}
		validateTemplateSyntax(result, field+"."+templateField, s)
		if templateField != "naming" && strings.HasPrefix(s, "/") {
			result.errorf(field+"."+templateField, "path template must be relative, not start with '/'")
		}
	}

	if value, ok := entry["generate_test"]; ok {
		if _, isBool := value.(bool); !isBool {
			result.errorf(field+".generate_test", "must be a boolean, got %T", value)
		}
	}

	if value, ok := entry["additional_files"]; ok {
		list, isList := value.([]interface{})
		if !isList {
			result.errorf(field+".additional_files", "must be a list, got %T", value)
			return
		}
		for i, item := range list {
			s, isString := item.(string)
			itemField := fmt.Sprintf("%s.additional_files[%d]", field, i)
			if !isString {
				result.errorf(itemField, "must be a string, got %T", item)
				continue
			}
			validateTemplateSyntax(result, itemField, s)
		}
	}
}

func validateTemplateSyntax(result *Result, field, tmpl string) {
	if _, err := template.Tokens(tmpl); err != nil {
		result.errorf(field, "%v", err)
	}
}

func validateNamingConventions(result *Result, value interface{}) {
	conventions, ok := asMap(value)
	if !ok {
		result.errorf("naming_conventions", "must be a mapping, got %T", value)
		return
	}
	for key, conv := range conventions {
		if isReplaceMarker(key) {
			continue
		}
		s, isString := conv.(string)
		if !isString {
			result.errorf("naming_conventions."+key, "must be a string, got %T", conv)
			continue
		}
		if !knownConventions[s] {
			result.warnf("naming_conventions."+key, "unknown convention %q", s)
		}
	}
}

func validateStringListMap(result *Result, field string, value interface{}) {
	m, ok := asMap(value)
	if !ok {
		result.errorf(field, "must be a mapping, got %T", value)
		return
	}
	for key, listValue := range m {
		if isReplaceMarker(key) {
			continue
		}
		list, isList := listValue.([]interface{})
		if !isList {
			result.errorf(field+"."+key, "must be a list, got %T", listValue)
			continue
		}
		for i, item := range list {
			if _, isString := item.(string); !isString {
				result.errorf(fmt.Sprintf("%s.%s[%d]", field, key, i), "must be a string, got %T", item)
			}
		}
	}
}

func validateBoolMap(result *Result, field string, value interface{}) {
	m, ok := asMap(value)
	if !ok {
		result.errorf(field, "must be a mapping, got %T", value)
		return
	}
	for key, itemValue := range m {
		if isReplaceMarker(key) {
			continue
		}
		if _, isBool := itemValue.(bool); !isBool {
			result.errorf(field+"."+key, "must be a boolean, got %T", itemValue)
		}
	}
}

// asMap normalizes the two mapping shapes yaml.v3 can produce.
func asMap(value interface{}) (map[string]interface{}, bool) {
	switch m := value.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			converted[key] = v
		}
		return converted, true
	default:
		return nil, false
	}
}

// isReplaceMarker reports whether a key is a `<key>_replace` list-merge
// marker consumed by the merger.
func isReplaceMarker(key string) bool {
	return strings.HasSuffix(key, "_replace")
}
