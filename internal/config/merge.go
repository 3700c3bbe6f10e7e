package config

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Merge folds a configuration chain, ancestor first, into one Effective
// configuration. Conflict rules:
//
//   - scalars: the descendant's value replaces the ancestor's
//   - mappings: recursive merge, keys present on one side carry through
//   - sequences: ancestor's then descendant's elements, exact duplicates
//     dropped keeping first occurrence; a sibling `<key>_replace: true`
//     makes the descendant's sequence replace the ancestor's outright
//
// A container-kind disagreement between ancestor and descendant (scalar vs
// list vs mapping) is a schema error, never a silent coercion. Replace
// markers are consumed by the merge and never appear in the result.
func Merge(chain []*Document) (*Effective, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("cannot merge an empty configuration chain")
	}

	merged := make(map[string]interface{})
	provenance := make(map[string]string)
	sources := make([]string, 0, len(chain))

	for _, doc := range chain {
		result, err := mergeMaps(merged, doc.Raw, "", doc.Path, provenance)
		if err != nil {
			return nil, err
		}
		merged = result
		sources = append(sources, doc.Path)
	}

	return buildEffective(merged, provenance, sources)
}

func mergeMaps(base, override map[string]interface{}, prefix, source string, provenance map[string]string) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(base)+len(override))
	for key, value := range base {
		result[key] = deepCopy(value)
	}

	for key, value := range override {
		if isReplaceMarker(key) {
			if _, isBool := value.(bool); isBool {
				continue
			}
		}

		path := joinKey(prefix, key)
		existing, present := result[key]
		if !present {
			result[key] = deepCopy(value)
			recordProvenance(path, value, source, provenance)
			continue
		}

		baseMap, baseIsMap := asMap(existing)
		overrideMap, overrideIsMap := asMap(value)
		baseList, baseIsList := existing.([]interface{})
		overrideList, overrideIsList := value.([]interface{})

		switch {
		case baseIsMap && overrideIsMap:
			mergedChild, err := mergeMaps(baseMap, overrideMap, path, source, provenance)
			if err != nil {
				return nil, err
			}
			result[key] = mergedChild
			provenance[path] = source
		case baseIsList && overrideIsList:
			if replaceRequested(override, key) {
				result[key] = deepCopy(value)
			} else {
				result[key] = extendList(baseList, overrideList)
			}
			provenance[path] = source
		case baseIsMap != overrideIsMap || baseIsList != overrideIsList:
			return nil, &ValidationError{File: source, Diagnostics: []Diagnostic{{
				Field:    path,
				Message:  fmt.Sprintf("type mismatch: ancestor defines %s, descendant defines %s", kindName(existing), kindName(value)),
				Severity: SeverityError,
			}}}
		default:
			result[key] = deepCopy(value)
			provenance[path] = source
		}
	}

	return result, nil
}

// replaceRequested checks for a `<key>_replace: true` sibling in the
// overriding document.
func replaceRequested(override map[string]interface{}, key string) bool {
	marker, ok := override[key+"_replace"].(bool)
	return ok && marker
}

// extendList appends override elements to base, dropping exact-value
// duplicates and keeping first-occurrence order.
func extendList(base, override []interface{}) []interface{} {
	result := make([]interface{}, 0, len(base)+len(override))
	for _, item := range base {
		if !containsValue(result, item) {
			result = append(result, deepCopy(item))
		}
	}
	for _, item := range override {
		if !containsValue(result, item) {
			result = append(result, deepCopy(item))
		}
	}
	return result
}

func containsValue(list []interface{}, value interface{}) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, value) {
			return true
		}
	}
	return false
}

// recordProvenance marks path (and every nested key path below it, for
// mapping values) as contributed by source.
func recordProvenance(path string, value interface{}, source string, provenance map[string]string) {
	provenance[path] = source
	if m, ok := asMap(value); ok {
		for key, child := range m {
			if isReplaceMarker(key) {
				continue
			}
			recordProvenance(joinKey(path, key), child, source, provenance)
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func kindName(value interface{}) string {
	if _, ok := asMap(value); ok {
		return "a mapping"
	}
	if _, ok := value.([]interface{}); ok {
		return "a list"
	}
	return fmt.Sprintf("a scalar (%T)", value)
}

func deepCopy(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		copied := make(map[string]interface{}, len(v))
		for key, child := range v {
			copied[key] = deepCopy(child)
		}
		return copied
	case map[interface{}]interface{}:
		copied := make(map[interface{}]interface{}, len(v))
		for key, child := range v {
			copied[key] = deepCopy(child)
		}
		return copied
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, child := range v {
			copied[i] = deepCopy(child)
		}
		return copied
	default:
		return value
	}
}

// CloneRaw deep-copies a raw configuration mapping. Documents are never
// mutated in place; callers that customize one work on a clone.
func CloneRaw(raw map[string]interface{}) map[string]interface{} {
	return deepCopy(raw).(map[string]interface{})
}

// buildEffective converts the merged raw mapping into the typed shape all
// downstream consumers operate on.
func buildEffective(raw map[string]interface{}, provenance map[string]string, sources []string) (*Effective, error) {
	eff := &Effective{
		Raw:         raw,
		ProjectType: cast.ToString(raw["project_type"]),
		Language:    cast.ToString(raw["language"]),
		BasePackage: cast.ToString(raw["base_package"]),
		Version:     cast.ToString(raw["version"]),
		Structure:   make(map[string]StructureEntry),
		Provenance:  provenance,
		Sources:     sources,
	}

	if structure, ok := asMap(raw["structure"]); ok {
		for fileType, entryValue := range structure {
			entry, ok := asMap(entryValue)
			if !ok {
				continue
			}
			typed := StructureEntry{
				PathTemplate:     cast.ToString(entry["path"]),
				NamingTemplate:   cast.ToString(entry["naming"]),
				TestPathTemplate: cast.ToString(entry["test_path"]),
				AdditionalFiles:  cast.ToStringSlice(entry["additional_files"]),
			}
			if value, ok := entry["generate_test"]; ok {
				generate := cast.ToBool(value)
				typed.GenerateTest = &generate
			}
			eff.Structure[fileType] = typed
		}
	}

	if conventions, ok := asMap(raw["naming_conventions"]); ok {
		eff.NamingConventions = make(map[string]string, len(conventions))
		for key, value := range conventions {
			eff.NamingConventions[key] = cast.ToString(value)
		}
	}

	if auto, ok := asMap(raw["auto_generate"]); ok {
		eff.AutoGenerate = make(map[string]bool, len(auto))
		for key, value := range auto {
			eff.AutoGenerate[key] = cast.ToBool(value)
		}
	}

	eff.Annotations = stringListMap(raw["annotations"])
	eff.Imports = stringListMap(raw["imports"])

	return eff, nil
}

func stringListMap(value interface{}) map[string][]string {
	m, ok := asMap(value)
	if !ok {
		return nil
	}
	result := make(map[string][]string, len(m))
	for key, listValue := range m {
		result[key] = cast.ToStringSlice(listValue)
	}
	return result
}
