// Package config loads, validates, merges and resolves hierarchical
// project-structure configuration documents (.claude/project.yaml).
package config

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the per-directory configuration file path relative
// to each directory on the lookup chain.
const DefaultConfigFile = ".claude/project.yaml"

// Document is one parsed configuration file. Documents are immutable once
// loaded; merging always produces a new Effective value.
type Document struct {
	Path string
	Dir  string
	Raw  map[string]interface{}
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// LoadDocument reads and parses a configuration file. Parse failures are
// reported as *SyntaxError naming the file and line.
func LoadDocument(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		line := 0
		if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
			line, _ = strconv.Atoi(m[1])
		}
		return nil, &SyntaxError{File: path, Line: line, Detail: err.Error()}
	}
	if raw == nil {
		return nil, &ValidationError{File: path, Diagnostics: []Diagnostic{
			{Field: "(document)", Message: "configuration file is empty", Severity: SeverityError},
		}}
	}

	return &Document{Path: path, Dir: filepath.Dir(path), Raw: raw}, nil
}

// StructureEntry is the typed form of one file-type definition under
// `structure`. GenerateTest is nil when the entry does not set it, so the
// merged auto_generate default can apply.
type StructureEntry struct {
	PathTemplate     string
	NamingTemplate   string
	TestPathTemplate string
	GenerateTest     *bool
	AdditionalFiles  []string
}

// Effective is the merged result of a configuration chain plus provenance
// metadata. It is built once per resolution request and never mutated.
type Effective struct {
	Raw map[string]interface{}

	ProjectType string
	Language    string
	BasePackage string
	Version     string

	Structure         map[string]StructureEntry
	NamingConventions map[string]string
	AutoGenerate      map[string]bool
	Annotations       map[string][]string
	Imports           map[string][]string

	// Provenance maps dotted key paths (e.g. "structure.service.path") to
	// the configuration file that last set or merged that key.
	Provenance map[string]string
	// Sources lists contributing files from lowest to highest priority.
	Sources []string
}

// FileTypes returns the defined file-type keys in sorted order.
func (e *Effective) FileTypes() []string {
	types := make([]string, 0, len(e.Structure))
	for name := range e.Structure {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// SourceOf returns the file that last contributed the given dotted key
// path, or the empty string when the key is unknown.
func (e *Effective) SourceOf(keyPath string) string {
	return e.Provenance[keyPath]
}
