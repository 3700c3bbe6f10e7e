// Package generator resolves target paths for generated files and
// orchestrates the generation run: main file, companion test, additional
// files, conflict checks and atomic writes.
package generator

import (
	"path/filepath"
	"strings"

	"organizer-cli/internal/config"
	"organizer-cli/internal/naming"
	"organizer-cli/internal/template"
)

// PathResolver resolves directories and filenames for one effective
// configuration and project root.
type PathResolver struct {
	cfg  *config.Effective
	root string
}

// NewPathResolver creates a path resolver rooted at projectRoot.
func NewPathResolver(cfg *config.Effective, projectRoot string) *PathResolver {
	return &PathResolver{cfg: cfg, root: projectRoot}
}

func (p *PathResolver) entry(fileType string) (config.StructureEntry, error) {
	entry, ok := p.cfg.Structure[fileType]
	if !ok {
		return config.StructureEntry{}, &UnknownFileTypeError{FileType: fileType, Known: p.cfg.FileTypes()}
	}
	return entry, nil
}

func (p *PathResolver) vars(name string, extra map[string]string) template.Vars {
	return template.Vars{RawName: name, BasePackage: p.cfg.BasePackage, Extra: extra}
}

// ResolveDir resolves the absolute directory for a file type. For test
// files it uses the entry's test_path; with none configured it falls back
// to the main path with its first src/main element turned into src/test,
// or the main directory itself.
func (p *PathResolver) ResolveDir(fileType, name string, extra map[string]string, test bool) (string, error) {
	entry, err := p.entry(fileType)
	if err != nil {
		return "", err
	}

	pathTemplate := entry.PathTemplate
	if test {
		if entry.TestPathTemplate != "" {
			pathTemplate = entry.TestPathTemplate
		} else {
			pathTemplate = testDirFallback(entry.PathTemplate)
		}
	}

	rendered, err := template.Render(pathTemplate, p.vars(name, extra))
	if err != nil {
		return "", err
	}
	return filepath.Join(p.root, filepath.FromSlash(rendered)), nil
}

// ResolveFilename resolves the filename for a file type, applying the
// naming template with suffix deduplication. Test filenames follow the
// configured language's convention.
func (p *PathResolver) ResolveFilename(fileType, name string, extra map[string]string, test bool) (string, error) {
	entry, err := p.entry(fileType)
	if err != nil {
		return "", err
	}

	filename, err := p.renderNaming(entry.NamingTemplate, name, extra)
	if err != nil {
		return "", err
	}
	if test {
		filename = testFilename(filename, p.cfg.Language)
	}
	return filename, nil
}

// ResolveFullPath resolves the complete absolute path, directory plus
// filename, for a file type.
func (p *PathResolver) ResolveFullPath(fileType, name string, extra map[string]string, test bool) (string, error) {
	dir, err := p.ResolveDir(fileType, name, extra, test)
	if err != nil {
		return "", err
	}
	filename, err := p.ResolveFilename(fileType, name, extra, test)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// AdditionalFiles resolves the filenames configured as additional_files
// into dir, in their declared order.
func (p *PathResolver) AdditionalFiles(fileType, name string, extra map[string]string, dir string) ([]string, error) {
	entry, err := p.entry(fileType)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entry.AdditionalFiles))
	for _, fileTemplate := range entry.AdditionalFiles {
		filename, err := template.Render(fileTemplate, p.vars(name, extra))
		if err != nil {
			return nil, err
		}
		paths = append(paths, filepath.Join(dir, filename))
	}
	return paths, nil
}

// ShouldGenerateTest reports whether a test file accompanies this file
// type: the entry's generate_test flag when set, otherwise the merged
// auto_generate.tests default.
func (p *PathResolver) ShouldGenerateTest(fileType string) bool {
	entry, ok := p.cfg.Structure[fileType]
	if !ok {
		return false
	}
	if entry.GenerateTest != nil {
		return *entry.GenerateTest
	}
	return p.cfg.AutoGenerate["tests"]
}

// renderNaming renders a naming template. A literal suffix that directly
// follows {Name} or {name} is applied through the naming engine so a name
// that already carries the suffix does not get it twice:
// "UserService" + "{Name}Service.java" stays "UserService.java".
func (p *PathResolver) renderNaming(tmpl, name string, extra map[string]string) (string, error) {
	segments, err := template.Parse(tmpl)
	if err != nil {
		return "", err
	}

	vars := p.vars(name, extra)
	var b strings.Builder
	var skip []string

	for _, seg := range segments {
		if !seg.IsVar() {
			b.WriteString(trimAnyPrefixFold(seg.Literal, skip))
			skip = nil
			continue
		}

		skip = nil
		rendered, err := template.Render("{"+seg.Var+"}", vars)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)

		switch template.KindOf(seg.Var) {
		case template.VarPascalName, template.VarSnakeName:
			skip = dedupCandidates(rendered)
		}
	}
	return b.String(), nil
}

// dedupCandidates returns the literal prefixes a segment following value
// must not repeat: the trailing word of a multi-word name, with and
// without its separator.
func dedupCandidates(value string) []string {
	words := naming.SplitWords(value)
	if len(words) < 2 {
		return nil
	}
	last := words[len(words)-1]
	return []string{"_" + last, "-" + last, last}
}

func trimAnyPrefixFold(literal string, prefixes []string) string {
	for _, prefix := range prefixes {
		if len(literal) >= len(prefix) && strings.EqualFold(literal[:len(prefix)], prefix) {
			return literal[len(prefix):]
		}
	}
	return literal
}

// testDirFallback derives a conventional test directory from a main path
// template: the first src/main element becomes src/test; without one the
// main directory is reused.
func testDirFallback(pathTemplate string) string {
	if strings.Contains(pathTemplate, "src/main") {
		return strings.Replace(pathTemplate, "src/main", "src/test", 1)
	}
	return pathTemplate
}

// testFilename converts a main filename to its test companion per the
// project language: UserService.java -> UserServiceTest.java,
// user_service.py -> test_user_service.py, Login.jsx -> Login.test.jsx.
func testFilename(filename, language string) string {
	stem := filename
	ext := ""
	if dot := strings.LastIndexByte(filename, '.'); dot >= 0 {
		stem, ext = filename[:dot], filename[dot:]
	}

	switch language {
	case "python":
		if !strings.HasPrefix(stem, "test_") {
			stem = "test_" + stem
		}
	case "javascript", "typescript":
		if !strings.HasSuffix(stem, ".test") && !strings.HasSuffix(stem, ".spec") {
			stem += ".test"
		}
	default:
		stem = naming.ApplySuffix(stem, "Test")
	}
	return stem + ext
}
