// Package catalog serves the built-in collection of named project
// templates (spring-boot, django, react). Templates are embedded at build
// time and validated before being offered, so an init never writes a
// configuration the resolver would reject.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"organizer-cli/internal/config"
)

//go:embed templates
var builtins embed.FS

// Info describes one catalog entry.
type Info struct {
	ID          string
	Language    string
	ProjectType string
}

// NotFoundError reports an unknown template ID with the available set.
type NotFoundError struct {
	ID        string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found\navailable templates: %s",
		e.ID, strings.Join(e.Available, ", "))
}

// Loader reads templates from a catalog filesystem laid out as
// <language>/<id>.yaml.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader over the embedded built-in catalog.
func NewLoader() *Loader {
	sub, err := fs.Sub(builtins, "templates")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return &Loader{fsys: sub}
}

// NewLoaderFrom returns a loader over an arbitrary catalog filesystem.
func NewLoaderFrom(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// List returns every loadable template sorted by ID. Entries that fail to
// parse or validate are skipped rather than breaking the listing.
func (l *Loader) List() []Info {
	var infos []Info
	fs.WalkDir(l.fsys, ".", func(entryPath string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(entryPath, ".yaml") {
			return nil
		}
		doc, loadErr := l.parse(entryPath)
		if loadErr != nil {
			return nil
		}
		if result := config.Validate(doc, true); !result.Valid() {
			return nil
		}
		eff, mergeErr := config.Merge([]*config.Document{doc})
		if mergeErr != nil {
			return nil
		}
		infos = append(infos, Info{
			ID:          strings.TrimSuffix(path.Base(entryPath), ".yaml"),
			Language:    path.Dir(entryPath),
			ProjectType: eff.ProjectType,
		})
		return nil
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Load returns the validated document for a template ID.
func (l *Loader) Load(id string) (*config.Document, error) {
	entryPath, err := l.find(id)
	if err != nil {
		return nil, err
	}
	doc, err := l.parse(entryPath)
	if err != nil {
		return nil, err
	}
	if result := config.Validate(doc, true); !result.Valid() {
		return nil, &config.ValidationError{File: entryPath, Diagnostics: result.Errors()}
	}
	return doc, nil
}

func (l *Loader) find(id string) (string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := path.Join(entry.Name(), id+".yaml")
		if _, err := fs.Stat(l.fsys, candidate); err == nil {
			return candidate, nil
		}
	}

	available := make([]string, 0)
	for _, info := range l.List() {
		available = append(available, info.ID)
	}
	return "", &NotFoundError{ID: id, Available: available}
}

func (l *Loader) parse(entryPath string) (*config.Document, error) {
	data, err := fs.ReadFile(l.fsys, entryPath)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &config.SyntaxError{File: entryPath, Detail: err.Error()}
	}
	if raw == nil {
		return nil, fmt.Errorf("template %s is empty", entryPath)
	}
	return &config.Document{Path: entryPath, Raw: raw}, nil
}

// Customize overlays user-supplied scalar values onto a template document,
// touching only keys the template already defines. A changed base_package
// also rewrites the package-derived prefixes baked into structure paths.
func Customize(doc *config.Document, values map[string]string) (*config.Document, error) {
	customized := config.CloneRaw(doc.Raw)

	overlay := make(map[string]interface{})
	for key, value := range values {
		if _, exists := customized[key]; exists {
			overlay[key] = value
		}
	}
	if err := mergo.Merge(&customized, overlay, mergo.WithOverride); err != nil {
		return nil, err
	}

	if newPackage, ok := values["base_package"]; ok {
		oldPackage, _ := doc.Raw["base_package"].(string)
		rewritePackagePaths(customized, oldPackage, newPackage)
	}

	return &config.Document{Path: doc.Path, Dir: doc.Dir, Raw: customized}, nil
}

func rewritePackagePaths(raw map[string]interface{}, oldPackage, newPackage string) {
	if oldPackage == "" || oldPackage == newPackage {
		return
	}
	structure, ok := raw["structure"].(map[string]interface{})
	if !ok {
		return
	}
	oldPath := strings.ReplaceAll(oldPackage, ".", "/")
	newPath := strings.ReplaceAll(newPackage, ".", "/")
	for _, entryValue := range structure {
		entry, ok := entryValue.(map[string]interface{})
		if !ok {
			continue
		}
		for _, field := range []string{"path", "test_path"} {
			if value, ok := entry[field].(string); ok {
				entry[field] = strings.ReplaceAll(value, oldPath, newPath)
			}
		}
	}
}

// Init materializes a template as <projectRoot>/.claude/project.yaml,
// refusing to overwrite an existing configuration. It returns the path
// written.
func Init(afs afero.Fs, projectRoot string, doc *config.Document) (string, error) {
	target := filepath.Join(projectRoot, filepath.FromSlash(config.DefaultConfigFile))
	if exists, _ := afero.Exists(afs, target); exists {
		return "", fmt.Errorf("configuration already exists: %s", target)
	}

	data, err := yaml.Marshal(doc.Raw)
	if err != nil {
		return "", err
	}
	if err := afs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := afero.WriteFile(afs, target, data, 0o644); err != nil {
		return "", err
	}
	return target, nil
}
