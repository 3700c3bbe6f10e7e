package config

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Options controls the upward configuration search. The caller supplies
// them explicitly; the resolver never reads the process environment.
type Options struct {
	// ConfigFile is the per-directory configuration path, relative to each
	// directory on the chain.
	ConfigFile string
	// BoundaryMarkers are directory entries (e.g. ".git") that mark a
	// project boundary. The directory containing a marker is still
	// processed before the walk stops.
	BoundaryMarkers []string
	// StopAtBoundary stops the walk at the first boundary marker found.
	// When false the walk continues to the filesystem root.
	StopAtBoundary bool
	// MaxDepth caps the number of directories visited, guarding against
	// unbounded walks on unusual filesystems.
	MaxDepth int
}

// DefaultOptions returns the standard search policy: .claude/project.yaml
// per directory, stop at a .git boundary, at most 64 levels.
func DefaultOptions() Options {
	return Options{
		ConfigFile:      DefaultConfigFile,
		BoundaryMarkers: []string{".git"},
		StopAtBoundary:  true,
		MaxDepth:        64,
	}
}

// Resolver walks a directory tree upward, collects configuration files and
// merges them into one Effective configuration. A Resolver holds no state
// across calls; each resolution rebuilds its chain from the filesystem.
type Resolver struct {
	fs   afero.Fs
	opts Options
}

// NewResolver creates a resolver over the given filesystem. A nil fs means
// the operating system filesystem.
func NewResolver(fs afero.Fs, opts Options) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.ConfigFile == "" {
		opts.ConfigFile = DefaultConfigFile
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}
	return &Resolver{fs: fs, opts: opts}
}

// Resolve builds the configuration chain for startDir, merges it and
// validates the result. With no document on the chain it fails with
// *NotFoundError naming every path searched.
func (r *Resolver) Resolve(startDir string) (*Effective, error) {
	chain, err := r.Chain(startDir)
	if err != nil {
		return nil, err
	}

	eff, err := Merge(chain)
	if err != nil {
		return nil, err
	}

	merged := &Document{Path: "(merged configuration)", Raw: eff.Raw}
	if result := Validate(merged, true); !result.Valid() {
		return nil, &ValidationError{File: merged.Path, Diagnostics: result.Errors()}
	}

	return eff, nil
}

// Chain collects configuration documents from startDir upward and returns
// them in merge order: topmost ancestor first (lowest priority), closest
// directory last (highest priority). Every document is parsed and
// type-checked before it joins the chain.
func (r *Resolver) Chain(startDir string) ([]*Document, error) {
	current := filepath.Clean(startDir)
	var found []*Document
	var searched []string

	for depth := 0; depth < r.opts.MaxDepth; depth++ {
		configPath := filepath.Join(current, filepath.FromSlash(r.opts.ConfigFile))
		searched = append(searched, configPath)

		if exists, _ := afero.Exists(r.fs, configPath); exists {
			doc, err := LoadDocument(r.fs, configPath)
			if err != nil {
				return nil, err
			}
			doc.Dir = current
			if result := Validate(doc, false); !result.Valid() {
				return nil, &ValidationError{File: configPath, Diagnostics: result.Errors()}
			}
			found = append(found, doc)
		}

		if r.opts.StopAtBoundary && r.atBoundary(current) {
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if len(found) == 0 {
		return nil, &NotFoundError{Start: startDir, Searched: searched}
	}

	// Reverse so the topmost ancestor folds first.
	chain := make([]*Document, len(found))
	for i, doc := range found {
		chain[len(found)-1-i] = doc
	}
	return chain, nil
}

func (r *Resolver) atBoundary(dir string) bool {
	for _, marker := range r.opts.BoundaryMarkers {
		if exists, _ := afero.Exists(r.fs, filepath.Join(dir, marker)); exists {
			return true
		}
	}
	return false
}
