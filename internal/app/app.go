// Package app wires the core components behind each CLI command.
package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"organizer-cli/internal/catalog"
	"organizer-cli/internal/config"
	"organizer-cli/internal/content"
	"organizer-cli/internal/generator"
	"organizer-cli/pkg/models"
)

// App holds the shared wiring for all commands.
type App struct {
	fs           afero.Fs
	settingsPath string
}

// New creates an App over the operating system filesystem.
func New(settingsPath string) *App {
	return &App{fs: afero.NewOsFs(), settingsPath: settingsPath}
}

func (a *App) resolver() (*config.Resolver, error) {
	settings, err := NewSettingsManager().Load(a.settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tool settings: %w", err)
	}
	return config.NewResolver(a.fs, settings.ResolverOptions()), nil
}

// Generate resolves the configuration for root and runs the file
// generation orchestrator for the request.
func (a *App) Generate(root string, request *models.GenerationRequest) error {
	resolver, err := a.resolver()
	if err != nil {
		return err
	}
	cfg, err := resolver.Resolve(root)
	if err != nil {
		return err
	}

	orchestrator := generator.New(a.fs)
	files, err := orchestrator.Generate(cfg, request, root, content.NewProvider())
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d file(s):\n", len(files))
	for _, file := range files {
		marker := "✓"
		if request.DryRun {
			marker = "(dry-run)"
		}
		testMarker := ""
		if file.IsTest {
			testMarker = "[TEST] "
		}
		fmt.Printf("  %s %s%s\n", marker, testMarker, file.Path)
	}
	if request.DryRun {
		fmt.Println("\n(Dry run - no files were created)")
	}
	return nil
}

// Validate checks every configuration document on the chain plus the
// merged result, printing one line per diagnostic. It returns an error
// iff any error-level diagnostic exists, so the command exits non-zero.
func (a *App) Validate(root string) error {
	resolver, err := a.resolver()
	if err != nil {
		return err
	}

	chain, err := resolver.Chain(root)
	if err != nil {
		return err
	}

	failed := false
	for _, doc := range chain {
		result := config.Validate(doc, false)
		for _, d := range result.Diagnostics {
			fmt.Printf("%s: %s: %s: %s\n", d.Severity, doc.Path, d.Field, d.Message)
		}
		if !result.Valid() {
			failed = true
		}
	}

	eff, err := config.Merge(chain)
	if err != nil {
		return err
	}
	merged := &config.Document{Path: "(merged)", Raw: eff.Raw}
	result := config.Validate(merged, true)
	for _, d := range result.Diagnostics {
		fmt.Printf("%s: %s: %s: %s\n", d.Severity, merged.Path, d.Field, d.Message)
	}
	if !result.Valid() {
		failed = true
	}

	if failed {
		return fmt.Errorf("configuration is invalid")
	}
	fmt.Println("✓ Configuration is valid")
	return nil
}

// Show prints the resolution order, the effective configuration and the
// winning source file per top-level key.
func (a *App) Show(root string) error {
	resolver, err := a.resolver()
	if err != nil {
		return err
	}
	cfg, err := resolver.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Println("Configuration Resolution Order:")
	fmt.Println(strings.Repeat("=", 60))
	for i, source := range cfg.Sources {
		priority := fmt.Sprintf("Level %d", i+1)
		if i == len(cfg.Sources)-1 {
			priority = "HIGHEST"
		}
		fmt.Printf("%d. %s: %s\n", i+1, priority, source)
	}

	fmt.Println("\nEffective Configuration:")
	fmt.Println(strings.Repeat("=", 60))
	rendered, err := yaml.Marshal(cfg.Raw)
	if err != nil {
		return err
	}
	fmt.Print(string(rendered))

	fmt.Println("\nKey Sources:")
	fmt.Println(strings.Repeat("=", 60))
	keys := make([]string, 0, len(cfg.Raw))
	for key := range cfg.Raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-20s %s\n", key, cfg.SourceOf(key))
	}
	return nil
}

// InitProject materializes a catalog template as the project's
// configuration file.
func (a *App) InitProject(root, templateID string, values map[string]string) error {
	loader := catalog.NewLoader()
	doc, err := loader.Load(templateID)
	if err != nil {
		return err
	}
	doc, err = catalog.Customize(doc, values)
	if err != nil {
		return err
	}
	target, err := catalog.Init(a.fs, root, doc)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Initialized %s project at %s\n", templateID, target)
	return nil
}

// ListTemplates prints the built-in catalog.
func (a *App) ListTemplates() error {
	loader := catalog.NewLoader()
	fmt.Println("Available Templates:")
	fmt.Println(strings.Repeat("=", 60))
	for _, info := range loader.List() {
		fmt.Printf("  %-20s (%s) %s\n", info.ID, info.Language, info.ProjectType)
	}
	return nil
}
