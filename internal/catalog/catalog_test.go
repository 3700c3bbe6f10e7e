package catalog

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organizer-cli/internal/config"
)

func TestList_BuiltinsSortedByID(t *testing.T) {
	infos := NewLoader().List()

	require.Len(t, infos, 3)
	assert.Equal(t, "django", infos[0].ID)
	assert.Equal(t, "python", infos[0].Language)
	assert.Equal(t, "react", infos[1].ID)
	assert.Equal(t, "javascript", infos[1].Language)
	assert.Equal(t, "spring-boot", infos[2].ID)
	assert.Equal(t, "java", infos[2].Language)
	assert.Equal(t, "spring-boot", infos[2].ProjectType)
}

func TestList_SkipsBrokenEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"java/good.yaml": &fstest.MapFile{Data: []byte(`
project_type: demo
language: java
structure:
  service:
    path: src/service
    naming: "{Name}Service.java"
`)},
		"java/broken.yaml":  &fstest.MapFile{Data: []byte("language: [unclosed")},
		"java/invalid.yaml": &fstest.MapFile{Data: []byte("language: java")},
	}

	infos := NewLoaderFrom(fsys).List()
	require.Len(t, infos, 1)
	assert.Equal(t, "good", infos[0].ID)
}

func TestLoad_KnownTemplate(t *testing.T) {
	doc, err := NewLoader().Load("spring-boot")
	require.NoError(t, err)
	assert.Equal(t, "spring-boot", doc.Raw["project_type"])
	assert.Equal(t, "com.example.demo", doc.Raw["base_package"])
}

func TestLoad_UnknownTemplateListsAvailable(t *testing.T) {
	_, err := NewLoader().Load("rails")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "rails", notFound.ID)
	assert.Equal(t, []string{"django", "react", "spring-boot"}, notFound.Available)
}

func TestCustomize_OverlaysOnlyExistingKeys(t *testing.T) {
	doc, err := NewLoader().Load("spring-boot")
	require.NoError(t, err)

	customized, err := Customize(doc, map[string]string{
		"base_package": "com.acme.shop",
		"made_up_key":  "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "com.acme.shop", customized.Raw["base_package"])
	assert.NotContains(t, customized.Raw, "made_up_key")

	// the loaded template stays pristine for later inits
	assert.Equal(t, "com.example.demo", doc.Raw["base_package"])
}

func TestCustomize_RewritesLiteralPackagePaths(t *testing.T) {
	doc := &config.Document{Path: "custom.yaml", Raw: map[string]interface{}{
		"project_type": "spring-boot",
		"language":     "java",
		"base_package": "com.example.demo",
		"structure": map[string]interface{}{
			"service": map[string]interface{}{
				"path":      "src/main/java/com/example/demo/service",
				"test_path": "src/test/java/com/example/demo/service",
				"naming":    "{Name}Service.java",
			},
		},
	}}

	customized, err := Customize(doc, map[string]string{"base_package": "org.acme.billing"})
	require.NoError(t, err)

	entry := customized.Raw["structure"].(map[string]interface{})["service"].(map[string]interface{})
	assert.Equal(t, "src/main/java/org/acme/billing/service", entry["path"])
	assert.Equal(t, "src/test/java/org/acme/billing/service", entry["test_path"])

	original := doc.Raw["structure"].(map[string]interface{})["service"].(map[string]interface{})
	assert.Equal(t, "src/main/java/com/example/demo/service", original["path"])
}

func TestInit_WritesConfigAndRefusesOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc, err := NewLoader().Load("react")
	require.NoError(t, err)

	target, err := Init(fs, "/proj", doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/proj", ".claude", "project.yaml"), target)

	_, err = Init(fs, "/proj", doc)
	assert.Error(t, err)
}

func TestInit_RoundTripsThroughResolver(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc, err := NewLoader().Load("spring-boot")
	require.NoError(t, err)
	customized, err := Customize(doc, map[string]string{"base_package": "com.acme.shop"})
	require.NoError(t, err)

	_, err = Init(fs, "/proj", customized)
	require.NoError(t, err)

	resolver := config.NewResolver(fs, config.DefaultOptions())
	effective, err := resolver.Resolve("/proj")
	require.NoError(t, err)

	assert.Equal(t, "spring-boot", effective.ProjectType)
	assert.Equal(t, "java", effective.Language)
	assert.Equal(t, "com.acme.shop", effective.BasePackage)
	assert.True(t, effective.AutoGenerate["tests"])

	// Provenance aside, resolving the initialized project yields the
	// template back unchanged.
	assert.Equal(t, customized.Raw, effective.Raw)
}
