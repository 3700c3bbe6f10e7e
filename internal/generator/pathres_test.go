package generator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organizer-cli/internal/config"
	"organizer-cli/internal/template"
)

func boolPtr(b bool) *bool { return &b }

func javaConfig() *config.Effective {
	return &config.Effective{
		ProjectType: "spring-boot",
		Language:    "java",
		BasePackage: "com.example.shop",
		Structure: map[string]config.StructureEntry{
			"service": {
				PathTemplate:   "src/main/java/{package}/service",
				NamingTemplate: "{Name}Service.java",
			},
			"controller": {
				PathTemplate:     "src/main/java/{package}/controller",
				NamingTemplate:   "{Name}Controller.java",
				TestPathTemplate: "src/test/java/{package}/web",
			},
		},
		AutoGenerate: map[string]bool{"tests": true},
	}
}

func reactConfig() *config.Effective {
	return &config.Effective{
		ProjectType: "react",
		Language:    "javascript",
		Structure: map[string]config.StructureEntry{
			"component": {
				PathTemplate:    "src/components/{Name}",
				NamingTemplate:  "{Name}.jsx",
				GenerateTest:    boolPtr(true),
				AdditionalFiles: []string{"{Name}.module.css", "index.js"},
			},
			"hook": {
				PathTemplate:   "src/hooks",
				NamingTemplate: "use{Name}.js",
				GenerateTest:   boolPtr(false),
			},
		},
	}
}

func TestResolveDir_PackageSeparatorConversion(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	dir, err := resolver.ResolveDir("service", "UserProfile", nil, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "src", "main", "java", "com", "example", "shop", "service"), dir)
}

func TestResolveDir_TestPathConfigured(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	dir, err := resolver.ResolveDir("controller", "User", nil, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "src", "test", "java", "com", "example", "shop", "web"), dir)
}

func TestResolveDir_TestPathFallbackMirrorsSrcMain(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	dir, err := resolver.ResolveDir("service", "User", nil, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "src", "test", "java", "com", "example", "shop", "service"), dir)
}

func TestResolveDir_TestPathFallbackSameDir(t *testing.T) {
	resolver := NewPathResolver(reactConfig(), "/app")

	dir, err := resolver.ResolveDir("component", "LoginForm", nil, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/app", "src", "components", "LoginForm"), dir)
}

func TestResolveFilename(t *testing.T) {
	tests := []struct {
		fileType string
		name     string
		want     string
	}{
		{"service", "user profile", "UserProfileService.java"},
		{"service", "user-profile", "UserProfileService.java"},
		{"controller", "checkout", "CheckoutController.java"},
	}
	resolver := NewPathResolver(javaConfig(), "/repo")
	for _, tt := range tests {
		got, err := resolver.ResolveFilename(tt.fileType, tt.name, nil, false)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "name %q", tt.name)
	}
}

func TestResolveFilename_SuffixNotDoubled(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	got, err := resolver.ResolveFilename("service", "UserService", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "UserService.java", got)
}

func TestResolveFilename_SnakeSuffixNotDoubled(t *testing.T) {
	cfg := &config.Effective{
		Language: "python",
		Structure: map[string]config.StructureEntry{
			"service": {
				PathTemplate:   "app/services",
				NamingTemplate: "{name}_service.py",
			},
		},
	}
	resolver := NewPathResolver(cfg, "/repo")

	got, err := resolver.ResolveFilename("service", "UserService", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "user_service.py", got)

	got, err = resolver.ResolveFilename("service", "Payment", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "payment_service.py", got)
}

func TestResolveFilename_TestConventionPerLanguage(t *testing.T) {
	tests := []struct {
		language string
		filename string
		want     string
	}{
		{"java", "UserService.java", "UserServiceTest.java"},
		{"java", "UserServiceTest.java", "UserServiceTest.java"},
		{"python", "user_service.py", "test_user_service.py"},
		{"python", "test_user_service.py", "test_user_service.py"},
		{"javascript", "LoginForm.jsx", "LoginForm.test.jsx"},
		{"typescript", "useAuth.ts", "useAuth.test.ts"},
		{"go", "handler.go", "handlerTest.go"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testFilename(tt.filename, tt.language), "%s/%s", tt.language, tt.filename)
	}
}

func TestResolveFullPath(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	path, err := resolver.ResolveFullPath("service", "user profile", nil, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "src", "main", "java", "com", "example", "shop", "service", "UserProfileService.java"), path)
}

func TestResolve_UnknownFileType(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	_, err := resolver.ResolveFullPath("repository", "User", nil, false)
	var unknownErr *UnknownFileTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "repository", unknownErr.FileType)
	assert.Equal(t, []string{"controller", "service"}, unknownErr.Known)
}

func TestAdditionalFiles_DeclaredOrder(t *testing.T) {
	resolver := NewPathResolver(reactConfig(), "/app")

	dir, err := resolver.ResolveDir("component", "LoginForm", nil, false)
	require.NoError(t, err)
	paths, err := resolver.AdditionalFiles("component", "LoginForm", nil, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "LoginForm.module.css"),
		filepath.Join(dir, "index.js"),
	}, paths)
}

func TestAdditionalFiles_NoneConfigured(t *testing.T) {
	resolver := NewPathResolver(javaConfig(), "/repo")

	paths, err := resolver.AdditionalFiles("service", "User", nil, "/repo/src")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestShouldGenerateTest(t *testing.T) {
	assert.True(t, NewPathResolver(javaConfig(), "/repo").ShouldGenerateTest("service"))

	react := NewPathResolver(reactConfig(), "/app")
	assert.True(t, react.ShouldGenerateTest("component"))
	assert.False(t, react.ShouldGenerateTest("hook"))
	assert.False(t, react.ShouldGenerateTest("page"))
}

func TestResolveDir_CustomVariable(t *testing.T) {
	cfg := &config.Effective{
		Language: "python",
		Structure: map[string]config.StructureEntry{
			"view": {
				PathTemplate:   "{app}/views",
				NamingTemplate: "{name}_view.py",
			},
		},
	}
	resolver := NewPathResolver(cfg, "/proj")

	dir, err := resolver.ResolveDir("view", "Order", map[string]string{"app": "billing"}, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/proj", "billing", "views"), dir)

	_, err = resolver.ResolveDir("view", "Order", nil, false)
	var missingErr *template.MissingVariableError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "app", missingErr.Variable)
}
