package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organizer-cli/internal/config"
)

func springConfig() *config.Effective {
	return &config.Effective{
		ProjectType: "spring-boot",
		Language:    "java",
		BasePackage: "com.example.shop",
		Structure: map[string]config.StructureEntry{
			"service": {
				PathTemplate:   "src/main/java/{package}/service",
				NamingTemplate: "{Name}Service.java",
			},
			"repository": {
				PathTemplate:   "src/main/java/{package}/repository",
				NamingTemplate: "{Name}Repository.java",
			},
		},
		Annotations: map[string][]string{
			"service":    {"@Service"},
			"repository": {"@Repository (optional)"},
		},
		Imports: map[string][]string{
			"service": {"org.springframework.stereotype.Service"},
		},
	}
}

func TestContent_JavaService(t *testing.T) {
	provider := NewProvider()

	content, err := provider.Content("service", "user profile", springConfig())
	require.NoError(t, err)

	assert.Contains(t, content, "package com.example.shop.service;")
	assert.Contains(t, content, "import org.springframework.stereotype.Service;")
	assert.Contains(t, content, "@Service")
	assert.Contains(t, content, "public class UserProfileService {")
}

func TestContent_JavaRepositoryIsInterface(t *testing.T) {
	provider := NewProvider()

	content, err := provider.Content("repository", "User", springConfig())
	require.NoError(t, err)

	assert.Contains(t, content, "public interface UserRepository {")
	assert.Contains(t, content, "@Repository")
	assert.NotContains(t, content, "(optional)")
}

func TestTestContent_JavaUsesJUnit(t *testing.T) {
	provider := NewProvider()

	content, err := provider.TestContent("service", "UserProfile", springConfig())
	require.NoError(t, err)

	assert.Contains(t, content, "import org.junit.jupiter.api.Test;")
	assert.Contains(t, content, "class UserProfileServiceTest {")
	assert.Contains(t, content, "void testUserProfileService()")
}

func TestContent_PythonModelGetsBaseClass(t *testing.T) {
	cfg := &config.Effective{
		Language: "python",
		Structure: map[string]config.StructureEntry{
			"model": {PathTemplate: "app/models", NamingTemplate: "{name}.py"},
			"util":  {PathTemplate: "app/utils", NamingTemplate: "{name}.py"},
		},
	}
	provider := NewProvider()

	content, err := provider.Content("model", "order item", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "class OrderItem(models.Model):")

	content, err = provider.Content("util", "order item", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "def order_item():")
}

func TestContent_ReactComponentAndHook(t *testing.T) {
	cfg := &config.Effective{
		Language: "javascript",
		Structure: map[string]config.StructureEntry{
			"component": {PathTemplate: "src/components/{Name}", NamingTemplate: "{Name}.jsx"},
			"hook":      {PathTemplate: "src/hooks", NamingTemplate: "use{Name}.js"},
		},
	}
	provider := NewProvider()

	content, err := provider.Content("component", "login form", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "const LoginForm = () => {")
	assert.Contains(t, content, "import styles from './LoginForm.module.css';")

	content, err = provider.Content("hook", "UseAuth", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "const useAuth = () => {")
}

func TestTestContent_ReactUsesTestingLibrary(t *testing.T) {
	cfg := &config.Effective{
		Language: "javascript",
		Structure: map[string]config.StructureEntry{
			"component": {PathTemplate: "src/components/{Name}", NamingTemplate: "{Name}.jsx"},
		},
	}

	content, err := NewProvider().TestContent("component", "LoginForm", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "import { render, screen } from '@testing-library/react';")
	assert.Contains(t, content, "describe('LoginForm', () => {")
}

func TestAdditionalContent_ByExtension(t *testing.T) {
	cfg := &config.Effective{
		Language: "javascript",
		Structure: map[string]config.StructureEntry{
			"component": {PathTemplate: "src/components/{Name}", NamingTemplate: "{Name}.jsx"},
		},
	}
	provider := NewProvider()

	content, err := provider.AdditionalContent("LoginForm.module.css", "component", "LoginForm", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "/* LoginForm styles */")

	content, err = provider.AdditionalContent("LoginForm.d.ts", "component", "LoginForm", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "export interface LoginFormProps {")

	content, err = provider.AdditionalContent("index.js", "component", "LoginForm", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "// index.js")
}

func TestContent_UnknownLanguageFallsBack(t *testing.T) {
	cfg := &config.Effective{
		Language: "rust",
		Structure: map[string]config.StructureEntry{
			"module": {PathTemplate: "src", NamingTemplate: "{name}.rs"},
		},
	}

	content, err := NewProvider().Content("module", "Parser", cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "// Parser")
}
