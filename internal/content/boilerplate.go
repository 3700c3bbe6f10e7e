// Package content implements the default ContentProvider: language-aware
// boilerplate for generated files. Frameworks needing richer output supply
// their own provider; the orchestrator only sees the interface.
package content

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"organizer-cli/internal/config"
	"organizer-cli/internal/generator"
	"organizer-cli/internal/naming"
)

// Provider renders default boilerplate through text templates.
type Provider struct{}

// NewProvider creates the default boilerplate provider.
func NewProvider() *Provider {
	return &Provider{}
}

var boilerplate = template.Must(
	template.New("boilerplate").Funcs(sprig.TxtFuncMap()).Parse(`
{{- define "java-main" -}}
package {{ .Package }}.{{ .FileType }};

{{ range .Imports -}}
import {{ . }};
{{ end -}}
{{ if .Imports }}
{{ end -}}
{{ range .Annotations -}}
{{ . }}
{{ end -}}
public {{ .ClassType }} {{ .ClassName }} {

    // TODO: Implement business logic

}
{{ end -}}

{{- define "java-test" -}}
package {{ .Package }}.{{ .FileType }};

import org.junit.jupiter.api.Test;
import static org.junit.jupiter.api.Assertions.*;

class {{ .TestClassName }} {

    @Test
    void test{{ .ClassName }}() {
        // TODO: Implement test
    }

}
{{ end -}}

{{- define "python-main" -}}
"""
{{ .PascalName }} {{ .FileType }}
"""

{{ range .Imports }}{{ . }}
{{ end }}
{{- if .BaseClass }}
class {{ .PascalName }}({{ .BaseClass }}):
    """
    {{ .PascalName }} {{ .FileType }}
    """
    # TODO: Implement
    pass
{{- else }}
def {{ .SnakeName }}():
    """
    {{ .PascalName }}
    """
    # TODO: Implement
    pass
{{- end }}
{{ end -}}

{{- define "python-test" -}}
"""
Tests for {{ .PascalName }}
"""

import pytest


def test_{{ .SnakeName }}():
    """
    Test {{ .PascalName }}
    """
    # TODO: Implement test
    pass
{{ end -}}

{{- define "js-component" -}}
import React from 'react';
import styles from './{{ .PascalName }}.module.css';

const {{ .PascalName }} = () => {
  return (
    <div className={styles.container}>
      <h1>{{ .PascalName }}</h1>
      {/* TODO: Implement component */}
    </div>
  );
};

export default {{ .PascalName }};
{{ end -}}

{{- define "js-hook" -}}
import { useState, useEffect } from 'react';

const use{{ .PascalName | trimPrefix "Use" }} = () => {
  // TODO: Implement hook logic
  return {};
};

export default use{{ .PascalName | trimPrefix "Use" }};
{{ end -}}

{{- define "js-service" -}}
// {{ .PascalName }} Service

const {{ .PascalName }}Service = {
  // TODO: Implement service methods
};

export default {{ .PascalName }}Service;
{{ end -}}

{{- define "js-test" -}}
import { render, screen } from '@testing-library/react';
import {{ .PascalName }} from './{{ .PascalName }}';

describe('{{ .PascalName }}', () => {
  test('renders {{ .PascalName }}', () => {
    // TODO: Implement test
  });
});
{{ end -}}

{{- define "generic-main" -}}
// {{ .PascalName }}
// TODO: Implement {{ .FileType }}
{{ end -}}

{{- define "generic-test" -}}
// Test for {{ .PascalName }}
// TODO: Implement tests
{{ end -}}

{{- define "css" -}}
/* {{ .PascalName }} styles */

.container {
  /* TODO: Add styles */
}
{{ end -}}

{{- define "dts" -}}
// {{ .PascalName }} types

export interface {{ .PascalName }}Props {
  // TODO: Define props
}
{{ end -}}

{{- define "generic-additional" -}}
// {{ .Filename }}
// TODO: Implement
{{ end -}}
`))

type boilerplateData struct {
	PascalName    string
	SnakeName     string
	FileType      string
	Package       string
	ClassName     string
	TestClassName string
	ClassType     string
	BaseClass     string
	Imports       []string
	Annotations   []string
	Filename      string
}

// Content returns the main file's boilerplate for the configured language.
func (p *Provider) Content(fileType, name string, cfg *config.Effective) (string, error) {
	data := p.buildData(fileType, name, cfg)
	return p.render(mainTemplate(cfg.Language, fileType), data)
}

// TestContent returns the companion test boilerplate.
func (p *Provider) TestContent(fileType, name string, cfg *config.Effective) (string, error) {
	data := p.buildData(fileType, name, cfg)
	switch cfg.Language {
	case "java":
		return p.render("java-test", data)
	case "python":
		return p.render("python-test", data)
	case "javascript", "typescript":
		return p.render("js-test", data)
	default:
		return p.render("generic-test", data)
	}
}

// AdditionalContent returns boilerplate for an additional file, chosen by
// its filename extension.
func (p *Provider) AdditionalContent(filename, fileType, name string, cfg *config.Effective) (string, error) {
	data := p.buildData(fileType, name, cfg)
	data.Filename = filename
	switch {
	case strings.HasSuffix(filename, ".css"):
		return p.render("css", data)
	case strings.HasSuffix(filename, ".d.ts"), strings.HasSuffix(filename, ".ts"):
		return p.render("dts", data)
	default:
		return p.render("generic-additional", data)
	}
}

func (p *Provider) render(name string, data boilerplateData) (string, error) {
	var b strings.Builder
	if err := boilerplate.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s boilerplate: %w", name, err)
	}
	return b.String(), nil
}

func (p *Provider) buildData(fileType, name string, cfg *config.Effective) boilerplateData {
	pascal := naming.Transform(name, naming.PascalCase)
	data := boilerplateData{
		PascalName:  pascal,
		SnakeName:   naming.Transform(name, naming.SnakeCase),
		FileType:    fileType,
		Package:     cfg.BasePackage,
		ClassName:   pascal,
		ClassType:   javaClassType(fileType),
		BaseClass:   pythonBaseClass(fileType),
		Imports:     cfg.Imports[fileType],
		Annotations: cleanAnnotations(cfg.Annotations[fileType]),
	}

	// Derive the class name from the naming template so a "{Name}Service"
	// pattern yields UserService, matching the generated filename.
	resolver := generator.NewPathResolver(cfg, "")
	if filename, err := resolver.ResolveFilename(fileType, name, nil, false); err == nil {
		data.ClassName = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	data.TestClassName = naming.ApplySuffix(data.ClassName, "Test")

	return data
}

func mainTemplate(language, fileType string) string {
	switch language {
	case "java":
		return "java-main"
	case "python":
		return "python-main"
	case "javascript", "typescript":
		switch fileType {
		case "component":
			return "js-component"
		case "hook":
			return "js-hook"
		case "service":
			return "js-service"
		default:
			return "generic-main"
		}
	default:
		return "generic-main"
	}
}

func javaClassType(fileType string) string {
	if fileType == "repository" {
		return "interface"
	}
	return "class"
}

func pythonBaseClass(fileType string) string {
	switch fileType {
	case "model":
		return "models.Model"
	case "serializer":
		return "serializers.ModelSerializer"
	case "view":
		return "APIView"
	case "form":
		return "forms.Form"
	default:
		return ""
	}
}

func cleanAnnotations(annotations []string) []string {
	if len(annotations) == 0 {
		return nil
	}
	cleaned := make([]string, 0, len(annotations))
	for _, annotation := range annotations {
		cleaned = append(cleaned, strings.TrimSpace(strings.ReplaceAll(annotation, " (optional)", "")))
	}
	return cleaned
}
