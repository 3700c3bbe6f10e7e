package interfaces

import "organizer-cli/internal/config"

// ContentProvider supplies the body of generated files. Framework-specific
// boilerplate lives behind this interface; the orchestrator never inspects
// the content it is given.
type ContentProvider interface {
	// Content returns the main file's content for a file type and name
	Content(fileType, name string, cfg *config.Effective) (string, error)

	// TestContent returns the companion test file's content
	TestContent(fileType, name string, cfg *config.Effective) (string, error)

	// AdditionalContent returns content for an additional file (styles,
	// type declarations) identified by its resolved filename
	AdditionalContent(filename, fileType, name string, cfg *config.Effective) (string, error)
}

// ProviderFunc adapts a single content function to the ContentProvider
// interface. Test and additional files receive the same content as the
// main file.
type ProviderFunc func(fileType, name string, cfg *config.Effective) (string, error)

func (f ProviderFunc) Content(fileType, name string, cfg *config.Effective) (string, error) {
	return f(fileType, name, cfg)
}

func (f ProviderFunc) TestContent(fileType, name string, cfg *config.Effective) (string, error) {
	return f(fileType, name, cfg)
}

func (f ProviderFunc) AdditionalContent(filename, fileType, name string, cfg *config.Effective) (string, error) {
	return f(fileType, name, cfg)
}
