package interfaces

import (
	"organizer-cli/internal/config"
	"organizer-cli/pkg/models"
)

// FileGenerator turns a generation request into written files
type FileGenerator interface {
	// Generate resolves every file the request implies (main, test,
	// additional), checks for conflicts and writes atomically. With
	// request.DryRun set it returns the records without touching the
	// filesystem.
	Generate(cfg *config.Effective, request *models.GenerationRequest, projectRoot string, provider ContentProvider) ([]models.GeneratedFile, error)
}
