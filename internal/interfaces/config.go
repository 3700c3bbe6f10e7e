package interfaces

import "organizer-cli/internal/config"

// ConfigResolver resolves the effective configuration for a directory
type ConfigResolver interface {
	// Resolve walks upward from startDir, merges every configuration file
	// found and returns the effective configuration
	Resolve(startDir string) (*config.Effective, error)
}
