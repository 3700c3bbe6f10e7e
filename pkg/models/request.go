package models

// GenerationRequest represents one request to generate files for a named
// file type. It is built by the caller (CLI flags or an upstream request
// interpreter) and treated as read-only by the core.
type GenerationRequest struct {
	FileType string
	Name     string
	Vars     map[string]string
	DryRun   bool
}

// NewGenerationRequest creates a request with an initialized Vars map.
func NewGenerationRequest(fileType, name string) *GenerationRequest {
	return &GenerationRequest{
		FileType: fileType,
		Name:     name,
		Vars:     make(map[string]string),
	}
}

// GeneratedFile is one output record of a generation run. Path is absolute.
type GeneratedFile struct {
	Path    string
	Content string
	IsTest  bool
}
