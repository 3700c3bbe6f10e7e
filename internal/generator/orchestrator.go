package generator

import (
	"github.com/spf13/afero"

	"organizer-cli/internal/config"
	"organizer-cli/internal/interfaces"
	"organizer-cli/pkg/models"
)

// Orchestrator implements the FileGenerator interface. One Generate call
// runs to completion single-threaded; callers serialize concurrent
// generation against the same project root themselves.
type Orchestrator struct {
	fs afero.Fs
}

// New creates an orchestrator over the given filesystem. A nil fs means
// the operating system filesystem.
func New(fs afero.Fs) *Orchestrator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Orchestrator{fs: fs}
}

// Generate determines the full file set for a request (main, test,
// additional files in declared order), checks each target for conflicts,
// obtains content from the provider and writes atomically. With
// request.DryRun set it returns every record without touching the
// filesystem; conflict checks are skipped so callers can preview.
func (o *Orchestrator) Generate(cfg *config.Effective, request *models.GenerationRequest, projectRoot string, provider interfaces.ContentProvider) ([]models.GeneratedFile, error) {
	resolver := NewPathResolver(cfg, projectRoot)

	mainPath, err := resolver.ResolveFullPath(request.FileType, request.Name, request.Vars, false)
	if err != nil {
		return nil, err
	}
	if err := o.checkConflict(mainPath, request.DryRun); err != nil {
		return nil, err
	}
	mainContent, err := provider.Content(request.FileType, request.Name, cfg)
	if err != nil {
		return nil, err
	}

	files := []models.GeneratedFile{{Path: mainPath, Content: mainContent}}

	if resolver.ShouldGenerateTest(request.FileType) {
		testPath, err := resolver.ResolveFullPath(request.FileType, request.Name, request.Vars, true)
		if err != nil {
			return nil, err
		}
		if err := o.checkConflict(testPath, request.DryRun); err != nil {
			return nil, err
		}
		testContent, err := provider.TestContent(request.FileType, request.Name, cfg)
		if err != nil {
			return nil, err
		}
		files = append(files, models.GeneratedFile{Path: testPath, Content: testContent, IsTest: true})
	}

	mainDir, err := resolver.ResolveDir(request.FileType, request.Name, request.Vars, false)
	if err != nil {
		return nil, err
	}
	additionalPaths, err := resolver.AdditionalFiles(request.FileType, request.Name, request.Vars, mainDir)
	if err != nil {
		return nil, err
	}
	for _, path := range additionalPaths {
		if err := o.checkConflict(path, request.DryRun); err != nil {
			return nil, err
		}
		content, err := provider.AdditionalContent(filepathBase(path), request.FileType, request.Name, cfg)
		if err != nil {
			return nil, err
		}
		files = append(files, models.GeneratedFile{Path: path, Content: content})
	}

	if request.DryRun {
		return files, nil
	}

	var written []string
	for _, file := range files {
		if err := writeAtomic(o.fs, file.Path, file.Content); err != nil {
			return nil, &BatchWriteError{Written: written, Failed: file.Path, Err: err}
		}
		written = append(written, file.Path)
	}

	return files, nil
}

func (o *Orchestrator) checkConflict(path string, dryRun bool) error {
	if dryRun {
		return nil
	}
	if exists, _ := afero.Exists(o.fs, path); exists {
		return &ConflictError{Path: path}
	}
	return nil
}
