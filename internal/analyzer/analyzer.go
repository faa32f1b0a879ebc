package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/Humayung/directory-analyser/internal/config"
	"github.com/Humayung/directory-analyser/internal/filesystem"
	"github.com/Humayung/directory-analyser/pkg/models"
	"go.uber.org/zap"
)

// progressInterval is how many processed files pass between progress reports.
const progressInterval = 1000

// ProgressCallback is called with the running file count as the walk advances
type ProgressCallback func(processed int)

// Analyzer aggregates directory composition statistics by extension
type Analyzer struct {
	config           *config.Config
	logger           *zap.Logger
	walker           *filesystem.Walker
	progressCallback ProgressCallback
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(cfg *config.Config, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		config: cfg,
		logger: logger,
		walker: filesystem.NewWalker(cfg, logger),
	}
}

// SetProgressCallback sets the progress callback function
func (a *Analyzer) SetProgressCallback(cb ProgressCallback) {
	a.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (a *Analyzer) reportProgress(processed int) {
	if a.progressCallback != nil {
		a.progressCallback(processed)
	}
}

// Analyze walks the tree under root and aggregates per-extension file
// counts and byte sizes. Files that cannot be measured are recorded on
// the result and never abort the scan. Cancelling ctx unwinds the walk
// and returns ErrInterrupted.
func (a *Analyzer) Analyze(ctx context.Context, root string) (*models.AnalysisResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &InvalidInputError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidInputError{Path: root}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	a.logger.Info("Starting analysis", zap.String("path", absRoot))

	result := models.NewAnalysisResult(absRoot)

	walkErr := a.walker.Walk(ctx, root, func(file *models.FileInfo, err error) error {
		if err != nil {
			result.AddError(file.Path, err)
			return nil
		}

		result.AddFile(filesystem.GetExtension(file.Name), file.Size)
		if result.Summary.TotalFiles%progressInterval == 0 {
			a.reportProgress(result.Summary.TotalFiles)
		}
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) {
			return nil, ErrInterrupted
		}
		return nil, walkErr
	}

	result.Finalize()

	a.logger.Info("Analysis completed",
		zap.Int("total_files", result.Summary.TotalFiles),
		zap.Int64("total_size", result.Summary.TotalSize),
		zap.Int("unique_extensions", result.Summary.UniqueExtensions),
		zap.Int("errors", result.ErrorCount))

	return result, nil
}
