package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Humayung/directory-analyser/internal/config"
	"github.com/Humayung/directory-analyser/pkg/models"
	"go.uber.org/zap"
)

// WalkFunc is called once per file found below the root. A non-nil err
// means the entry could not be measured; info then carries only the
// path and name.
type WalkFunc func(info *models.FileInfo, err error) error

// Walker walks the filesystem and finds files to analyze
type Walker struct {
	config  *config.Config
	logger  *zap.Logger
	exclude map[string]bool
}

// NewWalker creates a new filesystem walker
func NewWalker(cfg *config.Config, logger *zap.Logger) *Walker {
	// Build exclude map for fast lookup
	exclude := make(map[string]bool)
	for _, dir := range cfg.Exclude {
		exclude[dir] = true
	}

	return &Walker{
		config:  cfg,
		logger:  logger,
		exclude: exclude,
	}
}

// Walk recursively visits every file below root in a single pass.
// Unreadable directories are logged and skipped so one bad subtree does
// not abort the walk. Cancelling ctx stops the walk with ctx.Err().
func (w *Walker) Walk(ctx context.Context, root string, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil // Continue walking
		}

		// Get relative path
		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		// Skip excluded directories
		if d.IsDir() {
			if w.shouldExclude(d.Name(), relPath) {
				w.logger.Debug("Skipping excluded directory", zap.String("path", relPath))
				return filepath.SkipDir
			}
			return nil
		}

		// Stat through symlinks so linked files count with their real size
		info, statErr := os.Stat(path)
		if statErr != nil {
			return fn(&models.FileInfo{Path: path, Name: d.Name()}, statErr)
		}

		// A symlink to a directory is not a file and is not followed
		if info.IsDir() {
			return nil
		}

		return fn(&models.FileInfo{Path: path, Name: d.Name(), Size: info.Size()}, nil)
	})
}

// shouldExclude checks if a directory should be excluded
func (w *Walker) shouldExclude(name, path string) bool {
	// Check exact match
	if w.exclude[name] {
		return true
	}

	// Check if path contains excluded directory
	parts := strings.Split(path, string(os.PathSeparator))
	for _, part := range parts {
		if w.exclude[part] {
			return true
		}
	}

	return false
}

// GetExtension classifies a filename into its extension bucket: the
// lower-cased suffix after the final dot, without the dot itself.
// Names with no usable suffix (no dot, a dot only at the start, or a
// trailing dot) fall into the no_extension bucket.
func GetExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return models.NoExtension
	}
	return strings.ToLower(name[i+1:])
}
