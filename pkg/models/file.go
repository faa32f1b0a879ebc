package models

// FileInfo contains basic information about one file found during a walk.
type FileInfo struct {
	Path string // Full path as joined from the walk root
	Name string // Base name, used for extension classification
	Size int64  // Size in bytes of the stat target
}
