package models

import (
	"math"
	"sort"
	"time"
)

// NoExtension is the bucket key for files without a usable extension.
const NoExtension = "no_extension"

// ExtensionStat aggregates the files sharing one extension.
type ExtensionStat struct {
	Count       int     `json:"count" yaml:"count"`
	TotalSize   int64   `json:"total_size" yaml:"total_size"`
	TotalSizeMB float64 `json:"total_size_mb" yaml:"total_size_mb"`
	TotalSizeGB float64 `json:"total_size_gb" yaml:"total_size_gb"`
}

// ScanError records a single file that could not be measured.
// The scan continues past these.
type ScanError struct {
	File  string `json:"file" yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// Summary contains the directory-wide totals.
type Summary struct {
	TotalFiles       int     `json:"total_files" yaml:"total_files"`
	TotalSize        int64   `json:"total_size" yaml:"total_size"`
	TotalSizeMB      float64 `json:"total_size_mb" yaml:"total_size_mb"`
	TotalSizeGB      float64 `json:"total_size_gb" yaml:"total_size_gb"`
	UniqueExtensions int     `json:"unique_extensions" yaml:"unique_extensions"`
}

// AnalysisResult contains the complete composition analysis of a directory.
type AnalysisResult struct {
	// What was analyzed and when
	Directory string    `json:"directory" yaml:"directory"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Totals
	Summary Summary `json:"summary" yaml:"summary"`

	// Per-extension breakdown, keyed by lowercased extension
	Extensions map[string]ExtensionStat `json:"extensions" yaml:"extensions"`

	// Files that failed to stat; omitted entirely when the scan was clean
	Errors     []ScanError `json:"errors,omitempty" yaml:"errors,omitempty"`
	ErrorCount int         `json:"error_count,omitempty" yaml:"error_count,omitempty"`
}

// NewAnalysisResult creates an empty result for the given directory.
func NewAnalysisResult(directory string) *AnalysisResult {
	return &AnalysisResult{
		Directory:  directory,
		Timestamp:  time.Now(),
		Extensions: make(map[string]ExtensionStat),
	}
}

// AddFile records one measured file under its extension bucket.
func (r *AnalysisResult) AddFile(ext string, size int64) {
	stat := r.Extensions[ext]
	stat.Count++
	stat.TotalSize += size
	r.Extensions[ext] = stat

	r.Summary.TotalFiles++
	r.Summary.TotalSize += size
}

// AddError records a file that could not be measured.
func (r *AnalysisResult) AddError(file string, err error) {
	r.Errors = append(r.Errors, ScanError{File: file, Error: err.Error()})
	r.ErrorCount = len(r.Errors)
}

// Finalize computes the derived megabyte and gigabyte fields from the
// accumulated raw byte counts. Call once, after the last AddFile.
func (r *AnalysisResult) Finalize() {
	for ext, stat := range r.Extensions {
		stat.TotalSizeMB = SizeMB(stat.TotalSize)
		stat.TotalSizeGB = SizeGB(stat.TotalSize)
		r.Extensions[ext] = stat
	}
	r.Summary.TotalSizeMB = SizeMB(r.Summary.TotalSize)
	r.Summary.TotalSizeGB = SizeGB(r.Summary.TotalSize)
	r.Summary.UniqueExtensions = len(r.Extensions)
}

// SortedExtensions returns the extension keys in lexicographic order.
func (r *AnalysisResult) SortedExtensions() []string {
	keys := make([]string, 0, len(r.Extensions))
	for ext := range r.Extensions {
		keys = append(keys, ext)
	}
	sort.Strings(keys)
	return keys
}

// SizeMB converts a byte count to megabytes rounded to two decimals.
func SizeMB(size int64) float64 {
	return round2(float64(size) / (1024 * 1024))
}

// SizeGB converts a byte count to gigabytes rounded to two decimals.
func SizeGB(size int64) float64 {
	return round2(float64(size) / (1024 * 1024 * 1024))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
