package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Humayung/directory-analyser/pkg/models"
)

// generateMarkdown generates a Markdown report
func (g *Generator) generateMarkdown(result *models.AnalysisResult, outputFile string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("# Directory Composition Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Directory | `%s` |\n", result.Directory))
	sb.WriteString(fmt.Sprintf("| Generated | %s |\n", result.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| Total Files | %s |\n", humanize.Comma(int64(result.Summary.TotalFiles))))
	sb.WriteString(fmt.Sprintf("| Total Size | %s |\n", humanize.IBytes(uint64(result.Summary.TotalSize))))
	sb.WriteString(fmt.Sprintf("| Unique Extensions | %d |\n", result.Summary.UniqueExtensions))
	sb.WriteString("\n")

	// Per-extension breakdown
	sb.WriteString("## Extensions\n\n")
	sb.WriteString("| Extension | Files | Total Size | MB |\n")
	sb.WriteString("|-----------|-------|------------|----|\n")
	for _, ext := range result.SortedExtensions() {
		stat := result.Extensions[ext]
		sb.WriteString(fmt.Sprintf("| `%s` | %d | %s | %.2f |\n",
			ext,
			stat.Count,
			humanize.IBytes(uint64(stat.TotalSize)),
			stat.TotalSizeMB))
	}
	sb.WriteString("\n")

	// Unreadable files
	if result.ErrorCount > 0 {
		sb.WriteString("## Unreadable Files\n\n")
		sb.WriteString("| File | Error |\n")
		sb.WriteString("|------|-------|\n")
		for _, scanErr := range result.Errors {
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", scanErr.File, scanErr.Error))
		}
		sb.WriteString("\n")
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
