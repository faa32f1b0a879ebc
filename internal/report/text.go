package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Humayung/directory-analyser/pkg/models"
)

// generateText generates a text report
func (g *Generator) generateText(result *models.AnalysisResult, outputFile string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n")
	sb.WriteString("  DIRECTORY COMPOSITION REPORT\n")
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	// Summary
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	sb.WriteString(fmt.Sprintf("Directory:         %s\n", result.Directory))
	sb.WriteString(fmt.Sprintf("Generated:         %s\n", result.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Total Files:       %s\n", humanize.Comma(int64(result.Summary.TotalFiles))))
	sb.WriteString(fmt.Sprintf("Total Size:        %s (%.2f MB)\n", humanize.IBytes(uint64(result.Summary.TotalSize)), result.Summary.TotalSizeMB))
	sb.WriteString(fmt.Sprintf("Unique Extensions: %d\n", result.Summary.UniqueExtensions))
	sb.WriteString("\n")

	// Per-extension breakdown
	sb.WriteString("EXTENSIONS\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %12s %16s\n", "Extension", "Files", "Total Size"))
	for _, ext := range result.SortedExtensions() {
		stat := result.Extensions[ext]
		sb.WriteString(fmt.Sprintf("%-20s %12s %16s\n",
			ext,
			humanize.Comma(int64(stat.Count)),
			humanize.IBytes(uint64(stat.TotalSize))))
	}
	sb.WriteString("\n")

	// Unreadable files
	if result.ErrorCount > 0 {
		sb.WriteString("ERRORS\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		for _, scanErr := range result.Errors {
			sb.WriteString(fmt.Sprintf("%s: %s\n", scanErr.File, scanErr.Error))
		}
		sb.WriteString("\n")
	}

	// Footer
	sb.WriteString(strings.Repeat("=", 79) + "\n")
	sb.WriteString("End of Report\n")
	sb.WriteString(strings.Repeat("=", 79) + "\n")

	// Write to file
	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
