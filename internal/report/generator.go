package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/Humayung/directory-analyser/internal/config"
	"github.com/Humayung/directory-analyser/pkg/models"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorOrange = "\033[38;5;208m"
	colorGray   = "\033[38;5;245m"
)

// isColorSupported checks if stdout can render ANSI colors
func isColorSupported() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Generator generates analysis reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	return &Generator{
		config: cfg,
		logger: logger,
	}, nil
}

// Generate prints the console summary when progress output is enabled
// and, when a report format is configured, writes the result to a file
// and returns its absolute path.
func (g *Generator) Generate(result *models.AnalysisResult) (string, error) {
	format := g.config.ReportFormat
	outputFile := g.config.OutputFile

	// Console summary follows progress mode
	if g.config.Progress {
		g.printConsole(result)
	}

	// Without a format there is nothing to write
	if format == "" {
		return "", nil
	}

	// Generate default filename if not specified, inside the analyzed
	// directory and named after it
	if outputFile == "" {
		base := SafeFileName(filepath.Base(result.Directory))
		switch format {
		case "json":
			outputFile = fmt.Sprintf("%s_analysis.json", base)
		case "yaml", "yml":
			outputFile = fmt.Sprintf("%s_analysis.yaml", base)
		case "txt", "text":
			outputFile = fmt.Sprintf("%s_analysis.txt", base)
		case "md", "markdown":
			outputFile = fmt.Sprintf("%s_analysis.md", base)
		default:
			return "", fmt.Errorf("unknown report format: %s", format)
		}
		outputFile = filepath.Join(result.Directory, outputFile)
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	var err error
	switch format {
	case "json":
		err = g.generateJSON(result, outputFile)
	case "yaml", "yml":
		err = g.generateYAML(result, outputFile)
	case "txt", "text":
		err = g.generateText(result, outputFile)
	case "md", "markdown":
		err = g.generateMarkdown(result, outputFile)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}

	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	// Get absolute path
	absPath, _ := filepath.Abs(outputFile)
	return absPath, nil
}

// printConsole prints the analysis summary to stdout
func (g *Generator) printConsole(result *models.AnalysisResult) {
	bold, orange, gray, red, reset := colorBold, colorOrange, colorGray, colorRed, colorReset
	if !isColorSupported() {
		bold, orange, gray, red, reset = "", "", "", "", ""
	}

	fmt.Println()
	fmt.Printf("%s%sAnalysis complete!%s\n", bold, orange, reset)
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %sTotal files:%s %s\n", gray, reset, humanize.Comma(int64(result.Summary.TotalFiles)))
	fmt.Printf("  %sTotal size:%s %.2f GB (%.2f MB)\n", gray, reset, result.Summary.TotalSizeGB, result.Summary.TotalSizeMB)
	fmt.Printf("  %sUnique extensions:%s %d\n", gray, reset, result.Summary.UniqueExtensions)
	if result.ErrorCount > 0 {
		fmt.Printf("  %sErrors encountered:%s %s%d%s\n", gray, reset, red, result.ErrorCount, reset)
	}

	if len(result.Extensions) > 0 {
		fmt.Println()
		fmt.Printf("%sTop extensions:%s\n", bold, reset)
		for _, ext := range topExtensions(result, 5) {
			stat := result.Extensions[ext]
			fmt.Printf("  %s%-16s%s %s files, %s\n", gray, ext, reset,
				humanize.Comma(int64(stat.Count)), humanize.IBytes(uint64(stat.TotalSize)))
		}
	}
}

// topExtensions returns up to n extension names ordered by file count,
// largest first, ties broken by name.
func topExtensions(result *models.AnalysisResult, n int) []string {
	names := result.SortedExtensions()
	sort.SliceStable(names, func(i, j int) bool {
		return result.Extensions[names[i]].Count > result.Extensions[names[j]].Count
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// SafeFileName reduces a directory name to a filesystem-safe stem.
// Letters, digits, spaces, hyphens and underscores survive, spaces
// become underscores, and an empty outcome falls back to "analysis".
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	safe := strings.TrimSpace(b.String())
	safe = strings.ReplaceAll(safe, " ", "_")
	if safe == "" {
		safe = "analysis"
	}
	return safe
}
