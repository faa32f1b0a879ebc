package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Humayung/directory-analyser/internal/analyzer"
	"github.com/Humayung/directory-analyser/internal/config"
	"github.com/Humayung/directory-analyser/internal/report"
	"github.com/Humayung/directory-analyser/pkg/models"
)

// templateFileName is looked up in the working directory and next to
// the executable when no explicit template path is given.
const templateFileName = "visualize_analysis.html"

var (
	version = "0.0.1"
	logger  *zap.Logger
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, analyzer.ErrInterrupted) {
			fmt.Println("\n\nAnalysis interrupted by user.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	var (
		noProgress   bool
		noOpen       bool
		htmlTemplate string
		reportFormat string
		outputFile   string
		exclude      []string
	)

	cmd := &cobra.Command{
		Use:   "directory-analyser [directory]",
		Short: "Analyze directory composition by file extension",
		Long: heredoc.Doc(`
			Walk a directory tree, count files and accumulate byte sizes per file
			extension, and generate a self-contained HTML visualization with the
			analysis data embedded inline.

			Files without an extension are grouped under "no_extension". Unreadable
			files are recorded and skipped; they never abort the scan.
		`),
		Example: heredoc.Doc(`
			directory-analyser /path/to/directory
			directory-analyser /path/to/directory --no-open
			directory-analyser /path/to/directory --html-template /path/to/template.html
			directory-analyser /path/to/directory --report json --output stats.json
		`),
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			// Validate flags before doing anything
			if err := validateFlags(reportFormat); err != nil {
				return err
			}

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				cfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = cfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Validate the target before any traversal
			info, statErr := os.Stat(dir)
			if statErr != nil {
				return fmt.Errorf("Directory '%s' does not exist.", dir)
			}
			if !info.IsDir() {
				return fmt.Errorf("'%s' is not a directory.", dir)
			}

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			cfg.Directory = dir
			if cmd.Flags().Changed("no-progress") {
				cfg.Progress = !noProgress
			}
			if cmd.Flags().Changed("no-open") {
				cfg.OpenBrowser = !noOpen
			}
			if htmlTemplate != "" {
				cfg.TemplatePath = htmlTemplate
			}
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if len(exclude) > 0 {
				cfg.Exclude = exclude
			}

			// Cancel the scan context on SIGINT/SIGTERM
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				cancel()
			}()

			if cfg.Progress {
				fmt.Printf("Analyzing directory: %s\n", dir)
				fmt.Println("Scanning files...")
			}

			a := analyzer.NewAnalyzer(cfg, logger)
			if cfg.Progress {
				a.SetProgressCallback(progressPrinter())
			}

			result, err := a.Analyze(ctx, dir)
			if err != nil {
				return err
			}

			if cfg.Progress {
				fmt.Printf("\n  Completed! Processed %s files\n", humanize.Comma(int64(result.Summary.TotalFiles)))
			}

			gen, err := report.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}

			// Console summary plus the optional report file
			reportPath, err := gen.Generate(result)
			if err != nil {
				logger.Error("Report generation failed", zap.Error(err))
				if cfg.Progress {
					fmt.Printf("\nError generating report: %v\n", err)
				}
			} else if reportPath != "" && cfg.Progress {
				fmt.Printf("\nReport saved: %s\n", reportPath)
			}

			// Rendering or opening failures never downgrade a completed scan
			if cfg.OpenBrowser {
				generateVisualization(gen, cfg, result)
			}

			return nil
		},
	}

	// Flags
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable progress output")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not automatically open the HTML visualization")
	cmd.Flags().StringVar(&htmlTemplate, "html-template", "", "Path to HTML template file (default: visualize_analysis.html in current directory)")
	cmd.Flags().StringVarP(&reportFormat, "report", "r", "", "Report format: json, yaml, txt, md (default: no report file)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Report output file path")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directories to exclude (comma-separated)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

// progressPrinter returns a callback that prints the running file count,
// rewriting a single line on interactive terminals.
func progressPrinter() analyzer.ProgressCallback {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return func(processed int) {
		if interactive {
			fmt.Printf("  Processed %s files...\r", humanize.Comma(int64(processed)))
		} else {
			fmt.Printf("  Processed %s files...\n", humanize.Comma(int64(processed)))
		}
	}
}

// generateVisualization renders the HTML artifact into the scanned
// directory and opens it in the default browser.
func generateVisualization(gen *report.Generator, cfg *config.Config, result *models.AnalysisResult) {
	templatePath := resolveTemplatePath(cfg.TemplatePath)

	if _, err := os.Stat(templatePath); err != nil {
		if cfg.Progress {
			fmt.Printf("\nNote: HTML template not found. Expected at: %s\n", templatePath)
			fmt.Println("Skipping HTML generation.")
		}
		return
	}

	if cfg.Progress {
		fmt.Println("\nGenerating HTML visualization with embedded data...")
	}

	outputPath := filepath.Join(result.Directory, report.VisualizationFileName)
	htmlPath, err := gen.RenderHTML(templatePath, outputPath, result)
	if err != nil {
		logger.Error("HTML generation failed", zap.Error(err))
		if cfg.Progress {
			fmt.Printf("\nError generating HTML visualization: %v\n", err)
		}
		return
	}

	if cfg.Progress {
		fmt.Printf("HTML visualization generated: %s\n", htmlPath)
		fmt.Println("Opening in browser...")
	}

	if err := browser.OpenFile(htmlPath); err != nil {
		logger.Warn("Failed to open browser", zap.Error(err))
	}
}

// resolveTemplatePath returns the template location: the explicit
// configuration value, a visualize_analysis.html in the current working
// directory, or one next to the executable. The last candidate is
// returned even when absent so the caller can report where it looked.
func resolveTemplatePath(configured string) string {
	if configured != "" {
		return configured
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, templateFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return templateFileName
	}
	return filepath.Join(filepath.Dir(exe), templateFileName)
}

// validateFlags validates CLI flag values
func validateFlags(reportFormat string) error {
	if reportFormat != "" {
		validFormats := []string{"json", "yaml", "yml", "txt", "text", "md", "markdown"}
		if !contains(validFormats, reportFormat) {
			return fmt.Errorf("--report must be one of: %s (got: %s)", strings.Join(validFormats, ", "), reportFormat)
		}
	}
	return nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
