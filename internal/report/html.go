package report

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Humayung/directory-analyser/pkg/models"
)

// VisualizationFileName is the fixed name of the rendered page,
// written into the analyzed directory itself.
const VisualizationFileName = "directory_visualization.html"

// loaderPlaceholder is the template's stock data loader, byte for
// byte, including trailing whitespace. Kept as joined lines because
// the body itself contains backquoted template literals.
var loaderPlaceholder = strings.Join([]string{
	"        // Load JSON file",
	"        async function loadData() {",
	"            try {",
	"                // Get JSON filename from URL parameter or use default",
	"                const urlParams = new URLSearchParams(window.location.search);",
	"                const jsonFile = urlParams.get('json') || 'photos_analysis.json';",
	"                ",
	"                const response = await fetch(jsonFile);",
	"                if (!response.ok) {",
	"                    throw new Error(`Failed to load analysis data from ${jsonFile}`);",
	"                }",
	"                analysisData = await response.json();",
	"                displayData();",
	"            } catch (error) {",
	"                document.getElementById('loading').innerHTML = ",
	"                    `<div style=\"color: #ef4444;\">Error: ${error.message}</div>`;",
	"            }",
	"        }",
}, "\n")

// embedBlock replaces the loader with the serialized result assigned
// directly to the page variable. The single verb receives the JSON.
var embedBlock = strings.Join([]string{
	"        // Embedded analysis data",
	"        const embeddedAnalysisData = %s;",
	"        ",
	"        // Load embedded data",
	"        function loadData() {",
	"            try {",
	"                analysisData = embeddedAnalysisData;",
	"                displayData();",
	"            } catch (error) {",
	"                document.getElementById('loading').innerHTML = ",
	"                    `<div style=\"color: #ff6b6b;\">Error: ${error.message}</div>`;",
	"            }",
	"        }",
}, "\n")

// loaderPattern locates the same loader in templates whose comments or
// whitespace have drifted from the stock block.
var loaderPattern = regexp.MustCompile(`(?s)// Load JSON file.*?async function loadData\(\) \{.*?\n\s*\}`)

// RenderHTML reads the template, splices the serialized result in
// place of its remote-fetch loader, and writes the outcome to
// outputPath. Exact replacement of the stock loader is tried first,
// then the pattern fallback. A template with no recognizable loader is
// copied through unchanged rather than rejected, so a drifted template
// still yields a viewable page. Returns the path written.
func (g *Generator) RenderHTML(templatePath, outputPath string, result *models.AnalysisResult) (string, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", &TemplateReadError{Path: templatePath, Err: err}
	}

	data, err := MarshalResult(result)
	if err != nil {
		return "", err
	}

	content := string(raw)
	replacement := fmt.Sprintf(embedBlock, data)

	switch {
	case strings.Contains(content, loaderPlaceholder):
		content = strings.ReplaceAll(content, loaderPlaceholder, replacement)
	case loaderPattern.MatchString(content):
		// Literal replacement: the embedded block contains ${...}
		// sequences that must not be treated as expansions.
		content = loaderPattern.ReplaceAllLiteralString(content, strings.TrimSpace(replacement))
	default:
		g.logger.Warn("Template loader not recognized, data not embedded",
			zap.String("template", templatePath))
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", &TemplateWriteError{Path: outputPath, Err: err}
	}

	return outputPath, nil
}
