package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Humayung/directory-analyser/internal/config"
	"github.com/Humayung/directory-analyser/pkg/models"
)

// testTemplate builds a minimal page around the stock loader block.
func testTemplate() string {
	return strings.Join([]string{
		"<!DOCTYPE html>",
		"<html>",
		"<head><title>Directory Analysis</title></head>",
		"<body>",
		`<div id="loading">Loading...</div>`,
		"<script>",
		"        let analysisData = null;",
		"",
		loaderPlaceholder,
		"",
		"        function displayData() {}",
		"        loadData();",
		"</script>",
		"</body>",
		"</html>",
		"",
	}, "\n")
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func renderToString(t *testing.T, templateContent string, result *models.AnalysisResult) string {
	t.Helper()
	g := newTestGenerator(&config.Config{})
	outPath := filepath.Join(t.TempDir(), VisualizationFileName)

	got, err := g.RenderHTML(writeTemplate(t, templateContent), outPath, result)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if got != outPath {
		t.Errorf("RenderHTML() path = %q, want %q", got, outPath)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestRenderHTMLEmbedsData(t *testing.T) {
	out := renderToString(t, testTemplate(), sampleResult("/data/photos"))

	if !strings.Contains(out, "const embeddedAnalysisData = {") {
		t.Error("output missing embedded data assignment")
	}
	if !strings.Contains(out, `"directory": "/data/photos"`) {
		t.Error("output missing serialized directory field")
	}
	if !strings.Contains(out, `"jpg": {`) {
		t.Error("output missing serialized extension stats")
	}
	if strings.Contains(out, "fetch(") {
		t.Error("output still references an external fetch")
	}
	if strings.Contains(out, "async function loadData") {
		t.Error("output still contains the async loader")
	}
	if !strings.Contains(out, "function loadData()") {
		t.Error("output missing the synchronous loader")
	}
	if strings.Contains(out, "photos_analysis.json") {
		t.Error("output still references the default data file")
	}
}

func TestRenderHTMLPatternFallback(t *testing.T) {
	// Drift an inner comment so the exact match fails but the
	// loader's start and end markers survive.
	drifted := strings.Replace(testTemplate(),
		"// Get JSON filename from URL parameter or use default",
		"// resolve the data file", 1)

	out := renderToString(t, drifted, sampleResult("/data/photos"))

	if !strings.Contains(out, "const embeddedAnalysisData = {") {
		t.Error("fallback did not embed data")
	}
	if strings.Contains(out, "await fetch(jsonFile)") {
		t.Error("fallback left the fetch call in place")
	}
}

func TestRenderHTMLDegradedMode(t *testing.T) {
	// A template with no recognizable loader passes through unchanged.
	template := strings.Join([]string{
		"<html><body>",
		"<script>",
		"function loadData() { console.log('custom'); }",
		"</script>",
		"</body></html>",
		"",
	}, "\n")

	out := renderToString(t, template, sampleResult("/data/photos"))

	if out != template {
		t.Errorf("degraded mode altered the template:\ngot:  %q\nwant: %q", out, template)
	}
}

func TestRenderHTMLPreservesNonASCII(t *testing.T) {
	out := renderToString(t, testTemplate(), sampleResult("/данные/写真"))

	if !strings.Contains(out, "/данные/写真") {
		t.Error("non-ASCII directory name was escaped or lost")
	}
	if strings.Contains(out, `\u0434`) {
		t.Error("non-ASCII characters were unicode-escaped")
	}
}

func TestRenderHTMLReadError(t *testing.T) {
	g := newTestGenerator(&config.Config{})
	missing := filepath.Join(t.TempDir(), "nope.html")

	_, err := g.RenderHTML(missing, filepath.Join(t.TempDir(), "out.html"), sampleResult("/data"))
	var readErr *TemplateReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("RenderHTML() error = %v, want TemplateReadError", err)
	}
	if readErr.Path != missing {
		t.Errorf("error path = %q, want %q", readErr.Path, missing)
	}
}

func TestRenderHTMLWriteError(t *testing.T) {
	g := newTestGenerator(&config.Config{})
	outPath := filepath.Join(t.TempDir(), "no_such_dir", "out.html")

	_, err := g.RenderHTML(writeTemplate(t, testTemplate()), outPath, sampleResult("/data"))
	var writeErr *TemplateWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("RenderHTML() error = %v, want TemplateWriteError", err)
	}
	if writeErr.Path != outPath {
		t.Errorf("error path = %q, want %q", writeErr.Path, outPath)
	}
}

func TestShippedTemplateContainsLoader(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "templates", "visualize_analysis.html"))
	if err != nil {
		t.Fatalf("read shipped template: %v", err)
	}

	// The shipped template must keep the stock loader byte for byte so
	// rendering takes the exact-match path.
	if !strings.Contains(string(data), loaderPlaceholder) {
		t.Error("shipped template drifted from the stock loader block")
	}
	if !strings.Contains(string(data), "function displayData()") {
		t.Error("shipped template missing displayData")
	}
}

func TestMarshalResult(t *testing.T) {
	r := sampleResult("/data/photos")
	data, err := MarshalResult(r)
	if err != nil {
		t.Fatalf("MarshalResult() error = %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "{\n  \"directory\":") {
		t.Errorf("output does not start with indented directory field:\n%s", text[:40])
	}
	if text[len(text)-1] != '}' {
		t.Error("output carries a trailing newline")
	}

	// Map keys serialize in sorted order
	jpg := strings.Index(text, `"jpg"`)
	noExt := strings.Index(text, `"no_extension"`)
	txt := strings.Index(text, `"txt"`)
	if !(jpg != -1 && jpg < noExt && noExt < txt) {
		t.Errorf("extension keys not sorted: jpg@%d no_extension@%d txt@%d", jpg, noExt, txt)
	}

	// A clean scan omits the error fields entirely
	if strings.Contains(text, `"errors"`) || strings.Contains(text, `"error_count"`) {
		t.Errorf("clean result serialized error fields:\n%s", text)
	}

	r.AddError("/data/photos/broken", errors.New("permission denied"))
	data, err = MarshalResult(r)
	if err != nil {
		t.Fatalf("MarshalResult() error = %v", err)
	}
	if !strings.Contains(string(data), `"error_count": 1`) {
		t.Errorf("error_count missing after AddError:\n%s", data)
	}
	if !strings.Contains(string(data), `"file": "/data/photos/broken"`) {
		t.Errorf("errors list missing after AddError:\n%s", data)
	}
}
