package report

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/Humayung/directory-analyser/pkg/models"
)

// MarshalResult serializes a result with stable key order, two-space
// indentation, and non-ASCII characters left unescaped. The same bytes
// are embedded into the HTML visualization and written by the JSON
// report, so the two always agree.
func MarshalResult(result *models.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// generateJSON generates a JSON report
func (g *Generator) generateJSON(result *models.AnalysisResult, outputFile string) error {
	data, err := MarshalResult(result)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(outputFile, append(data, '\n'), 0644)
}
