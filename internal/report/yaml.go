package report

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Humayung/directory-analyser/pkg/models"
)

// generateYAML generates a YAML report
func (g *Generator) generateYAML(result *models.AnalysisResult, outputFile string) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
