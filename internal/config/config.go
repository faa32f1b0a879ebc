package config

import (
	"github.com/spf13/viper"
)

// Config represents the analyzer configuration
type Config struct {
	// Scan settings
	Directory string   `mapstructure:"directory"` // directory to analyze
	Exclude   []string `mapstructure:"exclude"`   // directory names to skip entirely

	// Console settings
	Progress bool `mapstructure:"progress"` // show progress and summary output

	// Visualization settings
	OpenBrowser  bool   `mapstructure:"open_browser"`  // open the generated page when done
	TemplatePath string `mapstructure:"template_path"` // explicit HTML template location

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // json, yaml, text, markdown
	OutputFile   string `mapstructure:"output_file"`   // report destination path
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("progress", true)
	v.SetDefault("open_browser", true)
	v.SetDefault("template_path", "")
	v.SetDefault("report_format", "")
	v.SetDefault("output_file", "")
	v.SetDefault("exclude", []string{})

	// Read environment variables
	v.SetEnvPrefix("DIRANALYSER")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
