package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/digimosa/patternlab/internal/models"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	// DefaultConfigPath is tried when no config path is given
	DefaultConfigPath = "patternlab.yaml"
)

type Config struct {
	// Source files
	PhonesFile string `yaml:"phones_file"`
	CSVFile    string `yaml:"csv_file"`
	HTMLFile   string `yaml:"html_file"`

	// InputEncoding is the code page of plain text sources, OutputEncoding that of stdout
	InputEncoding  string `yaml:"input_encoding"`
	OutputEncoding string `yaml:"output_encoding"`

	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		PhonesFile:     "phones.txt",
		CSVFile:        "data.csv",
		HTMLFile:       "test.html",
		InputEncoding:  "utf-8",
		OutputEncoding: "utf-8",
		Format:         FormatText,
	}
}

// SourceFor returns the input file a task reads, or "" for stdin tasks
func (c *Config) SourceFor(t models.Task) string {
	switch t {
	case models.TaskStrictPhone, models.TaskHeuristicPhone:
		return c.PhonesFile
	case models.TaskCSV:
		return c.CSVFile
	case models.TaskHTML:
		return c.HTMLFile
	default:
		return ""
	}
}

// Load builds the configuration from defaults, the config file and the environment.
// An empty path falls back to PATTERNLAB_CONFIG, then DefaultConfigPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("PATTERNLAB_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath
	}

	if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - path comes from the command line or environment
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("PATTERNLAB_PHONES_FILE"); v != "" {
		cfg.PhonesFile = v
	}

	if v := os.Getenv("PATTERNLAB_CSV_FILE"); v != "" {
		cfg.CSVFile = v
	}

	if v := os.Getenv("PATTERNLAB_HTML_FILE"); v != "" {
		cfg.HTMLFile = v
	}

	if v := os.Getenv("PATTERNLAB_INPUT_ENCODING"); v != "" {
		cfg.InputEncoding = v
	}

	if v := os.Getenv("PATTERNLAB_OUTPUT_ENCODING"); v != "" {
		cfg.OutputEncoding = v
	}

	if v := os.Getenv("PATTERNLAB_FORMAT"); v != "" {
		cfg.Format = v
	}

	if verbose := os.Getenv("PATTERNLAB_VERBOSE"); verbose != "" {
		switch verbose {
		case "true", "1", "yes":
			cfg.Verbose = true
		case "false", "0", "no":
			cfg.Verbose = false
		default:
			return fmt.Errorf("invalid PATTERNLAB_VERBOSE value: %q (use true/false)", verbose)
		}
	}

	return nil
}

// Validate checks the format and both encoding labels
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}

	encodings := []struct{ name, label string }{
		{"input_encoding", c.InputEncoding},
		{"output_encoding", c.OutputEncoding},
	}
	for _, e := range encodings {
		if strings.TrimSpace(e.label) == "" {
			continue
		}
		if _, err := htmlindex.Get(e.label); err != nil {
			return fmt.Errorf("%s: unknown encoding %q", e.name, e.label)
		}
	}

	return nil
}
