package workspace

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = ".packy.yaml"

// Config is the optional per-workspace configuration, read from
// .packy.yaml next to the list file.
type Config struct {
	// TemplatesDir holds the template manifest and payloads.
	TemplatesDir string `yaml:"templatesDir"`
	// Pretty makes JSON output (exports and the list file) indented.
	Pretty bool `yaml:"pretty"`
	// ListFile overrides the default packy.json name.
	ListFile string `yaml:"listFile"`
}

func DefaultConfig() Config {
	return Config{Pretty: true}
}

// LoadConfig reads the workspace config from dir. A missing file yields
// defaults; a malformed one is an error rather than a silent fallback.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.TemplatesDir != "" && !filepath.IsAbs(cfg.TemplatesDir) {
		cfg.TemplatesDir = filepath.Join(dir, cfg.TemplatesDir)
	}
	return cfg, nil
}
