package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config flag is given.
const DefaultPath = "testregen.yaml"

const (
	DefaultFixturesRoot = "fixtures"
	DefaultBackupSuffix = ".old"
)

// Config is the application configuration. Every field has a working
// default; CLI flags override whatever is set here.
type Config struct {
	Fixtures FixturesConfig `yaml:"fixtures"`
	Backup   BackupConfig   `yaml:"backup"`
	Git      GitConfig      `yaml:"git"`
}

// FixturesConfig locates the fixture corpus.
type FixturesConfig struct {
	Root string `yaml:"root"`
}

// BackupConfig controls the rename-aside performed before rewriting.
type BackupConfig struct {
	Suffix string `yaml:"suffix"`
}

// GitConfig holds the work-tree safety settings.
type GitConfig struct {
	RequireClean bool `yaml:"require_clean"`
}

// Load reads the configuration file at path. Environment variables in the
// file body are expanded, with .env/.env.local loaded first. A missing file
// is not an error: the tool runs fine on defaults alone.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Init writes a commented example configuration to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

const exampleConfig = `# testregen configuration.
# Every setting is optional; command-line flags take precedence.

fixtures:
  # Corpus root scanned for <group>.txt fixture files.
  root: fixtures

backup:
  # Suffix appended to the original file name for the backup rename.
  suffix: .old

git:
  # Refuse to rewrite a file inside a git work tree with uncommitted changes.
  require_clean: false
`

func applyDefaults(cfg *Config) {
	if cfg.Fixtures.Root == "" {
		cfg.Fixtures.Root = DefaultFixturesRoot
	}
	if cfg.Backup.Suffix == "" {
		cfg.Backup.Suffix = DefaultBackupSuffix
	}
}

// loadEnvFiles makes .env values visible to os.ExpandEnv. Already-set
// variables keep their values; missing files are skipped silently.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		_ = godotenv.Load(name)
	}
}
