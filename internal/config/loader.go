package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "GARDEN_CONFIG"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// LoadGarden loads the garden configuration.
// Search order: customPath -> $GARDEN_CONFIG -> ~/.garden/configs/garden.yaml -> ./configs/garden.yaml -> embedded default
func LoadGarden(customPath string) (GardenConfig, error) {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	// Explicit paths must exist and parse
	if customPath != "" {
		cfg, err := readGarden(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, Validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if cfg, err := readGarden(userCfgPath); err == nil {
			return cfg, Validate(cfg)
		}
	}

	// Try local configs directory
	if cfg, err := readGarden(filepath.Join("configs", "garden.yaml")); err == nil {
		return cfg, Validate(cfg)
	}

	// Use embedded default YAML
	var cfg GardenConfig
	if err := yaml.Unmarshal(defaultGardenYAML, &cfg); err != nil {
		return DefaultGardenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, Validate(cfg)
}

// readGarden reads and parses a single config file.
func readGarden(path string) (GardenConfig, error) {
	var cfg GardenConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".garden", "configs", filename)
}

// Validate checks the structural constraints of a configuration.
// Completeness against the simulation's kinds is checked by the garden package.
func Validate(cfg GardenConfig) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s)", e.Namespace(), e.Tag(), e.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("config: invalid configuration: %s", strings.Join(msgs, "; "))
}

// ForDifficulty returns the section for the given difficulty.
// A missing section is a config-authoring defect caught by validation.
func (c GardenConfig) ForDifficulty(d Difficulty) DifficultyConfig {
	return c.Difficulties[d]
}
