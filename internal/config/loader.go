package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir  string
	filePath string // explicit config file, overrides the search path
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader bound to an explicit config file.
func NewFileLoader(filePath string) Loader {
	return &loader{filePath: filePath}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SDKGEN_*)
// 2. Config file (.sdkgen/config.yml or .sdkgen/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.filePath != "" {
		v.SetConfigFile(l.filePath)
	} else {
		configDir := filepath.Join(l.rootDir, ".sdkgen")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("SDKGEN")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., SDKGEN_NAMING_NAMESPACE)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("input.extension")
	v.BindEnv("input.struct_file_prefix")
	v.BindEnv("input.struct_ref_prefix")
	v.BindEnv("naming.namespace")
	v.BindEnv("naming.file_prefix")
	v.BindEnv("naming.umbrella")
	v.BindEnv("naming.digit_prefix")
	v.BindEnv("default_category")

	setDefaults(v)

	// Read config file if present; a missing file is fine, defaults apply.
	// Any other failure (unreadable, malformed) must surface.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers default values in viper so partial config files work.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("input.extension", def.Input.Extension)
	v.SetDefault("input.struct_file_prefix", def.Input.StructFilePrefix)
	v.SetDefault("input.struct_ref_prefix", def.Input.StructRefPrefix)

	v.SetDefault("naming.namespace", def.Naming.Namespace)
	v.SetDefault("naming.file_prefix", def.Naming.FilePrefix)
	v.SetDefault("naming.umbrella", def.Naming.Umbrella)
	v.SetDefault("naming.digit_prefix", def.Naming.DigitPrefix)

	v.SetDefault("types.mappings", def.Types.Mappings)
	v.SetDefault("types.ignored", def.Types.Ignored)
	v.SetDefault("types.core_prefixes", def.Types.CorePrefixes)

	v.SetDefault("engine_modules", def.EngineModules)
	v.SetDefault("default_category", def.DefaultCategory)
}
