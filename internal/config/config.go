// Package config handles configuration loading and management for the
// entity geometry runtime.
package config

// Config holds all runtime settings.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Logging LoggingConfig `yaml:"logging"`
}

// ModelConfig holds per-entity geometry defaults.
type ModelConfig struct {
	// MaxVertices is the fixed vertex buffer capacity per model.
	MaxVertices int `yaml:"max_vertices"`
	// DefaultTexture is bound from the scene atlas when a model has no
	// texture of its own.
	DefaultTexture string `yaml:"default_texture"`
	// CompatNormalMatrix derives the normal matrix from the scaled world
	// matrix for renderer compatibility; false uses the corrected
	// scale-free derivation.
	CompatNormalMatrix bool `yaml:"compat_normal_matrix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			MaxVertices:        4096,
			DefaultTexture:     "",
			CompatNormalMatrix: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
