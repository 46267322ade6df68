package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagMaxVertices = flag.Int("max-vertices", 0, "Vertex buffer capacity per model")
	flagTexture     = flag.String("texture", "", "Default texture name")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMaxVertices > 0 {
		cfg.Model.MaxVertices = *flagMaxVertices
	}
	if *flagTexture != "" {
		cfg.Model.DefaultTexture = *flagTexture
	}
}
