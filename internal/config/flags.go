package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagVertexStreams = flag.Bool("vertex-streams", false, "Store edits in additional vertex streams")
	flagNoNormals     = flag.Bool("no-normals", false, "Skip normal rebuild on apply")
	flagNoCollider    = flag.Bool("no-collider", false, "Skip collider rebuild on apply")
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
	if *flagVertexStreams {
		cfg.Sculpt.UseAdditionalVertexStreams = true
	}
	if *flagNoNormals {
		cfg.Sculpt.RebuildNormals = false
	}
	if *flagNoCollider {
		cfg.Sculpt.RebuildCollider = false
	}
}
