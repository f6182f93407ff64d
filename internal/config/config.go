// Package config handles sculpt tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Sculpt  SculptConfig  `yaml:"sculpt"`
	Logging LoggingConfig `yaml:"logging"`
}

// SculptConfig holds the per-session editing preferences consulted by the
// editable-object core on every apply.
type SculptConfig struct {
	// RebuildNormals recomputes vertex normals when edits are applied.
	RebuildNormals bool `yaml:"rebuild_normals"`
	// RebuildCollider reassigns the mesh collider when edits are applied.
	RebuildCollider bool `yaml:"rebuild_collider"`
	// UseAdditionalVertexStreams stores edits in a renderer overlay stream
	// instead of baking them into the node's mesh.
	UseAdditionalVertexStreams bool `yaml:"use_additional_vertex_streams"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sculpt: SculptConfig{
			RebuildNormals:             true,
			RebuildCollider:            true,
			UseAdditionalVertexStreams: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
