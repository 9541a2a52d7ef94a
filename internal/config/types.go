// types.go
package config

// Raw config loaded from YAML; mirrors threept.yaml.
type RawConfig struct {
	Version string     `yaml:"version"`
	Log     *LogConfig `yaml:"log,omitempty"`
	Notes   string     `yaml:"notes,omitempty"`
}

type LogConfig struct {
	Output string `yaml:"output"` // "discard" | "stderr" | file path
	Debug  *bool  `yaml:"debug,omitempty"`
}

// Log destinations understood besides a file path.
const (
	OutputDiscard = "discard"
	OutputStderr  = "stderr"
)

// Config is the normalized configuration used by cmd/threept.
type Config struct {
	Version   string
	LogOutput string
	LogDebug  bool
	Notes     string
	Source    string // file the settings were read from, empty if none
}
