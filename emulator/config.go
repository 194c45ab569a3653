package emulator

import (
	"github.com/BurntSushi/toml"
)

// Config is the optional run configuration for the um32 command line.
// Flags override anything set here.
type Config struct {
	Trace      bool   `toml:"trace"`       // Enable cycle tracing.
	TraceLimit uint32 `toml:"trace-limit"` // Stop tracing at this pc.
	Input      string `toml:"input"`       // Console input path, "-" is stdin.
	Output     string `toml:"output"`      // Console output path, "-" is stdout.
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Input:  "-",
		Output: "-",
	}
}

// LoadConfig reads a TOML run configuration file.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()
	_, err = toml.DecodeFile(path, &cfg)
	return
}
