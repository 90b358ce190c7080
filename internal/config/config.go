// Package config assembles the runtime settings of the BeerVault client.
//
// Precedence, later sources overriding earlier ones:
// defaults -> .env file -> JSON config file (-c/-config) -> flags.
package config

// Backend mode values. ModeAuto picks remote when the API key looks usable
// and falls back to local otherwise.
const (
	ModeAuto   = "auto"
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Config holds runtime settings for the BeerVault CLI.
//
// Fields:
//   - Mode: backend selection (auto, local, remote).
//   - APIBaseURL: base URL of the remote JSON blob service.
//   - APIKey: pre-shared key sent as the X-Master-Key header.
//   - DataDir: directory of the local SQLite document store.
type Config struct {
	Mode       string
	APIBaseURL string
	APIKey     string
	DataDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Mode = ModeAuto
	c.APIBaseURL = "https://api.jsonbin.io/v3/b"
	c.APIKey = ""
	c.DataDir = "."
}

// RemoteConfigured reports whether the API key is present and minimally
// well-formed. Anything short of a plausible key length means local mode.
func (c *Config) RemoteConfigured() bool {
	return len(c.APIKey) > 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON config file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
