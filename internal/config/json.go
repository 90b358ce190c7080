package config

import (
	"encoding/json"
	"os"

	"beervault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the current Config value untouched.
type JsonConfig struct {
	Mode       string `json:"mode"`
	APIBaseURL string `json:"api_base_url"`
	APIKey     string `json:"api_key"`
	DataDir    string `json:"data_dir"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given the function
// is a no-op. Read or unmarshal errors panic, matching the fail-fast startup
// contract (there is nothing sensible to run without a readable config).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Mode != "" {
		cfg.Mode = jc.Mode
	}
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
}
