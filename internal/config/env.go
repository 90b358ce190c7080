package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, without overriding variables
// already exported. The backend key is expected to arrive this way so it
// never lives in a committed config file.
//
// Recognized variables:
//
//	BEERVAULT_MODE      backend mode (auto, local, remote)
//	BEERVAULT_API_URL   base URL of the remote blob service
//	BEERVAULT_API_KEY   pre-shared backend key
//	BEERVAULT_DATA_DIR  directory of the local document store
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BEERVAULT_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("BEERVAULT_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BEERVAULT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BEERVAULT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
}
