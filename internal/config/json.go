package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dcastano/finanzapp/internal/flagx"
	"github.com/dcastano/finanzapp/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the session validity either as a string
// like "24h" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	SessionValidity timex.Duration `json:"session_validity"`
	SessionSecret   string         `json:"session_secret"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is given the function returns without touching cfg. Read or
// unmarshal errors panic, matching the fail-fast startup policy.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionValidity.Duration != 0 {
		cfg.SessionValidity = time.Duration(jc.SessionValidity.Duration)
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
}
