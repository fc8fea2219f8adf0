package config

import (
	"encoding/json"
	"os"

	"eduforum/internal/flagx"
	"eduforum/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify timeouts either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ServerBaseURL     string         `json:"server_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	RefreshTimeout    timex.Duration `json:"refresh_timeout"`
	EditWindowMinutes int            `json:"edit_window_minutes"`
	DatabasePath      string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags (via flagx.JsonConfigFlags). When no path
// is given, nothing is loaded. Read or unmarshal errors panic; the caller
// may recover if desired.
//
// Zero-valued JSON fields leave the corresponding Config fields untouched,
// so a partial file only overrides what it names.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshTimeout.Duration > 0 {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.EditWindowMinutes > 0 {
		cfg.EditWindowMinutes = jc.EditWindowMinutes
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
