package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lechworld/internal/flagx"
)

// JsonConfig is the on-disk form. Empty fields do not override earlier
// values.
type JsonConfig struct {
	LocalDBPath    string `json:"local_db_path"`
	DatabaseDSN    string `json:"database_dsn"`
	CredentialsKey string `json:"credentials_key"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.LocalDBPath, jc.LocalDBPath)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.CredentialsKey, jc.CredentialsKey)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
