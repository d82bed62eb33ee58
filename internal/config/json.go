package config

import (
	"encoding/json"
	"os"

	"github.com/acortes/libreserve/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing.
type JsonConfig struct {
	DatabasePath          string `json:"database_path"`
	SMTPHost              string `json:"smtp_host"`
	SMTPPort              int    `json:"smtp_port"`
	SMTPFrom              string `json:"smtp_from"`
	SMTPPassword          string `json:"smtp_password"`
	NotificationsDisabled bool   `json:"notifications_disabled"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Unset JSON fields keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		DatabasePath: cfg.DatabasePath,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPFrom:     cfg.SMTPFrom,
		SMTPPassword: cfg.SMTPPassword,
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.DatabasePath = jc.DatabasePath
	cfg.SMTPHost = jc.SMTPHost
	cfg.SMTPPort = jc.SMTPPort
	cfg.SMTPFrom = jc.SMTPFrom
	cfg.SMTPPassword = jc.SMTPPassword
	cfg.NotificationsDisabled = jc.NotificationsDisabled
}
