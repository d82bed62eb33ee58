// Package config loads runtime configuration for the libreserve CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flags.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the local database file
//	-s string   SMTP host for outgoing notifications
//	-p int      SMTP port
//	-f string   From address for outgoing notifications
//	-n          disable e-mail notifications (log them instead)
package config

// Config holds runtime settings for the libreserve CLI.
type Config struct {
	// DatabasePath is the local sqlite file holding users, books, and
	// reservations.
	DatabasePath string

	// SMTPHost/SMTPPort/SMTPFrom configure the outgoing mail transport.
	// An empty host disables real delivery; notifications are logged.
	SMTPHost string
	SMTPPort int
	SMTPFrom string

	// SMTPPassword may be left empty and supplied interactively at startup.
	SMTPPassword string

	// NotificationsDisabled forces the logging sender even when an SMTP
	// host is configured.
	NotificationsDisabled bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "library.db"
	c.SMTPPort = 587
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
