package config

import (
	"flag"
	"os"

	"github.com/acortes/libreserve/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-p", "-f", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.SMTPHost, "s", cfg.SMTPHost, "SMTP host for notifications")
	fs.IntVar(&cfg.SMTPPort, "p", cfg.SMTPPort, "SMTP port")
	fs.StringVar(&cfg.SMTPFrom, "f", cfg.SMTPFrom, "From address for notifications")
	fs.BoolVar(&cfg.NotificationsDisabled, "n", cfg.NotificationsDisabled, "disable e-mail notifications")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
