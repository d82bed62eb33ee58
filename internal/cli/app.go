// Package cli implements the interactive front end: a read–eval–print loop
// over the user, book, and reservation services. Reminder evaluation runs as
// part of the listing commands; the loop itself never dispatches mail.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/acortes/libreserve/internal/config"
	"github.com/acortes/libreserve/internal/logging"
	"github.com/acortes/libreserve/internal/notify"
	"github.com/acortes/libreserve/internal/services"
	"github.com/acortes/libreserve/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	users        *services.UserService
	books        *services.BookService
	reservations *services.ReservationService
	reader       *bufio.Reader
	out          io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	repos, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	sender, err := buildSender(c, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:       c,
		logger:       logger,
		users:        services.NewUserService(repos.Users),
		books:        services.NewBookService(repos.Books),
		reservations: services.NewReservationService(repos.Reservations, repos.Users, repos.Books, sender, logger),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}
	return app, nil
}

// buildSender picks the mail transport. Without an SMTP host (or with -n)
// notifications go to the log. A configured host with no stored password
// prompts for one at startup so credentials never have to live in the config
// file.
func buildSender(c *config.Config, logger logging.Logger) (notify.Sender, error) {
	if c.NotificationsDisabled || c.SMTPHost == "" {
		return notify.NewLogSender(logger), nil
	}

	password := c.SMTPPassword
	if password == "" {
		pw, err := GetPassword("SMTP password for "+c.SMTPFrom, os.Stdout)
		if err != nil {
			return nil, err
		}
		password = pw
	}

	return notify.NewSMTPSender(c.SMTPHost, c.SMTPPort, c.SMTPFrom, password), nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.reader)
}
