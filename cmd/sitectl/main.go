// Command sitectl is the admin console for the Lexluc site API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	config "github.com/lexluc/lexluc-platform/configs"
	"github.com/lexluc/lexluc-platform/pkg/apiclient"
	"github.com/lexluc/lexluc-platform/pkg/credstore"
)

var version = "dev"

// CLI is the top-level command structure for sitectl.
type CLI struct {
	Version     kong.VersionFlag `help:"Show version." short:"V"`
	APIURL      string           `name:"api-url" help:"API base URL (overrides API_URL)."`
	Credentials string           `help:"Credential store path (overrides SITECTL_CREDENTIALS)." type:"path"`
	Verbose     bool             `help:"Log retries and cache activity." short:"v"`

	Login    LoginCmd    `cmd:"" help:"Log in and remember the access token."`
	Logout   LogoutCmd   `cmd:"" help:"Revoke the token and forget it."`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the logged-in user."`
	Services ServicesCmd `cmd:"" help:"Manage services."`
	Tours    ToursCmd    `cmd:"" help:"Browse tours."`
	Bookings BookingsCmd `cmd:"" help:"Manage bookings."`
	Blog     BlogCmd     `cmd:"" help:"Browse blog posts."`
	Contacts ContactsCmd `cmd:"" help:"Handle contact messages."`
	Users    UsersCmd    `cmd:"" help:"Browse user accounts."`
	Stats    StatsCmd    `cmd:"" help:"Show dashboard counters."`
	Upload   UploadCmd   `cmd:"" help:"Upload an image."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("sitectl"),
		kong.Description("Admin console for the Lexluc site."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	cfg := config.LoadClient()
	a, err := newApp(cfg, &cli, os.Stdout)
	kctx.FatalIfErrorf(err)
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a.ctx = ctx

	kctx.FatalIfErrorf(kctx.Run(a))
}

// app carries what every command needs.
type app struct {
	ctx    context.Context
	client *apiclient.Client
	store  *credstore.Store
	out    io.Writer
}

func newApp(cfg *config.ClientConfig, cli *CLI, out io.Writer) (*app, error) {
	if cli.APIURL != "" {
		cfg.APIURL = cli.APIURL
	}
	if cli.Credentials != "" {
		cfg.CredentialPath = cli.Credentials
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if cli.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	store, err := credstore.Open(cfg.CredentialPath)
	if err != nil {
		return nil, err
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL:    cfg.APIURL,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	}, apiclient.WithCredentials(store), apiclient.WithLogger(logger))
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{ctx: context.Background(), client: client, store: store, out: out}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to close credential store:", err)
	}
}
