// Package app implements the x0 command line client.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Payback159/x0go/client"
)

const (
	cliName          = "x0"
	defaultServerURL = "http://localhost:8080"
)

// GlobalOptions holds options that are common to all commands
type GlobalOptions struct {
	// ConfigPath is the profile file
	ConfigPath string

	// ServerURL is the x0 server address
	ServerURL string

	// APIVersion is the API generation, "v1" or "v2"
	APIVersion string

	LogLevel  string
	LogFormat string
}

// NewX0Command creates the root x0 command with all subcommands.
func NewX0Command() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: "x0 - command line client for the x0 API",
		Long: `x0 talks to an x0 server: it reads the service info and creates,
inspects and re-keys namespaces.

Server address, API generation and namespace tokens can be stored in a
profile (default ~/.x0/config.yaml). Flags take precedence over the profile.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", DefaultProfilePath(),
		"profile file")
	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "",
		"x0 server address (default: "+defaultServerURL+")")
	cmd.PersistentFlags().StringVar(&opts.APIVersion, "api-version", "",
		"API generation, v1 or v2 (default: v1)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn",
		"log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text",
		"log format: json or text")

	cmd.AddCommand(
		NewInfoCommand(opts),
		NewNamespaceCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

func newLogger(opts *GlobalOptions, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(opts.LogLevel))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", opts.LogLevel)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch opts.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	}
	return nil, fmt.Errorf("invalid --log-format %q", opts.LogFormat)
}

// session bundles what a command needs to talk to the server.
type session struct {
	client  *client.Client
	profile *Profile
	logger  *slog.Logger
}

// newSession resolves the server address and API generation using the
// following priority: flags, profile, defaults.
func newSession(cmd *cobra.Command, opts *GlobalOptions) (*session, error) {
	logger, err := newLogger(opts, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	profile, err := LoadProfile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	serverURL := firstNonEmpty(opts.ServerURL, profile.Server, defaultServerURL)
	apiVersion, err := client.ParseAPIVersion(firstNonEmpty(opts.APIVersion, profile.APIVersion, "v1"))
	if err != nil {
		return nil, err
	}

	logger.Debug("Using x0 server", "server", serverURL, "apiVersion", apiVersion.String())
	c, err := client.New(serverURL,
		client.WithAPIVersion(apiVersion),
		client.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &session{client: c, profile: profile, logger: logger}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
