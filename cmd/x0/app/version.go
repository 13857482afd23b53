package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Payback159/x0go/client"
)

// VersionOptions holds options for the version command
type VersionOptions struct {
	*GlobalOptions

	// Client shows only the client version
	Client bool
}

// NewVersionCommand creates the version command.
//
// Usage:
//
//	x0 version [--client]
func NewVersionCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &VersionOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Client, "client", false, "show client version only")

	return cmd
}

func runVersion(cmd *cobra.Command, opts *VersionOptions) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Client Version: %s\n", client.Version)
	if opts.Client {
		return nil
	}

	s, err := newSession(cmd, opts.GlobalOptions)
	if err != nil {
		return err
	}
	info, err := s.client.Info().Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get server version: %w", err)
	}
	fmt.Fprintf(out, "Server Version: %s\n", info.Version)
	return nil
}
