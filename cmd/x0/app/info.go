package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Payback159/x0go/models"
)

// InfoOptions holds options for the info command
type InfoOptions struct {
	*GlobalOptions

	// JSON prints the raw info document
	JSON bool
}

// NewInfoCommand creates the info command.
//
// Usage:
//
//	x0 info [--json]
func NewInfoCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &InfoOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display the server's metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the info document as JSON")

	return cmd
}

func runInfo(cmd *cobra.Command, opts *InfoOptions) error {
	s, err := newSession(cmd, opts.GlobalOptions)
	if err != nil {
		return err
	}

	info, err := s.client.Info().Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get server info: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	printInfo(out, info)
	return nil
}

func printInfo(out io.Writer, info *models.Info) {
	fmt.Fprintf(out, "Version:    %s\n", info.Version)
	fmt.Fprintf(out, "Production: %t\n", info.Production)
	fmt.Fprintf(out, "Invites:    %t\n", info.InvitesRequired())
	if info.Settings != nil {
		rules := info.Settings.NamespaceIDRules
		fmt.Fprintln(out, "Namespace ID rules:")
		fmt.Fprintf(out, "  Length:     %d-%d\n", rules.MinLength, rules.MaxLength)
		fmt.Fprintf(out, "  Characters: %s\n", rules.AllowedCharacters)
	}
}
