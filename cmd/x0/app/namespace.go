package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Payback159/x0go/client"
)

// NamespaceOptions holds options shared by the namespace subcommands
type NamespaceOptions struct {
	*GlobalOptions

	// Token overrides the token saved in the profile
	Token string

	// Save writes newly issued tokens to the profile
	Save bool
}

// NewNamespaceCommand creates the namespace command group.
//
// Usage:
//
//	x0 namespace get ID [--token TOKEN]
//	x0 namespace create ID [--invite CODE] [--check-id] [--save]
//	x0 namespace reset-token ID [--token TOKEN] [--save]
func NewNamespaceCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &NamespaceOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:     "namespace",
		Aliases: []string{"ns"},
		Short:   "Manage namespaces",
	}

	cmd.PersistentFlags().StringVar(&opts.Token, "token", "",
		"namespace token (default: the token saved in the profile)")
	cmd.PersistentFlags().BoolVar(&opts.Save, "save", false,
		"save newly issued tokens to the profile")

	cmd.AddCommand(
		newNamespaceGetCommand(opts),
		newNamespaceCreateCommand(opts),
		newNamespaceResetTokenCommand(opts),
	)

	return cmd
}

// handler returns a namespace handler carrying the token from --token or the profile.
func (o *NamespaceOptions) handler(s *session, id string) *client.NamespaceHandler {
	return s.client.Namespace(id, firstNonEmpty(o.Token, s.profile.Token(id)))
}

// saveToken persists the handler's token when --save is set.
func (o *NamespaceOptions) saveToken(s *session, ns *client.NamespaceHandler) error {
	if !o.Save {
		return nil
	}
	s.profile.SetToken(ns.ID(), ns.Token())
	if err := s.profile.Save(o.ConfigPath); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.logger.Info("Token saved", "namespace", ns.ID(), "profile", o.ConfigPath)
	return nil
}

func describeStatus(err error) error {
	code, ok := client.StatusCode(err)
	if !ok {
		return err
	}
	switch code {
	case 401, 403:
		return fmt.Errorf("%w (token rejected, pass --token or reset it)", err)
	case 404:
		return fmt.Errorf("%w (namespace not found)", err)
	}
	return err
}

func newNamespaceGetCommand(opts *NamespaceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts.GlobalOptions)
			if err != nil {
				return err
			}

			namespace, err := opts.handler(s, args[0]).Get(cmd.Context())
			if err != nil {
				return describeStatus(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:      %s\n", namespace.ID)
			fmt.Fprintf(out, "Active:  %t\n", namespace.Active)
			if created := namespace.CreatedAt(); !created.IsZero() {
				fmt.Fprintf(out, "Created: %s\n", created.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}

func newNamespaceCreateCommand(opts *NamespaceOptions) *cobra.Command {
	var invite string
	var checkID bool

	cmd := &cobra.Command{
		Use:   "create ID",
		Short: "Create a namespace and print its token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts.GlobalOptions)
			if err != nil {
				return err
			}
			id := args[0]

			if checkID {
				info, err := s.client.Info().Get(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get server info: %w", err)
				}
				if info.Settings == nil {
					return errors.New("--check-id needs a server that publishes namespace id rules (--api-version v2)")
				}
				if err := info.Settings.NamespaceIDRules.Validate(id); err != nil {
					return fmt.Errorf("namespace id %q is invalid: %w", id, err)
				}
				if info.Settings.Invites && invite == "" {
					return errors.New("the server requires an invite, pass --invite")
				}
			}

			ns := s.client.Namespace(id, "")
			if err := ns.Create(cmd.Context(), invite); err != nil {
				return describeStatus(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ns.Token())
			return opts.saveToken(s, ns)
		},
	}

	cmd.Flags().StringVar(&invite, "invite", "", "invite code, if the server requires one")
	cmd.Flags().BoolVar(&checkID, "check-id", false, "validate the id against the server's rules before creating")

	return cmd
}

func newNamespaceResetTokenCommand(opts *NamespaceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-token ID",
		Short: "Replace a namespace token and print the new one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts.GlobalOptions)
			if err != nil {
				return err
			}

			ns := opts.handler(s, args[0])
			if err := ns.ResetToken(cmd.Context()); err != nil {
				return describeStatus(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ns.Token())
			return opts.saveToken(s, ns)
		},
	}
}
