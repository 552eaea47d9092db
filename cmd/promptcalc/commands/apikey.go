package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func apikeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the stored Gemini API key",
	}
	cmd.AddCommand(apikeySetCmd(), apikeyStatusCmd(), apikeyDeleteCmd())
	return cmd
}

func apikeySetCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Validate an API key against the live endpoint and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				var err error
				key, err = readSecret("Gemini API key: ")
				if err != nil {
					return err
				}
			}
			if err := wire.Calculator.SetCredential(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key validated and saved.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "API key (prompted for when omitted)")
	return cmd
}

func apikeyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a usable API key is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := wire.Calculator.CredentialConfigured()
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "API key: configured")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "API key: not configured")
			}
			return nil
		},
	}
}

func apikeyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Calculator.DeleteCredential(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
			return nil
		},
	}
}

// promptForCredential runs the first-run flow: ask for a key, validate it
// upstream, store it.
func promptForCredential(cmd *cobra.Command) error {
	fmt.Fprintln(os.Stderr, "No API key configured.")
	key, err := readSecret("Gemini API key: ")
	if err != nil {
		return err
	}
	if err := wire.Calculator.SetCredential(cmd.Context(), key); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "API key validated and saved.")
	return nil
}

// readSecret reads a key without echo when stdin is a terminal, and falls
// back to a plain line read when it is not (pipes, tests).
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
