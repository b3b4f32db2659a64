package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/softix-tools/softix-cli/internal/tokenfile"
)

func createTokenCmd() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "create-token",
		Short: "Create an authentication token",
		Long: "Exchange the client credentials for a bearer token. With --file the\n" +
			"token is written to a brand-new file for reuse by later invocations;\n" +
			"an existing destination is never overwritten. Without --file the\n" +
			"token is printed to stdout.",
		Example: `  softix create-token
  softix create-token --file token.json
  SOFTIX_CLIENT_ID=id SOFTIX_SECRET=s softix create-token`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Collision check happens before the network call; Write's
			// exclusive create catches the race.
			if err := tokenfile.CheckDestination(dest); err != nil {
				return err
			}

			cred := credential()
			if cred.ClientID == "" || cred.Secret == "" {
				return errors.New("client id and secret are required (--client-id/--secret or SOFTIX_CLIENT_ID/SOFTIX_SECRET)")
			}

			tok, err := newAPI("").Authenticate(context.Background(), cred.ClientID, cred.Secret)
			if err != nil {
				return err
			}

			if dest != "" {
				return tokenfile.Write(dest, tok)
			}
			return printIndented(tok.Raw)
		},
	}

	cmd.Flags().StringVar(&dest, "file", "", "output destination file")

	return cmd
}
