package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/animalspotter/animalspotter/client"
)

func newAnimalsCmd(flags *rootFlags) *cobra.Command {
	var username, password, token string

	cmd := &cobra.Command{
		Use:   "animals",
		Short: "List the animal names visible to a user",
		Long: "List the animal names visible to a user. Either pass --token from a " +
			"previous login, or --username and --password to log in first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			switch {
			case token != "":
				c.SetToken(client.AuthToken{Token: token})
			case username != "":
				if err := c.Authenticate(ctx, client.Credentials{Username: username, Password: password}); err != nil {
					log.Error().Err(err).Str("username", username).Msg("login failed")
					return err
				}
			}

			names, err := c.ListAnimals(ctx)
			if err != nil {
				log.Error().Err(err).Msg("list animals failed")
				return err
			}
			log.Debug().Int("count", len(names)).Msg("list animals completed")

			out := cmd.OutOrStdout()
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to log in with")
	cmd.Flags().StringVar(&password, "password", "", "Password to log in with")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token from a previous login")
	cmd.MarkFlagsMutuallyExclusive("token", "username")
	cmd.MarkFlagsRequiredTogether("username", "password")

	return cmd
}
