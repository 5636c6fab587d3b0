package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/animalspotter/animalspotter/client"
)

func newRegisterCmd(flags *rootFlags) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			if err := c.Register(ctx, client.Credentials{Username: username, Password: password}); err != nil {
				log.Error().Err(err).Str("username", username).Dur("elapsed", time.Since(start)).Msg("register failed")
				return err
			}
			log.Debug().Str("username", username).Dur("elapsed", time.Since(start)).Msg("register completed")

			fmt.Fprintf(cmd.OutOrStdout(), "User registered: %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			if err := c.Authenticate(ctx, client.Credentials{Username: username, Password: password}); err != nil {
				log.Error().Err(err).Str("username", username).Msg("login failed")
				return err
			}
			tok, _ := c.Token()
			fmt.Fprintln(cmd.OutOrStdout(), tok.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
