package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekarslan/rolodex/internal/app"
	"github.com/ekarslan/rolodex/internal/session"
)

func newRegisterCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, ok := c.prompter.Prompt("Password (8+ characters)")
			if !ok {
				return app.ErrCancelled
			}
			if err := c.client().Register(cmd.Context(), args[0], password); err != nil {
				return err
			}
			fmt.Println("Account created; run `rolodex login` to sign in.")
			return nil
		},
	}
}

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, ok := c.prompter.Prompt("Password")
			if !ok {
				return app.ErrCancelled
			}

			client := c.client()
			sess, err := client.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			path, err := session.DefaultPath()
			if err != nil {
				return err
			}
			if err := session.Save(path, &session.Session{
				UserID:   sess.UserID,
				Username: args[0],
				Token:    sess.Token,
			}); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s.\n", args[0])
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := session.DefaultPath()
			if err != nil {
				return err
			}
			if err := session.Clear(path); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
