// Command rolodex is the terminal client for the Rolodex backend. It keeps a
// login session under the user config dir and drives the interactive add,
// edit, and delete flows against the server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekarslan/rolodex/internal/api"
	"github.com/ekarslan/rolodex/internal/app"
	"github.com/ekarslan/rolodex/internal/session"
	"github.com/ekarslan/rolodex/pkg/logging"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

const defaultServer = "http://localhost:8080"

// cli bundles the pieces every command needs: the server URL flag, the
// session file location, and the terminal prompter.
type cli struct {
	server   string
	prompter app.Prompter
}

// client returns an unauthenticated API client for the configured server.
func (c *cli) client() *api.Client {
	return api.New(c.server)
}

// loggedIn returns a client carrying the saved session, or ErrNotLoggedIn.
func (c *cli) loggedIn() (*api.Client, *session.Session, error) {
	path, err := session.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Load(path)
	if err != nil {
		return nil, nil, err
	}
	client := c.client()
	client.SetSession(sess.UserID, sess.Token)
	return client, sess, nil
}

// controller builds an app controller over the saved session.
func (c *cli) controller() (*app.Controller, error) {
	client, _, err := c.loggedIn()
	if err != nil {
		return nil, err
	}
	return app.NewController(client, c.prompter), nil
}

func main() {
	logging.Setup()

	c := &cli{prompter: newTerminalPrompter()}

	root := &cobra.Command{
		Use:     "rolodex",
		Short:   "Contact manager client",
		Long:    "Rolodex keeps your contacts and tags on a shared server and syncs a local view of them.",
		Version: version,
	}
	root.PersistentFlags().StringVar(&c.server, "server", serverFromEnv(), "Backend base URL")

	root.AddCommand(
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newListCmd(c),
		newAddCmd(c),
		newEditCmd(c),
		newDeleteCmd(c),
		newTagCmd(c),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serverFromEnv() string {
	if v := os.Getenv("ROLODEX_SERVER"); v != "" {
		return v
	}
	return defaultServer
}
