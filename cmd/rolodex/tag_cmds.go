package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ekarslan/rolodex/internal/models"
)

func newTagCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags and their assignments",
	}
	cmd.AddCommand(
		newTagListCmd(c),
		newTagAddCmd(c),
		newTagRmCmd(c),
		newTagAssignCmd(c),
		newTagUnassignCmd(c),
	)
	return cmd
}

func newTagListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			tagList, err := ctrl.Tags(cmd.Context())
			if err != nil {
				return err
			}
			if len(tagList) == 0 {
				fmt.Println("No tags.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, tag := range tagList {
				fmt.Fprintf(w, "%s\t%s\n", tag.ID, tag.Name)
			}
			return w.Flush()
		},
	}
}

func newTagAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Create a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			tag, err := ctrl.CreateTag(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Created tag %q.\n", tag.Name)
			return nil
		},
	}
}

func newTagRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tag-name>",
		Short: "Delete a tag; contacts lose it on their next reload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			tagList, err := ctrl.Tags(ctx)
			if err != nil {
				return err
			}
			tag, err := findTag(tagList, args[0])
			if err != nil {
				return err
			}
			return ctrl.DeleteTag(ctx, *tag)
		},
	}
}

func newTagAssignCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <contact-id> <tag-name>",
		Short: "Put a tag on a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := c.loggedIn()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			tagList, err := client.ListTags(ctx)
			if err != nil {
				return err
			}
			tag, err := findTag(tagList, args[1])
			if err != nil {
				return err
			}
			if err := client.AssignTag(ctx, args[0], tag.ID); err != nil {
				return err
			}
			fmt.Printf("Tagged contact with %q.\n", tag.Name)
			return nil
		},
	}
}

func newTagUnassignCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <contact-id> <tag-name>",
		Short: "Remove a tag from a contact after confirmation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}
			tagList, err := ctrl.Tags(ctx)
			if err != nil {
				return err
			}
			tag, err := findTag(tagList, args[1])
			if err != nil {
				return err
			}
			return ctrl.UnassignTag(ctx, args[0], tag.ID)
		},
	}
}

// findTag resolves a tag name case-insensitively against the fetched list.
func findTag(tagList []models.Tag, name string) (*models.Tag, error) {
	for i := range tagList {
		if strings.EqualFold(tagList[i].Name, name) {
			return &tagList[i], nil
		}
	}
	return nil, fmt.Errorf("no tag named %q", name)
}
