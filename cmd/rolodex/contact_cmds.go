package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ekarslan/rolodex/internal/models"
	"github.com/ekarslan/rolodex/internal/tags"
	"github.com/ekarslan/rolodex/internal/view"
)

// listFlags holds the parsed flags for the list command.
type listFlags struct {
	search   string
	tagNames []string
	sortBy   string
	desc     bool
}

func newListCmd(c *cli) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show contacts, optionally searched, filtered, or sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.sortBy != "" && (flags.search != "" || len(flags.tagNames) > 0) {
				return fmt.Errorf("--sort reloads the full list and cannot be combined with --search or --tags")
			}

			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// Sorted reloads on its own; every other path needs one here.
			if flags.sortBy != "" {
				key := view.SortByName
				switch flags.sortBy {
				case "name":
				case "phone":
					key = view.SortByPhone
				default:
					return fmt.Errorf("unknown sort key %q (name or phone)", flags.sortBy)
				}
				contacts, err := ctrl.Sorted(ctx, key, flags.desc)
				if err != nil {
					return err
				}
				printContacts(contacts)
				return nil
			}

			if err := ctrl.Reload(ctx); err != nil {
				return err
			}

			contacts := ctrl.Contacts()
			switch {
			case flags.search != "":
				contacts = ctrl.Search(flags.search)
			case len(flags.tagNames) > 0:
				tagList, err := ctrl.Tags(ctx)
				if err != nil {
					return err
				}
				refs, err := tags.Resolve(strings.Join(flags.tagNames, ","), tagList)
				if err != nil {
					return err
				}
				for _, ref := range refs {
					ctrl.ToggleTag(ref.TagID)
				}
				contacts = ctrl.FilteredBySelection()
			}

			printContacts(contacts)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.search, "search", "", "Free-text query over name, phone, email, and address")
	f.StringSliceVar(&flags.tagNames, "tags", nil, "Show only contacts carrying any of these tags")
	f.StringVar(&flags.sortBy, "sort", "", "Sort by name or phone (reloads first, ignores filters)")
	f.BoolVar(&flags.desc, "desc", false, "Reverse the sort order")
	return cmd
}

func printContacts(contacts []models.Contact) {
	if len(contacts) == 0 {
		fmt.Println("No contacts.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tADDRESS\tTAGS")
	for _, contact := range contacts {
		names := make([]string, 0, len(contact.Tags))
		for _, ref := range contact.Tags {
			names = append(names, ref.TagName)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			contact.ID, contact.Name, contact.Phone, contact.Email, contact.Address,
			strings.Join(names, ", "))
	}
	w.Flush()
}

func newAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a contact interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			return ctrl.AddContact(cmd.Context())
		},
	}
}

func newEditCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <contact-id>",
		Short: "Edit a contact's fields and tags interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}
			return ctrl.EditContact(ctx, args[0])
		},
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <contact-id>",
		Short: "Delete a contact after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := c.controller()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}
			return ctrl.DeleteContact(ctx, args[0])
		},
	}
}
