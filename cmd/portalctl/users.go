package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cic/identity-portal/internal/portal"
	"cic/identity-portal/pkg/models"
)

func usersCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage SCIM users",
	}

	var (
		count      int
		startIndex int
		filter     string
		attributes string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := portal.Page{Limit: count, Offset: startIndex - 1}.Normalize()
			result, err := app.client.ListUsers(cmd.Context(), page.Limit, page.StartIndex(), filter, attributes)
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("%d of %d users\n", len(result.Resources), result.TotalResults)
				for _, user := range result.Resources {
					fmt.Printf("  %-36s  %s\n", user.ID, user.UserName)
				}
			})
		},
	}
	list.Flags().IntVar(&count, "count", portal.DefaultPageSize, "page size")
	list.Flags().IntVar(&startIndex, "start-index", 1, "one-based start index")
	list.Flags().StringVar(&filter, "filter", "", `SCIM filter, e.g. 'userName sw "ali"'`)
	list.Flags().StringVar(&attributes, "attributes", "", "comma-separated attribute projection")

	var (
		email     string
		givenName string
		lastName  string
	)
	add := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := models.User{UserName: args[0]}
			if email != "" {
				user.Emails = []models.MultiValue{{Value: email, Primary: true}}
			}
			if givenName != "" || lastName != "" {
				user.Name = &models.Name{GivenName: givenName, FamilyName: lastName}
			}
			created, err := app.client.AddUser(cmd.Context(), user)
			if err != nil {
				return err
			}
			return app.printResult(created, func() {
				fmt.Printf("Created user %s (%s).\n", created.UserName, created.ID)
			})
		},
	}
	add.Flags().StringVar(&email, "email", "", "primary email address")
	add.Flags().StringVar(&givenName, "given-name", "", "given name")
	add.Flags().StringVar(&lastName, "last-name", "", "family name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("User deleted.")
			return nil
		},
	}

	stores := &cobra.Command{
		Use:   "stores",
		Short: "List user stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListUserStores(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, store := range result {
					fmt.Printf("  %-24s  %s\n", store.ID, store.Name)
				}
			})
		},
	}

	cmd.AddCommand(list, add, del, stores)
	return cmd
}

func groupsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage SCIM groups",
	}

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListGroups(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("%d of %d groups\n", len(result.Resources), result.TotalResults)
				for _, group := range result.Resources {
					fmt.Printf("  %-36s  %s\n", group.ID, group.DisplayName)
				}
			})
		},
	}
	list.Flags().StringVar(&filter, "filter", "", `SCIM filter, e.g. 'displayName sw "admin"'`)

	create := &cobra.Command{
		Use:   "create <display-name>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.client.CreateGroup(cmd.Context(), models.Group{DisplayName: args[0]})
			if err != nil {
				return err
			}
			return app.printResult(created, func() {
				fmt.Printf("Created group %s (%s).\n", created.DisplayName, created.ID)
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DeleteGroup(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Group deleted.")
			return nil
		},
	}

	addMember := &cobra.Command{
		Use:   "add-member <group-id> <user-id> <user-display>",
		Short: "Add a user to a group",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := models.NewPatchOp(models.PatchOperation{
				Op:   "add",
				Path: "members",
				Value: []models.MemberRef{
					{Value: args[1], Display: args[2]},
				},
			})
			group, err := app.client.PatchGroup(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return app.printResult(group, func() {
				fmt.Printf("Group %s now has %d members.\n", group.DisplayName, len(group.Members))
			})
		},
	}

	cmd.AddCommand(list, create, del, addMember)
	return cmd
}
