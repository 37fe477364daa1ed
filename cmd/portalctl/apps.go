package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cic/identity-portal/internal/portal"
	"cic/identity-portal/pkg/models"
)

func appsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Manage registered applications",
	}

	var (
		limit  int
		offset int
		filter string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := portal.Page{Limit: limit, Offset: offset}.Normalize()
			result, err := app.client.ListApplications(cmd.Context(), page.Limit, page.Offset, filter)
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("%d of %d applications\n", len(result.Applications), result.TotalResults)
				for _, item := range result.Applications {
					fmt.Printf("  %-36s  %s\n", item.ID, item.Name)
				}
			})
		},
	}
	list.Flags().IntVar(&limit, "limit", portal.DefaultPageSize, "page size")
	list.Flags().IntVar(&offset, "offset", 0, "page offset")
	list.Flags().StringVar(&filter, "filter", "", `search filter, e.g. 'name co "portal"'`)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetApplication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("%s\t%s\n", result.ID, result.Name)
				if result.Description != "" {
					fmt.Println(result.Description)
				}
				for _, proto := range result.InboundProtocols {
					fmt.Printf("  inbound: %s\n", proto.Type)
				}
			})
		},
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a new application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.client.CreateApplication(cmd.Context(), models.Application{Name: args[0]})
			if err != nil {
				return err
			}
			return app.printResult(created, func() {
				fmt.Printf("Created application %s (%s).\n", created.Name, created.ID)
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DeleteApplication(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Application deleted.")
			return nil
		},
	}

	oidc := &cobra.Command{
		Use:   "oidc <id>",
		Short: "Show an application's OIDC configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetOIDCConfiguration(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("client_id: %s\n", result.ClientID)
				fmt.Printf("grant_types: %v\n", result.GrantTypes)
				fmt.Printf("callbacks: %v\n", result.CallbackURLs)
			})
		},
	}

	regenerate := &cobra.Command{
		Use:   "regenerate-secret <id>",
		Short: "Regenerate an application's OIDC client secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.RegenerateClientSecret(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("New client secret: %s\n", result.ClientSecret)
			})
		},
	}

	cmd.AddCommand(list, get, create, del, oidc, regenerate)
	return cmd
}

func idpsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idps",
		Short: "Manage federated identity providers",
	}

	var (
		limit  int
		offset int
		filter string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List identity providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := portal.Page{Limit: limit, Offset: offset}.Normalize()
			result, err := app.client.ListIdentityProviders(cmd.Context(), page.Limit, page.Offset, filter)
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, idp := range result.IdentityProviders {
					fmt.Printf("  %-36s  %s\n", idp.ID, idp.Name)
				}
			})
		},
	}
	list.Flags().IntVar(&limit, "limit", portal.DefaultPageSize, "page size")
	list.Flags().IntVar(&offset, "offset", 0, "page offset")
	list.Flags().StringVar(&filter, "filter", "", `search filter, e.g. 'name sw "google"'`)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one identity provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetIdentityProvider(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("%s\t%s\n", result.ID, result.Name)
				if result.Description != "" {
					fmt.Println(result.Description)
				}
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an identity provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DeleteIdentityProvider(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Identity provider deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, get, del)
	return cmd
}

func claimsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Inspect claim dialects and attributes",
	}

	dialects := &cobra.Command{
		Use:   "dialects",
		Short: "List external claim dialects",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListClaimDialects(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, dialect := range result {
					fmt.Printf("  %-24s  %s\n", dialect.ID, dialect.DialectURI)
				}
			})
		},
	}

	local := &cobra.Command{
		Use:   "local",
		Short: "List local claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListLocalClaims(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, claim := range result {
					fmt.Printf("  %s\n", claim.ClaimURI)
				}
			})
		},
	}

	external := &cobra.Command{
		Use:   "external <dialect-id>",
		Short: "List claims of an external dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListExternalClaims(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, claim := range result {
					fmt.Printf("  %-40s -> %s\n", claim.ClaimURI, claim.MappedLocalClaimURI)
				}
			})
		},
	}

	addDialect := &cobra.Command{
		Use:   "add-dialect <dialect-uri>",
		Short: "Add an external claim dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.AddClaimDialect(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Claim dialect added.")
			return nil
		},
	}

	deleteDialect := &cobra.Command{
		Use:   "delete-dialect <dialect-id>",
		Short: "Delete an external claim dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DeleteClaimDialect(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Claim dialect deleted.")
			return nil
		},
	}

	cmd.AddCommand(dialects, local, external, addDialect, deleteDialect)
	return cmd
}
