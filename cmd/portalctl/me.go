package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cic/identity-portal/pkg/models"
)

func meCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Self-service commands for the signed-in user",
	}

	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetProfile(cmd.Context(), navigator(app.cfg, app.store))
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				fmt.Printf("username:     %s\n", result.UserName)
				fmt.Printf("name:         %s %s\n", result.Name.GivenName, result.Name.FamilyName)
				if result.Organisation != "" {
					fmt.Printf("organisation: %s\n", result.Organisation)
				}
				for _, email := range result.Emails {
					fmt.Printf("email:        %s\n", email.Value)
				}
				if result.UserImage != "" {
					fmt.Printf("image:        %s\n", result.UserImage)
				}
			})
		},
	}

	schemas := &cobra.Command{
		Use:   "schemas",
		Short: "Show the profile attribute schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListProfileSchemas(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, schema := range result {
					required := ""
					if schema.Required {
						required = " (required)"
					}
					fmt.Printf("  %s%s\n", schema.Name, required)
				}
			})
		},
	}

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List active sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListUserSessions(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, s := range result.Sessions {
					fmt.Printf("  %-36s  %s  last active %s\n", s.ID, s.IP, s.LastAccessTime)
					for _, application := range s.Applications {
						fmt.Printf("      app: %s\n", application.AppName)
					}
				}
			})
		},
	}

	var all bool
	terminate := &cobra.Command{
		Use:   "terminate-session [id]",
		Short: "Terminate one session, or all with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if err := app.client.TerminateAllUserSessions(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("All sessions terminated.")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("session id required unless --all is set")
			}
			if err := app.client.TerminateUserSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Session terminated.")
			return nil
		},
	}
	terminate.Flags().BoolVar(&all, "all", false, "terminate every active session")

	consents := &cobra.Command{
		Use:   "consents",
		Short: "List consented applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListConsentedApps(cmd.Context(), models.ConsentStateActive)
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, consent := range result {
					fmt.Printf("  %-36s  %s\n", consent.ConsentReceiptID, consent.AppDisplayName)
				}
			})
		},
	}

	receipt := &cobra.Command{
		Use:   "consent-receipt <receipt-id>",
		Short: "Show a consent receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetConsentReceipt(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, service := range result.Services {
					fmt.Printf("service: %s\n", service.ServiceDisplayName)
					for _, purpose := range service.Purposes {
						fmt.Printf("  purpose: %s\n", purpose.Purpose)
						for _, category := range purpose.PIICategories {
							fmt.Printf("    claim: %s\n", category.PIICategoryDisplayName)
						}
					}
				}
			})
		},
	}

	revokeConsent := &cobra.Command{
		Use:   "revoke-consent <receipt-id>",
		Short: "Revoke consent for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.RevokeConsent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Consent revoked.")
			return nil
		},
	}

	associations := &cobra.Command{
		Use:   "federated-associations",
		Short: "List federated account associations",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ListFederatedAssociations(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				for _, assoc := range result {
					idpName := assoc.IdP.DisplayName
					if idpName == "" {
						idpName = assoc.IdP.Name
					}
					fmt.Printf("  %-36s  %s (%s)\n", assoc.ID, assoc.FederatedUserID, idpName)
				}
			})
		},
	}

	questions := &cobra.Command{
		Use:   "security-questions",
		Short: "Show security questions and configured answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetSecurityQuestions(cmd.Context())
			if err != nil {
				return err
			}
			return app.printResult(result, func() {
				answered := make(map[string]bool, len(result.Answers))
				for _, answer := range result.Answers {
					answered[answer.QuestionSetID] = true
				}
				for _, set := range result.Questions {
					marker := " "
					if answered[set.QuestionSetID] {
						marker = "*"
					}
					fmt.Printf("%s set %s\n", marker, set.QuestionSetID)
					for _, question := range set.Questions {
						fmt.Printf("    %s\n", question.Question)
					}
				}
			})
		},
	}

	cmd.AddCommand(profile, schemas, sessions, terminate, consents, receipt, revokeConsent, associations, questions)
	return cmd
}
