package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cic/identity-portal/internal/session"
)

func loginCmd(app *appContext) *cobra.Command {
	var (
		force   bool
		scope   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the identity server with the authorization-code flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := app.store.InitOPConfiguration(ctx, app.pipe, app.endpoints.WellKnown, force); err != nil {
				return err
			}
			if err := app.store.BeginAuthentication(); err != nil {
				return err
			}

			state, err := session.NewStateToken()
			if err != nil {
				return err
			}
			nonce, err := session.NewStateToken()
			if err != nil {
				return err
			}

			authorizeURL, err := app.store.AuthorizeURL(session.AuthorizeRequest{
				ClientID:    app.cfg.ClientID,
				RedirectURI: app.cfg.LoginCallbackURL,
				Scope:       scope,
				State:       state,
				Nonce:       nonce,
			})
			if err != nil {
				return err
			}

			callback, err := session.NewCallbackServer(app.cfg.LoginCallbackURL, state)
			if err != nil {
				return err
			}
			defer func() { _ = callback.Close() }()

			fmt.Println("Open the following URL in a browser to sign in:")
			fmt.Println()
			fmt.Println("  " + authorizeURL)
			fmt.Println()

			waitCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			result, err := callback.Wait(waitCtx)
			if err != nil {
				return fmt.Errorf("waiting for login callback: %w", err)
			}

			tokens, err := app.store.ExchangeCode(ctx, app.pipe, app.cfg.ClientID, app.cfg.LoginCallbackURL, result.Code)
			if err != nil {
				return err
			}

			params := session.Parameters{
				AccessToken:  tokens.AccessToken,
				IDToken:      tokens.IDToken,
				RefreshToken: tokens.RefreshToken,
				Scope:        tokens.Scope,
			}
			if claims, err := idTokenClaims(tokens.IDToken); err == nil {
				params.Username = claims.Sub
				params.DisplayName = claims.Name
				params.Email = claims.Email
			}
			if err := app.store.CompleteAuthentication(params); err != nil {
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}

			fmt.Printf("Signed in as %s.\n", app.store.Username())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force-discovery", false, "refetch the OpenID provider configuration")
	cmd.Flags().StringVar(&scope, "scope", "openid "+session.LoginScope, "OAuth scopes to request")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "how long to wait for the browser callback")
	return cmd
}

func logoutCmd(app *appContext) *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			signOutURL, signOutErr := app.store.SignOutURL(app.cfg.ClientHost + app.cfg.LoginPath)

			if revoke {
				if err := app.store.RevokeToken(ctx, app.pipe, app.cfg.ClientID); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Token revocation failed: %v\n", err)
				}
			}

			app.store.MarkLoggedOut()
			if err := app.saveSession(); err != nil {
				return err
			}

			if signOutErr == nil {
				fmt.Println("Open the following URL to end the identity server session:")
				fmt.Println()
				fmt.Println("  " + signOutURL)
			} else {
				fmt.Println("Local session cleared.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", true, "revoke the access token before clearing the session")
	return cmd
}

type tokenClaims struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// idTokenClaims decodes the id_token payload without verification; the
// token just came off the TLS channel from the token endpoint.
func idTokenClaims(idToken string) (tokenClaims, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return tokenClaims{}, fmt.Errorf("malformed id_token")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return tokenClaims{}, err
	}
	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return tokenClaims{}, err
	}
	return claims, nil
}
