package api

import (
	"context"
	"net/http"
	"net/url"

	"cic/identity-portal/pkg/models"
)

// sessionSearch keeps the listing to application and default category
// sessions, mirroring what the portal shows.
const sessionSearch = `category contains "application" | category contains "default"`

func (c *Client) ListUserSessions(ctx context.Context) (*models.UserSessions, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Sessions)
	desc.Params = url.Values{"search": []string{sessionSearch}}
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get the active user sessions."))
	if err != nil {
		return nil, err
	}
	var sessions models.UserSessions
	if err := env.Decode(&sessions); err != nil {
		return nil, err
	}
	return &sessions, nil
}

func (c *Client) TerminateUserSession(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Sessions+"/"+id)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to terminate the user session."))
	return err
}

func (c *Client) TerminateAllUserSessions(ctx context.Context) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Sessions)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to terminate the active user sessions."))
	return err
}
