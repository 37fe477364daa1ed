package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cic/identity-portal/pkg/models"
)

// ListUsers pages through the SCIM user listing. attributes narrows
// the returned projection when non-empty.
func (c *Client) ListUsers(ctx context.Context, count, startIndex int, filter, attributes string) (*models.UserList, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Users)
	desc.Params = url.Values{}
	desc.Params.Set("count", strconv.Itoa(count))
	desc.Params.Set("startIndex", strconv.Itoa(startIndex))
	if filter != "" {
		desc.Params.Set("filter", filter)
	}
	if attributes != "" {
		desc.Params.Set("attributes", attributes)
	}

	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get the user list."))
	if err != nil {
		return nil, err
	}
	var list models.UserList
	if err := env.Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	desc := c.scimDescriptor(http.MethodPost, c.endpoints.Users)
	desc.Body = user
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to add the user."))
	if err != nil {
		return nil, err
	}
	var created models.User
	if err := env.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	desc := c.scimDescriptor(http.MethodDelete, c.endpoints.Users+"/"+userID)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete the user."))
	return err
}

// ListUserStores fetches the configured user store domains.
func (c *Client) ListUserStores(ctx context.Context) ([]models.UserStore, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.UserStores)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get the user store list."))
	if err != nil {
		return nil, err
	}
	var stores []models.UserStore
	if err := env.Decode(&stores); err != nil {
		return nil, err
	}
	return stores, nil
}
