package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cic/identity-portal/pkg/models"
)

func (c *Client) ListIdentityProviders(ctx context.Context, limit, offset int, filter string) (*models.IdentityProviderList, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.IdentityProviders)
	desc.Params = url.Values{}
	desc.Params.Set("limit", strconv.Itoa(limit))
	desc.Params.Set("offset", strconv.Itoa(offset))
	if filter != "" {
		desc.Params.Set("filter", filter)
	}
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get IdP list from: "+c.endpoints.IdentityProviders))
	if err != nil {
		return nil, err
	}
	var list models.IdentityProviderList
	if err := env.Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetIdentityProvider(ctx context.Context, id string) (*models.IdentityProvider, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.IdentityProviders+"/"+id)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get idp details from: "+c.endpoints.IdentityProviders))
	if err != nil {
		return nil, err
	}
	var idp models.IdentityProvider
	if err := env.Decode(&idp); err != nil {
		return nil, err
	}
	return &idp, nil
}

func (c *Client) DeleteIdentityProvider(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.IdentityProviders+"/"+id)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete the identity provider."))
	return err
}
