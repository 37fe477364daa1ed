package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cic/identity-portal/pkg/models"
)

// ListApplications fetches a page of applications. A non-empty filter
// narrows the result server-side.
func (c *Client) ListApplications(ctx context.Context, limit, offset int, filter string) (*models.ApplicationList, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Applications)
	desc.Params = url.Values{}
	desc.Params.Set("limit", strconv.Itoa(limit))
	desc.Params.Set("offset", strconv.Itoa(offset))
	if filter != "" {
		desc.Params.Set("filter", filter)
	}

	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get application list from: "+c.endpoints.Applications))
	if err != nil {
		return nil, err
	}
	var list models.ApplicationList
	if err := env.Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Applications+"/"+id)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get app from: "+c.endpoints.Applications))
	if err != nil {
		return nil, err
	}
	var app models.Application
	if err := env.Decode(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) CreateApplication(ctx context.Context, app models.Application) (*models.Application, error) {
	desc := c.descriptor(http.MethodPost, c.endpoints.Applications)
	desc.Body = app
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to create the application."))
	if err != nil {
		return nil, err
	}
	var created models.Application
	if err := env.Decode(&created); err != nil {
		// A 201 with no body still counts as created.
		return &app, nil
	}
	return &created, nil
}

// UpdateApplication patches the application's basic details. The ID
// travels in the path, never in the payload.
func (c *Client) UpdateApplication(ctx context.Context, id string, app models.Application) (*models.ApplicationBasic, error) {
	app.ID = ""
	desc := c.descriptor(http.MethodPatch, c.endpoints.Applications+"/"+id)
	desc.Body = app
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update application from: "+c.endpoints.Applications))
	if err != nil {
		return nil, err
	}
	var updated models.ApplicationBasic
	if err := env.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Applications+"/"+id)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete the application."))
	return err
}

// ListInboundProtocols fetches the inbound protocol metadata the
// server supports. customOnly restricts the list to custom protocols.
func (c *Client) ListInboundProtocols(ctx context.Context, customOnly bool) ([]models.InboundProtocolMeta, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Applications+"/meta/inbound-protocols")
	desc.Params = url.Values{"customOnly": []string{strconv.FormatBool(customOnly)}}
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get Inbound protocols from: "+c.endpoints.Applications))
	if err != nil {
		return nil, err
	}
	var metas []models.InboundProtocolMeta
	if err := env.Decode(&metas); err != nil {
		return nil, err
	}
	return metas, nil
}

// GetInboundProtocolConfig resolves one inbound protocol binding via
// the path advertised in the application's self links.
func (c *Client) GetInboundProtocolConfig(ctx context.Context, applicationID, protocolID string) (map[string]any, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Applications+"/"+applicationID+"/inbound-protocols/"+protocolID)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to retrieve the inbound protocol config."))
	if err != nil {
		return nil, err
	}
	var cfg map[string]any
	if err := env.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Client) GetOIDCConfiguration(ctx context.Context, id string) (*models.OIDCConfiguration, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Applications+"/"+id+"/inbound-protocols/oidc")
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to retrieve OIDC data from: "+c.endpoints.Applications))
	if err != nil {
		return nil, err
	}
	var oidc models.OIDCConfiguration
	if err := env.Decode(&oidc); err != nil {
		return nil, err
	}
	return &oidc, nil
}

func (c *Client) UpdateOIDCConfiguration(ctx context.Context, id string, oidc models.OIDCConfiguration) error {
	desc := c.descriptor(http.MethodPut, c.endpoints.Applications+"/"+id+"/inbound-protocols/oidc")
	desc.Body = oidc
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update inbound configuration"))
	return err
}

func (c *Client) UpdateAdvancedConfigurations(ctx context.Context, id string, configs models.AdvancedConfigurations) error {
	desc := c.descriptor(http.MethodPatch, c.endpoints.Applications+"/"+id)
	desc.Body = struct {
		AdvancedConfigurations models.AdvancedConfigurations `json:"advancedConfigurations"`
	}{configs}
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update advance configuration"))
	return err
}

func (c *Client) UpdateAuthenticationSequence(ctx context.Context, id string, sequence models.AuthenticationSequence) error {
	desc := c.descriptor(http.MethodPatch, c.endpoints.Applications+"/"+id)
	desc.Body = struct {
		AuthenticationSequence models.AuthenticationSequence `json:"authenticationSequence"`
	}{sequence}
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update authentication sequence"))
	return err
}

// RegenerateClientSecret mints a new OIDC client secret for the
// application, invalidating the old one.
func (c *Client) RegenerateClientSecret(ctx context.Context, id string) (*models.OIDCConfiguration, error) {
	desc := c.descriptor(http.MethodPost, c.endpoints.Applications+"/"+id+"/inbound-protocols/oidc/regenerate-secret")
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to regenerate the application secret."))
	if err != nil {
		return nil, err
	}
	var oidc models.OIDCConfiguration
	if err := env.Decode(&oidc); err != nil {
		return nil, err
	}
	return &oidc, nil
}

func (c *Client) RevokeClientSecret(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodPost, c.endpoints.Applications+"/"+id+"/inbound-protocols/oidc/revoke")
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to revoke the application secret."))
	return err
}
