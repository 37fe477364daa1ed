package api

import (
	"context"
	"net/http"

	"cic/identity-portal/pkg/models"
)

// ListClaimDialects fetches the claim dialects, filtering out the
// local dialect entry the server mixes into the listing. Local claims
// have their own route.
func (c *Client) ListClaimDialects(ctx context.Context) ([]models.ClaimDialect, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Claims)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get claim dialect from: "+c.endpoints.Claims))
	if err != nil {
		return nil, err
	}
	var dialects []models.ClaimDialect
	if err := env.Decode(&dialects); err != nil {
		return nil, err
	}

	filtered := dialects[:0]
	for _, dialect := range dialects {
		if dialect.ID == models.LocalDialectID {
			continue
		}
		filtered = append(filtered, dialect)
	}
	return filtered, nil
}

func (c *Client) ListLocalClaims(ctx context.Context) ([]models.LocalClaim, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Claims+"/local/claims")
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get local claims from: "+c.endpoints.Claims))
	if err != nil {
		return nil, err
	}
	var claims []models.LocalClaim
	if err := env.Decode(&claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *Client) ListExternalClaims(ctx context.Context, dialectID string) ([]models.ExternalClaim, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Claims+"/"+dialectID+"/claims")
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get external claims: "+dialectID))
	if err != nil {
		return nil, err
	}
	var claims []models.ExternalClaim
	if err := env.Decode(&claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *Client) AddClaimDialect(ctx context.Context, dialectURI string) error {
	desc := c.descriptor(http.MethodPost, c.endpoints.Claims)
	desc.Body = models.ClaimDialect{DialectURI: dialectURI}
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to add claim dialect: "+dialectURI))
	return err
}

func (c *Client) UpdateClaimDialect(ctx context.Context, id, dialectURI string) error {
	desc := c.descriptor(http.MethodPut, c.endpoints.Claims+"/"+id)
	desc.Body = models.ClaimDialect{DialectURI: dialectURI}
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update claim dialect: "+id))
	return err
}

func (c *Client) DeleteClaimDialect(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Claims+"/"+id)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete claim dialect: "+id))
	return err
}

func (c *Client) AddLocalClaim(ctx context.Context, claim models.LocalClaim) error {
	desc := c.descriptor(http.MethodPost, c.endpoints.Claims+"/local/claims")
	desc.Body = claim
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to add local claim: "+claim.ClaimURI))
	return err
}

func (c *Client) UpdateLocalClaim(ctx context.Context, claim models.LocalClaim) error {
	desc := c.descriptor(http.MethodPut, c.endpoints.Claims+"/local/claims/"+claim.ID)
	desc.Body = claim
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update local claim: "+claim.ClaimURI))
	return err
}

func (c *Client) DeleteLocalClaim(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Claims+"/local/claims/"+id)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete local claim: "+id))
	return err
}

func (c *Client) AddExternalClaim(ctx context.Context, dialectID string, claim models.ExternalClaim) error {
	desc := c.descriptor(http.MethodPost, c.endpoints.Claims+"/"+dialectID+"/claims")
	desc.Body = claim
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to add external claim: "+claim.ClaimURI))
	return err
}

func (c *Client) UpdateExternalClaim(ctx context.Context, dialectID string, claim models.ExternalClaim) error {
	desc := c.descriptor(http.MethodPut, c.endpoints.Claims+"/"+dialectID+"/claims/"+claim.ID)
	desc.Body = claim
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update external claim: "+claim.ClaimURI))
	return err
}

func (c *Client) DeleteExternalClaim(ctx context.Context, dialectID, claimID string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Claims+"/"+dialectID+"/claims/"+claimID)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete external claim: "+claimID))
	return err
}
