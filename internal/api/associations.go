package api

import (
	"context"
	"net/http"

	"cic/identity-portal/pkg/models"
)

func (c *Client) ListFederatedAssociations(ctx context.Context) ([]models.FederatedAssociation, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.FederatedAssociations)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to retrieve Federated Associations"))
	if err != nil {
		return nil, err
	}
	var associations []models.FederatedAssociation
	if err := env.Decode(&associations); err != nil {
		return nil, err
	}
	return associations, nil
}

func (c *Client) DeleteFederatedAssociation(ctx context.Context, id string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.FederatedAssociations+"/"+id)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete the federated association."))
	return err
}

func (c *Client) DeleteAllFederatedAssociations(ctx context.Context) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.FederatedAssociations)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete the federated associations."))
	return err
}
