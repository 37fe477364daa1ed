package api

import (
	"context"
	"net/http"
	"net/url"

	"cic/identity-portal/pkg/models"
)

func (c *Client) ListGroups(ctx context.Context, filter string) (*models.GroupList, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Groups)
	if filter != "" {
		desc.Params = url.Values{"filter": []string{filter}}
	}
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get the group list."))
	if err != nil {
		return nil, err
	}
	var list models.GroupList
	if err := env.Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CreateGroup(ctx context.Context, group models.Group) (*models.Group, error) {
	desc := c.scimDescriptor(http.MethodPost, c.endpoints.Groups)
	desc.Body = group
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to create the group."))
	if err != nil {
		return nil, err
	}
	var created models.Group
	if err := env.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteGroup(ctx context.Context, groupID string) error {
	desc := c.scimDescriptor(http.MethodDelete, c.endpoints.Groups+"/"+groupID)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusNoContent, "Failed to delete the group."))
	return err
}

// PatchGroup applies SCIM patch operations to a group, used for
// member assignment.
func (c *Client) PatchGroup(ctx context.Context, groupID string, patch models.PatchOp) (*models.Group, error) {
	desc := c.scimDescriptor(http.MethodPatch, c.endpoints.Groups+"/"+groupID)
	desc.Body = patch
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update the group."))
	if err != nil {
		return nil, err
	}
	var group models.Group
	if err := env.Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}
