package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"cic/identity-portal/internal/httppipe"
	"cic/identity-portal/pkg/models"
)

const gravatarBase = "https://www.gravatar.com/avatar/"

// GravatarURL builds the avatar lookup address for an email address.
// d=404 makes a missing avatar detectable instead of a placeholder.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return gravatarBase + hex.EncodeToString(sum[:]) + "?d=404"
}

// findGravatar probes the profile's email addresses until one yields
// an avatar. Returns empty when none do.
func (c *Client) findGravatar(ctx context.Context, emails []models.MultiValue) string {
	for _, email := range emails {
		if email.Value == "" {
			continue
		}
		target := GravatarURL(email.Value)
		env, err := c.pipe.Do(ctx, httppipe.RequestDescriptor{Method: http.MethodGet, URL: target}, nil)
		if err == nil && env.Status == http.StatusOK {
			return target
		}
	}
	return ""
}

// GetUserInfo fetches the basic account view from the user endpoint,
// untyped because the payload varies with the server's user store.
func (c *Client) GetUserInfo(ctx context.Context) (map[string]any, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.User)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed get user info from: "+c.endpoints.User))
	if err != nil {
		return nil, err
	}
	var info map[string]any
	if err := env.Decode(&info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetProfile fetches the authenticated user's profile. When the server
// holds no image, the gravatar of the first matching email fills in.
//
// A 500 status inside the error body means the user store has SCIM
// disabled; the classifier cannot see that, so the login-error
// navigation fires from here.
func (c *Client) GetProfile(ctx context.Context, navigate httppipe.NavigateFunc) (*models.Profile, error) {
	desc := c.scimDescriptor(http.MethodGet, c.endpoints.Me)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed get user profile info from: "+c.endpoints.Me))
	if err != nil {
		if isSCIMDisabled(err) && navigate != nil {
			navigate(httppipe.NavigateLoginError)
		}
		return nil, err
	}

	profile, err := models.DecodeProfile(env.Body)
	if err != nil {
		return nil, err
	}
	profile.ResponseStatus = env.Status

	if profile.UserImage == "" && profile.ProfileURL == "" {
		profile.UserImage = c.findGravatar(ctx, profile.Emails)
	}
	if profile.ProfileURL != "" {
		profile.UserImage = profile.ProfileURL
	}
	return &profile, nil
}

func isSCIMDisabled(err error) bool {
	var apiErr *httppipe.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusInternalServerError
}

func (c *Client) UpdateProfile(ctx context.Context, info models.Profile) error {
	desc := c.scimDescriptor(http.MethodPut, c.endpoints.Me)
	desc.Body = info
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed update user profile info with: "+c.endpoints.Me))
	return err
}

// ListProfileSchemas fetches the default attribute schemas, unwrapped
// from the listing's Resources array.
func (c *Client) ListProfileSchemas(ctx context.Context) ([]models.ProfileSchema, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.ProfileSchemas)
	desc.Params = url.Values{"filter": []string{"default"}}
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed get user schemas"))
	if err != nil {
		return nil, err
	}
	var listing struct {
		Resources []models.ProfileSchema `json:"Resources"`
	}
	if err := env.Decode(&listing); err != nil {
		return nil, err
	}
	return listing.Resources, nil
}
