// Package api wraps the identity server's management and SCIM
// endpoints. Every function is a thin parameterization of the dispatch
// pipeline: build a descriptor, state the expected status, decode the
// payload.
package api

import (
	"net/http"

	"cic/identity-portal/internal/config"
	"cic/identity-portal/internal/httppipe"
)

// TokenSource yields the bearer token attached to every call. The
// session store satisfies it.
type TokenSource interface {
	AccessToken() string
}

type Client struct {
	pipe       *httppipe.Client
	endpoints  config.Endpoints
	clientHost string
	tokens     TokenSource
}

func NewClient(pipe *httppipe.Client, endpoints config.Endpoints, clientHost string, tokens TokenSource) *Client {
	return &Client{
		pipe:       pipe,
		endpoints:  endpoints,
		clientHost: clientHost,
		tokens:     tokens,
	}
}

// descriptor builds the standard JSON request shape shared by the
// management endpoints.
func (c *Client) descriptor(method, url string) httppipe.RequestDescriptor {
	header := http.Header{}
	header.Set("Accept", "*/*")
	header.Set("Access-Control-Allow-Origin", c.clientHost)
	header.Set("Content-Type", httppipe.ContentTypeJSON)
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}
	return httppipe.RequestDescriptor{Method: method, URL: url, Header: header}
}

// scimDescriptor is the same shape with the SCIM media type, used for
// user and group writes.
func (c *Client) scimDescriptor(method, url string) httppipe.RequestDescriptor {
	desc := c.descriptor(method, url)
	desc.Header.Set("Content-Type", httppipe.ContentTypeSCIM)
	return desc
}

func expect(status int, message string) *httppipe.StatusPolicy {
	return &httppipe.StatusPolicy{Expected: status, Message: message}
}
