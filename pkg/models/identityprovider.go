package models

type IdentityProviderBasic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsEnabled   bool   `json:"isEnabled"`
	Image       string `json:"image,omitempty"`
	Self        string `json:"self,omitempty"`
}

type IdentityProviderList struct {
	TotalResults      int                     `json:"totalResults"`
	StartIndex        int                     `json:"startIndex"`
	Count             int                     `json:"count"`
	IdentityProviders []IdentityProviderBasic `json:"identityProviders"`
	Links             []Link                  `json:"links,omitempty"`
}

type IdentityProvider struct {
	ID                      string                      `json:"id,omitempty"`
	Name                    string                      `json:"name"`
	Description             string                      `json:"description,omitempty"`
	IsEnabled               bool                        `json:"isEnabled"`
	IsPrimary               bool                        `json:"isPrimary,omitempty"`
	Image                   string                      `json:"image,omitempty"`
	Alias                   string                      `json:"alias,omitempty"`
	HomeRealmIdentifier     string                      `json:"homeRealmIdentifier,omitempty"`
	Certificate             *IdentityProviderCert       `json:"certificate,omitempty"`
	FederatedAuthenticators *FederatedAuthenticatorList `json:"federatedAuthenticators,omitempty"`
}

type IdentityProviderCert struct {
	Certificates []string `json:"certificates,omitempty"`
	JWKSURI      string   `json:"jwksUri,omitempty"`
}

type FederatedAuthenticatorList struct {
	DefaultAuthenticatorID string                   `json:"defaultAuthenticatorId,omitempty"`
	Authenticators         []FederatedAuthenticator `json:"authenticators,omitempty"`
}

type FederatedAuthenticator struct {
	AuthenticatorID string     `json:"authenticatorId"`
	Name            string     `json:"name,omitempty"`
	IsEnabled       bool       `json:"isEnabled,omitempty"`
	Properties      []Property `json:"properties,omitempty"`
}
