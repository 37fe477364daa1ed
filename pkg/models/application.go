package models

// ApplicationBasic is the summary view returned by application list and
// detail endpoints.
type ApplicationBasic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	AccessURL   string `json:"accessUrl,omitempty"`
	Self        string `json:"self,omitempty"`
}

type ApplicationList struct {
	TotalResults int                `json:"totalResults"`
	StartIndex   int                `json:"startIndex"`
	Count        int                `json:"count"`
	Applications []ApplicationBasic `json:"applications"`
	Links        []Link             `json:"links,omitempty"`
}

// Application carries the full service-provider configuration.
type Application struct {
	ID                     string                  `json:"id,omitempty"`
	Name                   string                  `json:"name"`
	Description            string                  `json:"description,omitempty"`
	ImageURL               string                  `json:"imageUrl,omitempty"`
	AccessURL              string                  `json:"accessUrl,omitempty"`
	ClaimConfiguration     *ClaimConfiguration     `json:"claimConfiguration,omitempty"`
	InboundProtocols       []InboundProtocolLink   `json:"inboundProtocols,omitempty"`
	AuthenticationSequence *AuthenticationSequence `json:"authenticationSequence,omitempty"`
	AdvancedConfigurations *AdvancedConfigurations `json:"advancedConfigurations,omitempty"`
}

type InboundProtocolLink struct {
	Type string `json:"type"`
	Self string `json:"self"`
}

// InboundProtocolMeta describes one auth protocol the server can speak
// (entry of /applications/meta/inbound-protocols).
type InboundProtocolMeta struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`
	Self        string `json:"self,omitempty"`
}

// OIDCConfiguration is the inbound OIDC protocol configuration of an
// application.
type OIDCConfiguration struct {
	ClientID              string   `json:"clientId,omitempty"`
	ClientSecret          string   `json:"clientSecret,omitempty"`
	State                 string   `json:"state,omitempty"`
	GrantTypes            []string `json:"grantTypes,omitempty"`
	CallbackURLs          []string `json:"callbackURLs,omitempty"`
	AllowedOrigins        []string `json:"allowedOrigins,omitempty"`
	PublicClient          bool     `json:"publicClient,omitempty"`
	PKCE                  *PKCE    `json:"pkce,omitempty"`
	RefreshTokenEnabled   bool     `json:"refreshTokenEnabled,omitempty"`
	RefreshTokenExpirySec int64    `json:"refreshTokenExpiryInSeconds,omitempty"`
}

type PKCE struct {
	Mandatory                      bool `json:"mandatory"`
	SupportPlainTransformAlgorithm bool `json:"supportPlainTransformAlgorithm"`
}

type AuthenticationSequence struct {
	Type           string               `json:"type,omitempty"`
	Steps          []AuthenticationStep `json:"steps,omitempty"`
	RequestPathLen int                  `json:"requestPathAuthenticators,omitempty"`
}

type AuthenticationStep struct {
	ID      int                      `json:"id"`
	Options []AuthenticatorReference `json:"options"`
}

type AuthenticatorReference struct {
	IDP           string `json:"idp"`
	Authenticator string `json:"authenticator"`
}

type AdvancedConfigurations struct {
	Saas                    bool `json:"saas,omitempty"`
	DiscoverableByEndUsers  bool `json:"discoverableByEndUsers,omitempty"`
	SkipLoginConsent        bool `json:"skipLoginConsent,omitempty"`
	SkipLogoutConsent       bool `json:"skipLogoutConsent,omitempty"`
	ReturnAuthenticatedIDPs bool `json:"returnAuthenticatedIdpList,omitempty"`
	EnableAuthorization     bool `json:"enableAuthorization,omitempty"`
}

type ClaimConfiguration struct {
	Dialect         string           `json:"dialect,omitempty"`
	ClaimMappings   []ClaimMapping   `json:"claimMappings,omitempty"`
	RequestedClaims []RequestedClaim `json:"requestedClaims,omitempty"`
}

type ClaimMapping struct {
	ApplicationClaim string   `json:"applicationClaim"`
	LocalClaim       ClaimRef `json:"localClaim"`
}

type RequestedClaim struct {
	Claim     ClaimRef `json:"claim"`
	Mandatory bool     `json:"mandatory"`
}

type ClaimRef struct {
	URI string `json:"uri"`
}

type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}
