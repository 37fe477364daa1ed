package models

// LocalDialectID identifies the built-in local attribute dialect. List
// views hide it because local claims have their own management surface.
const LocalDialectID = "local"

type ClaimDialect struct {
	ID         string `json:"id"`
	DialectURI string `json:"dialectURI"`
	Link       *Link  `json:"link,omitempty"`
}

// LocalClaim is an attribute in the local dialect with its user-store
// mappings.
type LocalClaim struct {
	ID                 string             `json:"id"`
	ClaimURI           string             `json:"claimURI"`
	DisplayName        string             `json:"displayName,omitempty"`
	Description        string             `json:"description,omitempty"`
	DisplayOrder       int                `json:"displayOrder,omitempty"`
	Regex              string             `json:"regEx,omitempty"`
	ReadOnly           bool               `json:"readOnly,omitempty"`
	Required           bool               `json:"required,omitempty"`
	SupportedByDefault bool               `json:"supportedByDefault,omitempty"`
	AttributeMapping   []AttributeMapping `json:"attributeMapping,omitempty"`
	Properties         []Property         `json:"properties,omitempty"`
}

type AttributeMapping struct {
	MappedAttribute string `json:"mappedAttribute"`
	UserStore       string `json:"userstore"`
}

// ExternalClaim maps an external-dialect attribute onto a local claim.
type ExternalClaim struct {
	ID                  string `json:"id"`
	ClaimURI            string `json:"claimURI"`
	ClaimDialectURI     string `json:"claimDialectURI,omitempty"`
	MappedLocalClaimURI string `json:"mappedLocalClaimURI"`
}

type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
