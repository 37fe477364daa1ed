package models

// SCIM resource families (users, groups, Me) use the scim+json content
// type and the ListResponse envelope below.

const (
	SCIMListResponseSchema   = "urn:ietf:params:scim:api:messages:2.0:ListResponse"
	SCIMPatchOpSchema        = "urn:ietf:params:scim:api:messages:2.0:PatchOp"
	SCIMEnterpriseUserSchema = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"
)

type UserList struct {
	Schemas      []string `json:"schemas,omitempty"`
	TotalResults int      `json:"totalResults"`
	StartIndex   int      `json:"startIndex"`
	ItemsPerPage int      `json:"itemsPerPage"`
	Resources    []User   `json:"Resources"`
}

type User struct {
	ID           string       `json:"id,omitempty"`
	UserName     string       `json:"userName"`
	Name         *Name        `json:"name,omitempty"`
	Emails       []MultiValue `json:"emails,omitempty"`
	PhoneNumbers []MultiValue `json:"phoneNumbers,omitempty"`
	ProfileURL   string       `json:"profileUrl,omitempty"`
	UserImage    string       `json:"userImage,omitempty"`
	Roles        []MultiValue `json:"roles,omitempty"`
	Groups       []MemberRef  `json:"groups,omitempty"`
	Active       bool         `json:"active,omitempty"`
	Meta         *Meta        `json:"meta,omitempty"`
}

type Name struct {
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
}

// MultiValue is the SCIM multi-valued attribute shape. Some servers send
// bare strings for emails, so callers should tolerate both.
type MultiValue struct {
	Type    string `json:"type,omitempty"`
	Value   string `json:"value,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

type MemberRef struct {
	Display string `json:"display,omitempty"`
	Value   string `json:"value,omitempty"`
	Ref     string `json:"$ref,omitempty"`
}

type Meta struct {
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Location     string `json:"location,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
}

type GroupList struct {
	Schemas      []string `json:"schemas,omitempty"`
	TotalResults int      `json:"totalResults"`
	StartIndex   int      `json:"startIndex"`
	ItemsPerPage int      `json:"itemsPerPage"`
	Resources    []Group  `json:"Resources"`
}

type Group struct {
	ID          string      `json:"id,omitempty"`
	DisplayName string      `json:"displayName"`
	Members     []MemberRef `json:"members,omitempty"`
	Meta        *Meta       `json:"meta,omitempty"`
}

// PatchOp is the SCIM patch request body.
type PatchOp struct {
	Schemas    []string         `json:"schemas"`
	Operations []PatchOperation `json:"Operations"`
}

type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path,omitempty"`
	Value any    `json:"value,omitempty"`
}

func NewPatchOp(ops ...PatchOperation) PatchOp {
	return PatchOp{
		Schemas:    []string{SCIMPatchOpSchema},
		Operations: ops,
	}
}

type UserStore struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	TypeName   string     `json:"typeName,omitempty"`
	Enabled    bool       `json:"enabled,omitempty"`
	Properties []Property `json:"properties,omitempty"`
}
