package models

import "encoding/json"

// Profile is the flattened view of the SCIM Me resource used by the
// self-service portal. Organisation comes from the enterprise user
// extension.
type Profile struct {
	UserName       string       `json:"userName"`
	Name           Name         `json:"name"`
	Emails         []MultiValue `json:"emails,omitempty"`
	PhoneNumbers   []MultiValue `json:"phoneNumbers,omitempty"`
	Organisation   string       `json:"organisation,omitempty"`
	ProfileURL     string       `json:"profileUrl,omitempty"`
	UserImage      string       `json:"userImage,omitempty"`
	Roles          []MultiValue `json:"roles,omitempty"`
	ResponseStatus int          `json:"responseStatus,omitempty"`
}

// rawProfile mirrors the wire shape of /scim2/Me, where emails can be
// either strings or multi-valued objects.
type rawProfile struct {
	UserName     string            `json:"userName"`
	Name         *Name             `json:"name"`
	Emails       []json.RawMessage `json:"emails"`
	PhoneNumbers []MultiValue      `json:"phoneNumbers"`
	ProfileURL   string            `json:"profileUrl"`
	UserImage    string            `json:"userImage"`
	Roles        []MultiValue      `json:"roles"`
	Enterprise   *enterpriseExt    `json:"urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"`
}

type enterpriseExt struct {
	Organization string `json:"organization"`
}

// DecodeProfile maps a raw Me payload into a Profile, normalising
// string-typed email entries and defaulting absent sub-objects.
func DecodeProfile(data []byte) (Profile, error) {
	var raw rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Profile{}, err
	}

	profile := Profile{
		UserName:     raw.UserName,
		PhoneNumbers: raw.PhoneNumbers,
		ProfileURL:   raw.ProfileURL,
		UserImage:    raw.UserImage,
		Roles:        raw.Roles,
	}
	if raw.Name != nil {
		profile.Name = *raw.Name
	}
	if raw.Enterprise != nil {
		profile.Organisation = raw.Enterprise.Organization
	}
	for _, entry := range raw.Emails {
		var plain string
		if err := json.Unmarshal(entry, &plain); err == nil {
			profile.Emails = append(profile.Emails, MultiValue{Value: plain})
			continue
		}
		var value MultiValue
		if err := json.Unmarshal(entry, &value); err == nil {
			profile.Emails = append(profile.Emails, value)
		}
	}
	return profile, nil
}

// ProfileSchema is one attribute schema entry from the profile schemas
// endpoint (unwrapped from the Resources array).
type ProfileSchema struct {
	Name          string          `json:"name"`
	ClaimValue    string          `json:"claimValue,omitempty"`
	DisplayName   string          `json:"displayName,omitempty"`
	DisplayOrder  string          `json:"displayOrder,omitempty"`
	Type          string          `json:"type,omitempty"`
	Required      bool            `json:"required,omitempty"`
	Mutability    string          `json:"mutability,omitempty"`
	MultiValued   bool            `json:"multiValued,omitempty"`
	SubAttributes []ProfileSchema `json:"subAttributes,omitempty"`
}
