package models

type ConsentState string

const (
	ConsentStateActive  ConsentState = "ACTIVE"
	ConsentStateRevoked ConsentState = "REVOKED"
)

// ConsentedApp is one entry in the consented-application list of the
// current user.
type ConsentedApp struct {
	ConsentReceiptID string       `json:"consentReceiptID"`
	AppDisplayName   string       `json:"spDisplayName"`
	AppDescription   string       `json:"spDescription"`
	State            ConsentState `json:"state"`
	Language         string       `json:"language,omitempty"`
}

// ConsentReceipt is the full receipt for one consented application.
type ConsentReceipt struct {
	ConsentReceiptID string           `json:"consentReceiptID,omitempty"`
	Version          string           `json:"version,omitempty"`
	Jurisdiction     string           `json:"jurisdiction,omitempty"`
	Language         string           `json:"language,omitempty"`
	PolicyURL        string           `json:"policyUrl,omitempty"`
	CollectionMethod string           `json:"collectionMethod,omitempty"`
	Services         []ConsentService `json:"services"`
}

type ConsentService struct {
	Service            string           `json:"service"`
	ServiceDisplayName string           `json:"serviceDisplayName,omitempty"`
	ServiceDescription string           `json:"serviceDescription,omitempty"`
	TenantDomain       string           `json:"tenantDomain,omitempty"`
	Purposes           []ConsentPurpose `json:"purposes"`
}

type ConsentPurpose struct {
	PurposeID            int           `json:"purposeId"`
	Purpose              string        `json:"purpose,omitempty"`
	PurposeCategoryID    []int         `json:"purposeCategoryId,omitempty"`
	ConsentType          string        `json:"consentType,omitempty"`
	PrimaryPurpose       bool          `json:"primaryPurpose,omitempty"`
	Termination          string        `json:"termination,omitempty"`
	ThirdPartyDisclosure bool          `json:"thirdPartyDisclosure,omitempty"`
	ThirdPartyName       string        `json:"thirdPartyName,omitempty"`
	PIICategories        []PIICategory `json:"piiCategory"`
}

type PIICategory struct {
	PIICategoryID          int    `json:"piiCategoryId"`
	PIICategoryName        string `json:"piiCategoryName,omitempty"`
	PIICategoryDisplayName string `json:"piiCategoryDisplayName,omitempty"`
	Validity               string `json:"validity,omitempty"`
}

// UpdateReceipt is the POST body used when the user edits the claims a
// consented application may read. The server replaces the receipt, so
// the whole service/purpose tree is sent back.
type UpdateReceipt struct {
	CollectionMethod string           `json:"collectionMethod"`
	Jurisdiction     string           `json:"jurisdiction,omitempty"`
	Language         string           `json:"language,omitempty"`
	PolicyURL        string           `json:"policyURL,omitempty"`
	Services         []ConsentService `json:"services"`
}
