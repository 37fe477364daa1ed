package models

type UserSessions struct {
	UserID   string        `json:"userId,omitempty"`
	Sessions []UserSession `json:"sessions"`
}

type UserSession struct {
	ID             string               `json:"id"`
	IP             string               `json:"ip,omitempty"`
	UserAgent      string               `json:"userAgent,omitempty"`
	LoginTime      string               `json:"loginTime,omitempty"`
	LastAccessTime string               `json:"lastAccessTime,omitempty"`
	Applications   []SessionApplication `json:"applications,omitempty"`
}

type SessionApplication struct {
	ID      string `json:"id,omitempty"`
	Subject string `json:"subject,omitempty"`
	AppName string `json:"appName"`
	AppID   string `json:"appId,omitempty"`
}

// FederatedAssociation links the local account to an account on an
// external identity provider.
type FederatedAssociation struct {
	ID              string                  `json:"id"`
	IdP             FederatedAssociationIdP `json:"idp"`
	FederatedUserID string                  `json:"federatedUserId"`
}

type FederatedAssociationIdP struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
