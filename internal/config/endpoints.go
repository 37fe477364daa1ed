package config

// Endpoints is the resolved resource map of the identity server, the
// equivalent of the portals' service-resources table. All values are
// absolute URLs rooted at the server host.
type Endpoints struct {
	Applications          string
	IdentityProviders     string
	Claims                string
	Users                 string
	Groups                string
	UserStores            string
	Me                    string
	User                  string
	ProfileSchemas        string
	Consents              string
	Receipts              string
	Sessions              string
	FederatedAssociations string
	Challenges            string
	ChallengeAnswers      string
	WellKnown             string
}

func ResolveEndpoints(cfg Config) Endpoints {
	host := cfg.NormalizedServerHost()
	return Endpoints{
		Applications:          host + "/api/server/v1/applications",
		IdentityProviders:     host + "/api/server/v1/identity-providers",
		Claims:                host + "/api/server/v1/claim-dialects",
		Users:                 host + "/scim2/Users",
		Groups:                host + "/scim2/Groups",
		UserStores:            host + "/api/server/v1/userstores",
		Me:                    host + "/scim2/Me",
		User:                  host + "/api/identity/user/v1.0/me",
		ProfileSchemas:        host + "/scim2/Schemas",
		Consents:              host + "/api/identity/consent-mgt/v1.0/consents",
		Receipts:              host + "/api/identity/consent-mgt/v1.0/consents/receipts",
		Sessions:              host + "/api/users/v1/me/sessions",
		FederatedAssociations: host + "/api/users/v1/me/federated-associations",
		Challenges:            host + "/api/users/v1/me/challenges",
		ChallengeAnswers:      host + "/api/users/v1/me/challenge-answers",
		WellKnown:             host + "/oauth2/token/.well-known/openid-configuration",
	}
}
