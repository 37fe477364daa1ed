package api

import (
	"context"
	"net/http"
	"net/url"

	"cic/identity-portal/pkg/models"
)

const consentCollectionMethod = "Web Form - User Portal"

// ListConsentedApps fetches the applications the user has consented
// to, in the given state.
func (c *Client) ListConsentedApps(ctx context.Context, state models.ConsentState) ([]models.ConsentedApp, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Consents)
	if state != "" {
		desc.Params = url.Values{"state": []string{string(state)}}
	}
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get the consented applications."))
	if err != nil {
		return nil, err
	}
	var apps []models.ConsentedApp
	if err := env.Decode(&apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) GetConsentReceipt(ctx context.Context, receiptID string) (*models.ConsentReceipt, error) {
	desc := c.descriptor(http.MethodGet, c.endpoints.Receipts+"/"+receiptID)
	env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get the consent receipt."))
	if err != nil {
		return nil, err
	}
	var receipt models.ConsentReceipt
	if err := env.Decode(&receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// RevokeConsent deletes the receipt, revoking every consented claim
// for that application at once.
func (c *Client) RevokeConsent(ctx context.Context, receiptID string) error {
	desc := c.descriptor(http.MethodDelete, c.endpoints.Receipts+"/"+receiptID)
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to revoke the consent."))
	return err
}

// UpdateConsentedClaims replaces the receipt with an edited claim set.
// The server treats this as a fresh consent submission, hence the POST
// and the fixed collection method.
func (c *Client) UpdateConsentedClaims(ctx context.Context, receipt models.ConsentReceipt) error {
	body := models.UpdateReceipt{
		CollectionMethod: consentCollectionMethod,
		Jurisdiction:     receipt.Jurisdiction,
		Language:         receipt.Language,
		PolicyURL:        receipt.PolicyURL,
		Services:         make([]models.ConsentService, 0, len(receipt.Services)),
	}
	for _, service := range receipt.Services {
		purposes := make([]models.ConsentPurpose, 0, len(service.Purposes))
		for _, purpose := range service.Purposes {
			categories := make([]models.PIICategory, 0, len(purpose.PIICategories))
			for _, category := range purpose.PIICategories {
				categories = append(categories, models.PIICategory{
					PIICategoryID: category.PIICategoryID,
					Validity:      category.Validity,
				})
			}
			purposes = append(purposes, models.ConsentPurpose{
				PurposeID:            purpose.PurposeID,
				PurposeCategoryID:    []int{1},
				ConsentType:          purpose.ConsentType,
				PrimaryPurpose:       purpose.PrimaryPurpose,
				Termination:          purpose.Termination,
				ThirdPartyDisclosure: purpose.ThirdPartyDisclosure,
				ThirdPartyName:       purpose.ThirdPartyName,
				PIICategories:        categories,
			})
		}
		body.Services = append(body.Services, models.ConsentService{
			Service:            service.Service,
			ServiceDisplayName: service.ServiceDisplayName,
			ServiceDescription: service.ServiceDescription,
			TenantDomain:       service.TenantDomain,
			Purposes:           purposes,
		})
	}

	desc := c.descriptor(http.MethodPost, c.endpoints.Consents)
	desc.Body = body
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update the consented claims."))
	return err
}
