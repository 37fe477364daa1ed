package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cic/identity-portal/pkg/models"
)

func TestListClaimDialectsFiltersLocalDialect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.ClaimDialect{
			{ID: models.LocalDialectID, DialectURI: "http://cic.org/claims"},
			{ID: "aHR0cDov", DialectURI: "urn:ietf:params:scim:schemas:core:2.0"},
			{ID: "b2lkYw", DialectURI: "http://cic.org/oidc/claim"},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	dialects, err := client.ListClaimDialects(context.Background())
	require.NoError(t, err)

	require.Len(t, dialects, 2)
	for _, dialect := range dialects {
		assert.NotEqual(t, models.LocalDialectID, dialect.ID)
	}
}

func TestAddClaimDialectSendsURIAndRequires201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body models.ClaimDialect
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "urn:custom:dialect", body.DialectURI)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	require.NoError(t, client.AddClaimDialect(context.Background(), "urn:custom:dialect"))
}

func TestDeleteLocalClaimRequires204(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/server/v1/claim-dialects/local/claims/c1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	err := client.DeleteLocalClaim(context.Background(), "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to delete local claim: c1")
}

func TestListExternalClaims(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/server/v1/claim-dialects/b2lkYw/claims", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.ExternalClaim{
			{ID: "c1", ClaimURI: "email", MappedLocalClaimURI: "http://cic.org/claims/emailaddress"},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	claims, err := client.ListExternalClaims(context.Background(), "b2lkYw")
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "email", claims[0].ClaimURI)
}
