package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cic/identity-portal/internal/httppipe"
	"cic/identity-portal/pkg/models"
)

func TestListUsersSendsSCIMPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "10", query.Get("count"))
		assert.Equal(t, "11", query.Get("startIndex"))
		assert.Equal(t, `userName sw "ali"`, query.Get("filter"))
		assert.Equal(t, "userName,emails", query.Get("attributes"))
		_ = json.NewEncoder(w).Encode(models.UserList{
			TotalResults: 42,
			Resources:    []models.User{{ID: "u1", UserName: "alice"}},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	list, err := client.ListUsers(context.Background(), 10, 11, `userName sw "ali"`, "userName,emails")
	require.NoError(t, err)
	assert.Equal(t, 42, list.TotalResults)
	require.Len(t, list.Resources, 1)
	assert.Equal(t, "alice", list.Resources[0].UserName)
}

func TestAddUserUsesSCIMContentTypeAndRequires201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, httppipe.ContentTypeSCIM, r.Header.Get("Content-Type"))
		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "bob", user.UserName)

		user.ID = "u2"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(user)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	created, err := client.AddUser(context.Background(), models.User{UserName: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "u2", created.ID)
}

func TestCreateGroupRequires201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Group{ID: "g1", DisplayName: "admins"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.CreateGroup(context.Background(), models.Group{DisplayName: "admins"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to create the group.")
}

func TestPatchGroupSendsPatchOpEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/scim2/Groups/g1", r.URL.Path)

		var patch models.PatchOp
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, []string{models.SCIMPatchOpSchema}, patch.Schemas)
		require.Len(t, patch.Operations, 1)
		assert.Equal(t, "add", patch.Operations[0].Op)
		assert.Equal(t, "members", patch.Operations[0].Path)

		_ = json.NewEncoder(w).Encode(models.Group{
			ID:          "g1",
			DisplayName: "admins",
			Members:     []models.MemberRef{{Value: "u1", Display: "alice"}},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	patch := models.NewPatchOp(models.PatchOperation{
		Op:    "add",
		Path:  "members",
		Value: []models.MemberRef{{Value: "u1", Display: "alice"}},
	})
	group, err := client.PatchGroup(context.Background(), "g1", patch)
	require.NoError(t, err)
	require.Len(t, group.Members, 1)
	assert.Equal(t, "alice", group.Members[0].Display)
}
