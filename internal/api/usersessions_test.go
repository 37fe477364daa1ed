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

func TestListUserSessionsSendsCategorySearch(t *testing.T) {
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		_ = json.NewEncoder(w).Encode(models.UserSessions{
			UserID: "u-1",
			Sessions: []models.UserSession{
				{ID: "s-1", IP: "10.0.0.1", Applications: []models.SessionApplication{{AppName: "Portal"}}},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	sessions, err := client.ListUserSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `category contains "application" | category contains "default"`, gotSearch)
	require.Len(t, sessions.Sessions, 1)
	assert.Equal(t, "s-1", sessions.Sessions[0].ID)
}

func TestListFederatedAssociationsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.ListFederatedAssociations(context.Background())

	var apiErr *httppipe.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to retrieve Federated Associations", apiErr.Message)
}

func TestGetSecurityQuestionsFetchesBoth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/v1/me/challenges":
			_ = json.NewEncoder(w).Encode([]models.ChallengeQuestionSet{
				{QuestionSetID: "set-1", Questions: []models.ChallengeQuestion{{QuestionID: "q1", Question: "First pet?"}}},
			})
		case "/api/users/v1/me/challenge-answers":
			_ = json.NewEncoder(w).Encode([]models.ChallengeAnswer{{QuestionSetID: "set-1"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	result, err := client.GetSecurityQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)
	require.Len(t, result.Answers, 1)
	assert.Equal(t, "set-1", result.Questions[0].QuestionSetID)
}

func TestAddSecurityQuestionAnswersRequires201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	err := client.AddSecurityQuestionAnswers(context.Background(), []models.ChallengeAnswer{
		{QuestionSetID: "set-1", Answer: "rex"},
	})

	var apiErr *httppipe.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to add security questions", apiErr.Message)
}
