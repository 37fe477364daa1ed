package api

import (
	"context"
	"net/http"
	"sync"

	"cic/identity-portal/pkg/models"
)

// SecurityQuestions pairs the available question sets with the user's
// recorded answers.
type SecurityQuestions struct {
	Questions []models.ChallengeQuestionSet
	Answers   []models.ChallengeAnswer
}

// GetSecurityQuestions fetches questions and answers concurrently; the
// portal always renders them together.
func (c *Client) GetSecurityQuestions(ctx context.Context) (*SecurityQuestions, error) {
	var (
		wg           sync.WaitGroup
		questions    []models.ChallengeQuestionSet
		answers      []models.ChallengeAnswer
		questionsErr error
		answersErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		desc := c.descriptor(http.MethodGet, c.endpoints.Challenges)
		env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get security questions and answers"))
		if err != nil {
			questionsErr = err
			return
		}
		questionsErr = env.Decode(&questions)
	}()
	go func() {
		defer wg.Done()
		desc := c.descriptor(http.MethodGet, c.endpoints.ChallengeAnswers)
		env, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to get security questions and answers"))
		if err != nil {
			answersErr = err
			return
		}
		answersErr = env.Decode(&answers)
	}()
	wg.Wait()

	if questionsErr != nil {
		return nil, questionsErr
	}
	if answersErr != nil {
		return nil, answersErr
	}
	return &SecurityQuestions{Questions: questions, Answers: answers}, nil
}

func (c *Client) AddSecurityQuestionAnswers(ctx context.Context, answers []models.ChallengeAnswer) error {
	desc := c.descriptor(http.MethodPost, c.endpoints.ChallengeAnswers)
	desc.Body = answers
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusCreated, "Failed to add security questions"))
	return err
}

func (c *Client) UpdateSecurityQuestionAnswers(ctx context.Context, answers []models.ChallengeAnswer) error {
	desc := c.descriptor(http.MethodPut, c.endpoints.ChallengeAnswers)
	desc.Body = answers
	_, err := c.pipe.Do(ctx, desc, expect(http.StatusOK, "Failed to update security questions."))
	return err
}
