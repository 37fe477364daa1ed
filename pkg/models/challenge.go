package models

// ChallengeQuestionSet is one configured security-question set offered
// by the server.
type ChallengeQuestionSet struct {
	QuestionSetID string              `json:"questionSetId"`
	Questions     []ChallengeQuestion `json:"questions"`
}

type ChallengeQuestion struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Locale     string `json:"locale,omitempty"`
}

// ChallengeAnswer is the user's answer to one question set. The answer
// value is hashed server-side; reads return only the set reference.
type ChallengeAnswer struct {
	QuestionSetID     string             `json:"questionSetId"`
	ChallengeQuestion *ChallengeQuestion `json:"challengeQuestion,omitempty"`
	Answer            string             `json:"answer,omitempty"`
}
