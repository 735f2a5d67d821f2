package domain

import "time"

// Field length bounds for answers.
const (
	AnswerMinLength = 5
	AnswerMaxLength = 100
)

// Answer is a reply to a question. The answering account may differ from the
// question's owner; ownership of the answer itself belongs to the answerer.
type Answer struct {
	ID          int64  `json:"id"`
	QuestionID  int64  `json:"questionId"`
	AccountID   int64  `json:"accountId"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}

// NewAnswer builds an answer from accountID to questionID with a
// server-generated timestamp.
func NewAnswer(accountID, questionID int64, description string) *Answer {
	return &Answer{
		QuestionID:  questionID,
		AccountID:   accountID,
		Description: description,
		CreatedAt:   time.Now().UnixMilli(),
	}
}

// ValidateAnswerFields checks the answer description bounds.
func ValidateAnswerFields(description string) []string {
	return appendBounded(nil, "description", description, AnswerMinLength, AnswerMaxLength)
}
