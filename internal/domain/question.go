package domain

import "time"

// Field length bounds for questions.
const (
	TitleMinLength       = 5
	TitleMaxLength       = 50
	DescriptionMinLength = 10
	DescriptionMaxLength = 100
)

// Question is a post owned by exactly one account. CreatedAt is stored as
// epoch milliseconds, matching the wire format clients consume.
type Question struct {
	ID          int64  `json:"id"`
	AccountID   int64  `json:"accountId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}

// NewQuestion builds a question owned by accountID with a server-generated
// timestamp. Field validation is a separate step so authorization checks can
// run first.
func NewQuestion(accountID int64, title, description string) *Question {
	return &Question{
		AccountID:   accountID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UnixMilli(),
	}
}

// ValidateQuestionFields checks title and description bounds, accumulating
// every failure in field order.
func ValidateQuestionFields(title, description string) []string {
	var problems []string
	problems = appendBounded(problems, "title", title, TitleMinLength, TitleMaxLength)
	problems = appendBounded(problems, "description", description, DescriptionMinLength, DescriptionMaxLength)
	return problems
}
