package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/askloop/askloop-api/internal/domain"
)

func TestValidateQuestionFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		problems    []string
	}{
		{
			name:        "valid fields",
			title:       "How do I?",
			description: "A question of adequate length.",
			problems:    nil,
		},
		{
			name:        "title at minimum length",
			title:       strings.Repeat("t", 5),
			description: strings.Repeat("d", 10),
			problems:    nil,
		},
		{
			name:        "title one below minimum",
			title:       strings.Repeat("t", 4),
			description: strings.Repeat("d", 10),
			problems:    []string{"title is too short"},
		},
		{
			name:        "title one above maximum",
			title:       strings.Repeat("t", 51),
			description: strings.Repeat("d", 10),
			problems:    []string{"title is too long"},
		},
		{
			name:        "description at minimum length",
			title:       strings.Repeat("t", 5),
			description: strings.Repeat("d", 10),
			problems:    nil,
		},
		{
			name:        "description one below minimum",
			title:       strings.Repeat("t", 5),
			description: strings.Repeat("d", 9),
			problems:    []string{"description is too short"},
		},
		{
			name:        "description one above maximum",
			title:       strings.Repeat("t", 5),
			description: strings.Repeat("d", 101),
			problems:    []string{"description is too long"},
		},
		{
			name:        "multibyte description counted in characters",
			title:       strings.Repeat("t", 5),
			description: strings.Repeat("問", 40),
			problems:    nil,
		},
		{
			name:        "multibyte description above maximum",
			title:       strings.Repeat("t", 5),
			description: strings.Repeat("問", 101),
			problems:    []string{"description is too long"},
		},
		{
			name:        "both missing reported in field order",
			title:       "",
			description: "",
			problems:    []string{"title is required", "description is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.problems, domain.ValidateQuestionFields(tt.title, tt.description))
		})
	}
}

func TestNewQuestion(t *testing.T) {
	t.Parallel()

	before := time.Now().UnixMilli()
	q := domain.NewQuestion(42, "A fine title", "A fine description")
	after := time.Now().UnixMilli()

	assert.Equal(t, int64(42), q.AccountID)
	assert.Equal(t, "A fine title", q.Title)
	assert.Equal(t, "A fine description", q.Description)
	assert.GreaterOrEqual(t, q.CreatedAt, before)
	assert.LessOrEqual(t, q.CreatedAt, after)
}
