package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entity names known to the admin registration layer
const (
	EntityQuestion = "question"
	EntityChoice   = "choice"
)

// Request types

type CreateQuestionRequest struct {
	Text string `json:"text"`
	// Optional; defaults to the time of creation when omitted
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type AddChoiceRequest struct {
	Text FlexText `json:"text"`
}

type UpdateQuestionRequest struct {
	Text        *string    `json:"text,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string `json:"question_id"`
	AdminKey   string `json:"admin_key"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

type IndexResponse struct {
	Questions []QuestionSummary `json:"questions"`
	Message   string            `json:"message,omitempty"`
}

type VoteResponse struct {
	ChoiceID string `json:"choice_id"`
	Votes    int    `json:"votes"`
}

type ResultsResponse struct {
	QuestionID string         `json:"question_id"`
	Text       string         `json:"text"`
	Choices    []ChoiceResult `json:"choices"`
}

type ChoiceResult struct {
	ChoiceID string `json:"choice_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
}

// Domain types

type Question struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// QuestionSummary is the index page projection of a question.
type QuestionSummary struct {
	ID                string    `json:"id"`
	Text              string    `json:"text"`
	PublishedAt       time.Time `json:"published_at"`
	RecentlyPublished bool      `json:"recently_published"`
	ChoiceCount       int       `json:"choice_count"`
}

// AdminQuestionResponse is the admin view of a question: unpublished
// questions are visible here, unlike on the public surface.
type AdminQuestionResponse struct {
	Question          Question `json:"question"`
	Choices           []Choice `json:"choices"`
	RecentlyPublished bool     `json:"recently_published"`
}

// NoPollsMessage is the index fallback when nothing is visible.
const NoPollsMessage = "No polls are available."

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FlexText is a string that also accepts JSON numbers and booleans,
// coercing them to their textual form. Whatever a client sends as a
// choice label, the stored value is text.
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = FlexText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = FlexText(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = FlexText(fmt.Sprintf("%t", b))
		return nil
	}

	return fmt.Errorf("text must be a string, number, or boolean")
}

func (t FlexText) String() string {
	return string(t)
}
