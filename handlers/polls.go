// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/middleware"
	"github.com/danielhkuo/pollbox/models"
)

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// Index handles GET /polls
// Lists published questions that have at least one choice, most recently
// published first. When nothing is visible the response carries the
// fallback message instead.
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := fetchQuestionsWithChoices(h.db)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	visible := models.ListPublished(questions, now)

	summaries := make([]models.QuestionSummary, 0, len(visible))
	for _, q := range visible {
		summaries = append(summaries, models.QuestionSummary{
			ID:                q.Question.ID,
			Text:              q.Question.Text,
			PublishedAt:       q.Question.PublishedAt,
			RecentlyPublished: q.Question.WasPublishedRecently(now),
			ChoiceCount:       len(q.Choices),
		})
	}

	response := models.IndexResponse{Questions: summaries}
	if len(summaries) == 0 {
		response.Message = models.NoPollsMessage
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// GetDetail handles GET /polls/:id
// An unpublished question is indistinguishable from an absent one: both
// return 404 with the same message.
func (h *PollHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	question, err := fetchPublishedQuestion(h.db, questionID, time.Now())
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := fetchChoices(h.db, questionID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: question,
		Choices:  choices,
	})
}

// fetchQuestion loads a single question row by id.
func fetchQuestion(db *sql.DB, questionID string) (models.Question, error) {
	var q models.Question
	err := db.QueryRow(`
		SELECT id, text, published_at, created_at
		FROM question
		WHERE id = $1
	`, questionID).Scan(&q.ID, &q.Text, &q.PublishedAt, &q.CreatedAt)
	return q, err
}

// fetchPublishedQuestion loads a question and applies the publication gate.
// An unpublished question is reported as sql.ErrNoRows so callers cannot
// tell it apart from a missing row.
func fetchPublishedQuestion(db *sql.DB, questionID string, now time.Time) (models.Question, error) {
	q, err := fetchQuestion(db, questionID)
	if err != nil {
		return models.Question{}, err
	}
	if !q.IsPublished(now) {
		return models.Question{}, sql.ErrNoRows
	}
	return q, nil
}

// fetchChoices loads a question's choices in insertion-stable id order.
func fetchChoices(db *sql.DB, questionID string) ([]models.Choice, error) {
	rows, err := db.Query(`
		SELECT id, question_id, text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}
	return choices, rows.Err()
}

// fetchQuestionsWithChoices loads every question with its choices, in
// insertion order (creation time, then id). ListPublished relies on this
// ordering for its tie-break.
func fetchQuestionsWithChoices(db *sql.DB) ([]models.QuestionWithChoices, error) {
	rows, err := db.Query(`
		SELECT id, text, published_at, created_at
		FROM question
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.QuestionWithChoices{}
	index := map[string]int{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.PublishedAt, &q.CreatedAt); err != nil {
			return nil, err
		}
		index[q.ID] = len(questions)
		questions = append(questions, models.QuestionWithChoices{Question: q, Choices: []models.Choice{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	choiceRows, err := db.Query(`
		SELECT id, question_id, text, votes
		FROM choice
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer choiceRows.Close()

	for choiceRows.Next() {
		var c models.Choice
		if err := choiceRows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, err
		}
		if i, ok := index[c.QuestionID]; ok {
			questions[i].Choices = append(questions[i].Choices, c)
		}
	}
	return questions, choiceRows.Err()
}
