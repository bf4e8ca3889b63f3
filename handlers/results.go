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

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /polls/:id/results
// Same publication gate as the detail view: an unpublished question is a
// 404, never a hint that it exists.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	results := make([]models.ChoiceResult, 0, len(choices))
	for _, c := range choices {
		results = append(results, models.ChoiceResult{
			ChoiceID: c.ID,
			Text:     c.Text,
			Votes:    c.Votes,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		QuestionID: question.ID,
		Text:       question.Text,
		Choices:    results,
	})
}
