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

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// Vote handles POST /polls/:id/vote
// Increments the vote tally of one of the question's choices. Voting on an
// unpublished question is a 404, same as the detail view.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_id is required")
		return
	}

	_, err := fetchPublishedQuestion(h.db, questionID, time.Now())
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Single UPDATE keeps the increment atomic
	result, err := h.db.Exec(`
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, req.ChoiceID, questionID)

	if err != nil {
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice does not belong to this question")
		return
	}

	var votes int
	err = h.db.QueryRow("SELECT votes FROM choice WHERE id = $1", req.ChoiceID).Scan(&votes)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote recorded", "question_id", questionID, "choice_id", req.ChoiceID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		ChoiceID: req.ChoiceID,
		Votes:    votes,
	})
}
