// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollbox/admin"
	"github.com/danielhkuo/pollbox/auth"
	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/middleware"
	"github.com/danielhkuo/pollbox/models"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	// Publication time defaults to now; fixed at creation either way
	publishedAt := time.Now().UTC()
	if req.PublishedAt != nil {
		publishedAt = req.PublishedAt.UTC()
	}

	questionID := uuid.NewString()
	adminKey := auth.GenerateAdminKey(questionID, h.cfg.AdminKeySalt)

	_, err := h.db.Exec(`
		INSERT INTO question (id, text, published_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, questionID, req.Text, publishedAt, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID, "published_at", publishedAt)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: questionID,
		AdminKey:   adminKey,
	})
}

// AddChoice handles POST /questions/:id/choices
func (h *QuestionHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	// Parse request; FlexText coerces numeric labels to text
	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	// Check question exists
	var exists string
	err := h.db.QueryRow("SELECT id FROM question WHERE id = $1", questionID).Scan(&exists)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choiceID := uuid.NewString()

	_, err = h.db.Exec(`
		INSERT INTO choice (id, question_id, text)
		VALUES ($1, $2, $3)
	`, choiceID, questionID, req.Text.String())

	if err != nil {
		slog.Error("failed to insert choice", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", choiceID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: choiceID,
	})
}

// UpdateQuestion handles PATCH /questions/:id
// Only fields registered with the admin package may be changed.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == nil && req.PublishedAt == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no editable fields in request")
		return
	}

	if req.Text != nil && !admin.FieldEditable(models.EntityQuestion, "text") {
		middleware.ErrorResponse(w, http.StatusForbidden, "text is not editable")
		return
	}
	if req.PublishedAt != nil && !admin.FieldEditable(models.EntityQuestion, "published_at") {
		middleware.ErrorResponse(w, http.StatusForbidden, "published_at is not editable")
		return
	}

	question, err := fetchQuestion(h.db, questionID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.PublishedAt != nil {
		question.PublishedAt = req.PublishedAt.UTC()
	}

	_, err = h.db.Exec(`
		UPDATE question
		SET text = $1, published_at = $2
		WHERE id = $3
	`, question.Text, question.PublishedAt, questionID)

	if err != nil {
		slog.Error("failed to update question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	slog.Info("question updated", "question_id", questionID)

	middleware.JSONResponse(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /questions/:id
// Choices are owned by the question and cascade away with it.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	result, err := h.db.Exec("DELETE FROM question WHERE id = $1", questionID)
	if err != nil {
		slog.Error("failed to delete question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	w.WriteHeader(http.StatusNoContent)
}

// GetQuestionAdmin handles GET /questions/:id/admin
// Returns the question regardless of publication state - the admin surface
// is the only place an unpublished question is visible.
func (h *QuestionHandler) GetQuestionAdmin(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	question, err := fetchQuestion(h.db, questionID)
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

	middleware.JSONResponse(w, http.StatusOK, models.AdminQuestionResponse{
		Question:          question,
		Choices:           choices,
		RecentlyPublished: question.WasPublishedRecently(time.Now()),
	})
}
