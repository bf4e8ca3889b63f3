// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/handlers"
	"github.com/danielhkuo/pollbox/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question management (admin operations)
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("POST /questions/{id}/choices", middleware.WithLogging(questionHandler.AddChoice))
	mux.HandleFunc("PATCH /questions/{id}", middleware.WithLogging(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))
	mux.HandleFunc("GET /questions/{id}/admin", middleware.WithLogging(questionHandler.GetQuestionAdmin))

	// Public poll surface
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetDetail))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(votingHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbox API v1"))
	})

	return mux
}
