// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollbox API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - QuestionHandler: administrative lifecycle (create, choices, edit, delete)
  - PollHandler: public index and detail views
  - ResultsHandler: public vote tallies
  - VotingHandler: vote submission

Handlers are created via constructor functions that accept *sql.DB and Config:

	questionHandler := handlers.NewQuestionHandler(db, cfg)

# Administrative Surface

	POST   /questions               → CreateQuestion (returns admin_key)
	POST   /questions/{id}/choices  → AddChoice
	PATCH  /questions/{id}          → UpdateQuestion (registered fields only)
	DELETE /questions/{id}          → DeleteQuestion (choices cascade)
	GET    /questions/{id}/admin    → GetQuestionAdmin

Admin operations require the X-Admin-Key header. The admin view is the
only surface where an unpublished question is visible.

# Public Surface

	GET  /polls              → Index
	GET  /polls/{id}         → GetDetail
	GET  /polls/{id}/results → GetResults
	POST /polls/{id}/vote    → Vote

The index lists published questions with at least one choice, most
recently published first, and answers "No polls are available." when the
list is empty. Detail, results, and vote apply the same gate: a question
whose publication timestamp is still in the future responds 404 exactly
as if the id did not exist.
*/
package handlers
