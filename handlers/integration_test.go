// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/testutil"
)

// TestFullLifecycle walks a question through its whole life: creation,
// choices, public visibility, voting, results, editing, deletion.
func TestFullLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	questionHandler := NewQuestionHandler(db, cfg)
	pollHandler := NewPollHandler(db, cfg)
	resultsHandler := NewResultsHandler(db, cfg)
	votingHandler := NewVotingHandler(db, cfg)

	// Step 1: Create a question published an hour ago
	publishedAt := time.Now().UTC().Add(-time.Hour)
	req := testutil.MakeRequest("POST", "/questions", models.CreateQuestionRequest{
		Text:        "What's for dinner?",
		PublishedAt: &publishedAt,
	}, nil)
	w := httptest.NewRecorder()
	questionHandler.CreateQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &created)
	questionID := created.QuestionID
	adminKey := created.AdminKey

	// Step 2: Add two choices, one with a numeric label
	var choiceIDs []string
	for _, label := range []interface{}{"Pizza", 333} {
		req = testutil.MakeRequest("POST", "/questions/"+questionID+"/choices",
			map[string]interface{}{"text": label},
			map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", questionID)
		w = httptest.NewRecorder()
		questionHandler.AddChoice(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var choice models.AddChoiceResponse
		testutil.AssertJSON(t, w, &choice)
		choiceIDs = append(choiceIDs, choice.ChoiceID)
	}

	// Step 3: The question is recently published and visible on the index
	req = testutil.MakeRequest("GET", "/polls", nil, nil)
	w = httptest.NewRecorder()
	pollHandler.Index(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var index models.IndexResponse
	testutil.AssertJSON(t, w, &index)
	if len(index.Questions) != 1 {
		t.Fatalf("Expected 1 visible question, got %d", len(index.Questions))
	}
	if !index.Questions[0].RecentlyPublished {
		t.Error("A question published an hour ago is recently published")
	}
	if index.Questions[0].ChoiceCount != 2 {
		t.Errorf("Expected choice_count 2, got %d", index.Questions[0].ChoiceCount)
	}

	// Step 4: Vote twice for the first choice, once for the second
	for _, choiceID := range []string{choiceIDs[0], choiceIDs[0], choiceIDs[1]} {
		req = testutil.MakeRequest("POST", "/polls/"+questionID+"/vote",
			models.VoteRequest{ChoiceID: choiceID}, nil)
		req.SetPathValue("id", questionID)
		w = httptest.NewRecorder()
		votingHandler.Vote(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	// Step 5: Results reflect the tallies, numeric label stored as text
	req = testutil.MakeRequest("GET", "/polls/"+questionID+"/results", nil, nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if len(results.Choices) != 2 {
		t.Fatalf("Expected 2 choices, got %d", len(results.Choices))
	}
	tallies := map[string]int{}
	labels := map[string]string{}
	for _, c := range results.Choices {
		tallies[c.ChoiceID] = c.Votes
		labels[c.ChoiceID] = c.Text
	}
	if tallies[choiceIDs[0]] != 2 || tallies[choiceIDs[1]] != 1 {
		t.Errorf("Expected tallies 2 and 1, got %v", tallies)
	}
	if labels[choiceIDs[1]] != "333" {
		t.Errorf("Expected numeric label stored as \"333\", got %q", labels[choiceIDs[1]])
	}

	// Step 6: Admin edits the question text
	newText := "What should we cook?"
	req = testutil.MakeRequest("PATCH", "/questions/"+questionID,
		models.UpdateQuestionRequest{Text: &newText},
		map[string]string{"X-Admin-Key": adminKey})
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	questionHandler.UpdateQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 7: Delete; the index is empty again with the fallback message
	req = testutil.MakeRequest("DELETE", "/questions/"+questionID, nil,
		map[string]string{"X-Admin-Key": adminKey})
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	questionHandler.DeleteQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = testutil.MakeRequest("GET", "/polls", nil, nil)
	w = httptest.NewRecorder()
	pollHandler.Index(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &index)
	if len(index.Questions) != 0 {
		t.Errorf("Expected empty index after delete, got %d questions", len(index.Questions))
	}
	if index.Message != "No polls are available." {
		t.Errorf("Expected fallback message, got %q", index.Message)
	}
}
