// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/testutil"
)

func indexTexts(resp models.IndexResponse) []string {
	texts := make([]string, 0, len(resp.Questions))
	for _, q := range resp.Questions {
		texts = append(texts, q.Text)
	}
	return texts
}

func getIndex(t *testing.T, handler *PollHandler) models.IndexResponse {
	t.Helper()

	req := testutil.MakeRequest("GET", "/polls", nil, nil)
	w := httptest.NewRecorder()

	handler.Index(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.IndexResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func TestIndex_NoQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	resp := getIndex(t, handler)

	if len(resp.Questions) != 0 {
		t.Errorf("Expected empty listing, got %v", indexTexts(resp))
	}
	if resp.Message != "No polls are available." {
		t.Errorf("Expected fallback message, got %q", resp.Message)
	}
}

func TestIndex_PastQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	questionID := testutil.CreateTestQuestion(t, db, "Past question.", -30)
	testutil.AddTestChoice(t, db, questionID, "Choice 1.")

	resp := getIndex(t, handler)

	got := indexTexts(resp)
	if len(got) != 1 || got[0] != "Past question." {
		t.Errorf("Expected [Past question.], got %v", got)
	}
	if resp.Message != "" {
		t.Errorf("Expected no fallback message, got %q", resp.Message)
	}
}

func TestIndex_FutureQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	questionID := testutil.CreateTestQuestion(t, db, "Future question.", 30)
	testutil.AddTestChoice(t, db, questionID, "Choice 1.")

	resp := getIndex(t, handler)

	if len(resp.Questions) != 0 {
		t.Errorf("Future question must not be listed, got %v", indexTexts(resp))
	}
	if resp.Message != "No polls are available." {
		t.Errorf("Expected fallback message, got %q", resp.Message)
	}
}

func TestIndex_FutureAndPastQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	pastID := testutil.CreateTestQuestion(t, db, "Past question.", -30)
	futureID := testutil.CreateTestQuestion(t, db, "Future question.", 30)
	testutil.AddTestChoice(t, db, pastID, "Past choice 1.")
	testutil.AddTestChoice(t, db, futureID, "Future choice 1.")

	resp := getIndex(t, handler)

	got := indexTexts(resp)
	if len(got) != 1 || got[0] != "Past question." {
		t.Errorf("Expected only the past question, got %v", got)
	}
}

func TestIndex_TwoPastQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	firstID := testutil.CreateTestQuestion(t, db, "Past question 1.", -30)
	secondID := testutil.CreateTestQuestion(t, db, "Past question 2.", -5)
	testutil.AddTestChoice(t, db, firstID, "Choice 1.")
	testutil.AddTestChoice(t, db, secondID, "Choice 1.")

	resp := getIndex(t, handler)

	// Most recently published first
	got := indexTexts(resp)
	if len(got) != 2 || got[0] != "Past question 2." || got[1] != "Past question 1." {
		t.Errorf("Expected [Past question 2. Past question 1.], got %v", got)
	}
}

func TestIndex_QuestionWithoutChoices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	testutil.CreateTestQuestion(t, db, "Past question with no choices.", -5)

	resp := getIndex(t, handler)

	if len(resp.Questions) != 0 {
		t.Errorf("Question without choices must not be listed, got %v", indexTexts(resp))
	}
	if resp.Message != "No polls are available." {
		t.Errorf("Expected fallback message, got %q", resp.Message)
	}
}

func TestIndex_QuestionWithChoices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	questionID := testutil.CreateTestQuestion(t, db, "Past question with choices.", -5)
	testutil.AddTestChoice(t, db, questionID, "Choice 1.")
	testutil.AddTestChoice(t, db, questionID, "Choice 2.")

	resp := getIndex(t, handler)

	if len(resp.Questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(resp.Questions))
	}
	if resp.Questions[0].ChoiceCount != 2 {
		t.Errorf("Expected choice_count 2, got %d", resp.Questions[0].ChoiceCount)
	}
}

func TestIndex_RecentlyPublishedFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	// Published 30 days ago: visible but well outside the 24h window
	oldID := testutil.CreateTestQuestion(t, db, "Old question.", -30)
	testutil.AddTestChoice(t, db, oldID, "Choice 1.")

	resp := getIndex(t, handler)

	if len(resp.Questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(resp.Questions))
	}
	if resp.Questions[0].RecentlyPublished {
		t.Error("A 30-day-old question is not recently published")
	}
}

func TestGetDetail_FutureQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	questionID := testutil.CreateTestQuestion(t, db, "Future question.", 5)
	testutil.AddTestChoice(t, db, questionID, "Choice 1.")

	req := testutil.MakeRequest("GET", "/polls/"+questionID, nil, nil)
	req.SetPathValue("id", questionID)
	w := httptest.NewRecorder()

	handler.GetDetail(w, req)

	// Unpublished looks exactly like absent
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetDetail_PastQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	questionID := testutil.CreateTestQuestion(t, db, "Past question.", -5)
	testutil.AddTestChoice(t, db, questionID, "Choice 1.")

	req := testutil.MakeRequest("GET", "/polls/"+questionID, nil, nil)
	req.SetPathValue("id", questionID)
	w := httptest.NewRecorder()

	handler.GetDetail(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if !strings.Contains(w.Body.String(), "Past question.") {
		t.Errorf("Expected response to contain the question text, got %s", w.Body.String())
	}

	var resp models.QuestionWithChoices
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Choices) != 1 || resp.Choices[0].Text != "Choice 1." {
		t.Errorf("Expected the question's choice, got %+v", resp.Choices)
	}
}

func TestGetDetail_UnknownQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/polls/missing-id", nil, nil)
	req.SetPathValue("id", "missing-id")
	w := httptest.NewRecorder()

	handler.GetDetail(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetDetail_SameErrorForAbsentAndUnpublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(db, testutil.GetTestConfig())

	futureID := testutil.CreateTestQuestion(t, db, "Future question.", 5)
	testutil.AddTestChoice(t, db, futureID, "Choice 1.")

	fetch := func(id string) string {
		req := testutil.MakeRequest("GET", "/polls/"+id, nil, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.GetDetail(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
		return w.Body.String()
	}

	// The two failure modes must be indistinguishable to the caller
	if fetch(futureID) != fetch("missing-id") {
		t.Error("Unpublished and absent questions must produce identical responses")
	}
}
