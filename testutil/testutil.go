// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive for the whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3414,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// CreateTestQuestion creates a question published the given number of days
// offset from now (negative for the past, positive for questions that have
// yet to be published) and returns its ID.
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days int) string {
	t.Helper()

	questionID := uuid.NewString()
	publishedAt := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)

	_, err := conn.Exec(`
		INSERT INTO question (id, text, published_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, questionID, text, publishedAt, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID
}

// AddTestChoice adds a choice to a question and returns the choice ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID, text string) string {
	t.Helper()

	choiceID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO choice (id, question_id, text)
		VALUES ($1, $2, $3)
	`, choiceID, questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return choiceID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
