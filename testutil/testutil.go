// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/granizado-menu/db"
	"github.com/danielhkuo/granizado-menu/models"
)

// SetupTestStore creates a fresh sqlite database under t.TempDir with the
// full schema. Each test gets its own file, so no cleanup between tests is
// needed and nothing external has to be running.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "menu_test.db")
	conn, err := db.Open(models.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, models.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db.NewStore(conn)
}

// CreateTestSection inserts a section and returns its id
func CreateTestSection(t *testing.T, store *db.Store, key string, active bool) int64 {
	t.Helper()

	id, err := store.InsertSection(key, "Test "+key, "🧊", "text-blue-600", active)
	if err != nil {
		t.Fatalf("Failed to create test section: %v", err)
	}
	return id
}

// AddTestSize inserts a size for a section and returns its id
func AddTestSize(t *testing.T, store *db.Store, sectionKey, size, price string) int64 {
	t.Helper()

	id, err := store.InsertSize(sectionKey, size, price)
	if err != nil {
		t.Fatalf("Failed to create test size: %v", err)
	}
	return id
}

// AddTestSubsection inserts a subsection and returns its id
func AddTestSubsection(t *testing.T, store *db.Store, sectionKey, title string, orderIndex int) int64 {
	t.Helper()

	id, err := store.InsertSubsection(sectionKey, title, orderIndex)
	if err != nil {
		t.Fatalf("Failed to create test subsection: %v", err)
	}
	return id
}

// AddTestItem inserts an item owned by a section or a subsection (exactly
// one of sectionKey/subsectionID may be non-nil) and returns its id
func AddTestItem(t *testing.T, store *db.Store, sectionKey *string, subsectionID *int64, name string, active bool, orderIndex int) int64 {
	t.Helper()

	id, err := store.InsertItem(sectionKey, subsectionID, name,
		Str("A test item"), Str("$1.000"), "🍋", "bg-blue-100", nil,
		active, orderIndex)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return id
}

// Str returns a pointer to s, for nullable fixture fields
func Str(s string) *string {
	return &s
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
