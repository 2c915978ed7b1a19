// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/granizado-menu/models"
	"github.com/danielhkuo/granizado-menu/testutil"
)

func TestGetMenu(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.CreateTestSection(t, store, "sinLicor", true)
	testutil.AddTestSize(t, store, "sinLicor", "8 Onz", "$8.000")
	testutil.AddTestItem(t, store, testutil.Str("sinLicor"), nil, "Mora Azul", true, 0)
	testutil.CreateTestSection(t, store, "cervezas", false)

	handler := NewMenuHandler(store)

	req := testutil.MakeRequest("GET", "/api/menu", nil, nil)
	w := httptest.NewRecorder()

	handler.GetMenu(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var doc models.Menu
	testutil.AssertJSON(t, w, &doc)

	if len(doc) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(doc))
	}
	sec := doc["sinLicor"]
	if sec == nil {
		t.Fatal("Expected sinLicor section")
	}
	if len(sec.Sizes) != 1 || len(sec.Items) != 1 {
		t.Errorf("Expected attached children, got %+v", sec)
	}

	// Inactive entities are included; filtering happens downstream
	if doc["cervezas"] == nil || doc["cervezas"].Active {
		t.Error("Expected inactive section present with active:false")
	}
}

func TestGetMenuEmptyStore(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewMenuHandler(store)

	req := testutil.MakeRequest("GET", "/api/menu", nil, nil)
	w := httptest.NewRecorder()

	handler.GetMenu(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var doc models.Menu
	testutil.AssertJSON(t, w, &doc)
	if len(doc) != 0 {
		t.Errorf("Expected empty document, got %+v", doc)
	}
}
