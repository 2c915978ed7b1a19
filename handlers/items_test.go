// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/granizado-menu/models"
	"github.com/danielhkuo/granizado-menu/testutil"
)

func validItemBody() models.UpdateItemRequest {
	return models.UpdateItemRequest{
		Name:        "Mora Azul",
		Description: testutil.Str("Dulce y refrescante"),
		Price:       testutil.Str("$8.000"),
		Emoji:       "🫐",
		BgColor:     "bg-blue-100",
		Image:       nil,
		Active:      true,
		OrderIndex:  0,
	}
}

func TestUpdateItem(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.CreateTestSection(t, store, "sinLicor", true)
	itemID := testutil.AddTestItem(t, store, testutil.Str("sinLicor"), nil, "Placeholder", true, 0)

	handler := NewItemHandler(store)

	tests := []struct {
		name           string
		pathID         string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid update",
			pathID:         strconv.FormatInt(itemID, 10),
			body:           validItemBody(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown id",
			pathID:         "999999",
			body:           validItemBody(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			pathID:         "abc",
			body:           validItemBody(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid JSON",
			pathID:         strconv.FormatInt(itemID, 10),
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if raw, ok := tt.body.(string); ok {
				req = httptest.NewRequest("PUT", "/api/menu/items/"+tt.pathID, strings.NewReader(raw))
			} else {
				req = testutil.MakeRequest("PUT", "/api/menu/items/"+tt.pathID, tt.body, nil)
			}
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.UpdateItem(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	t.Run("update is applied", func(t *testing.T) {
		items, err := store.ItemsBySection("sinLicor")
		if err != nil {
			t.Fatalf("ItemsBySection failed: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Mora Azul" {
			t.Errorf("Expected updated item, got %+v", items)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			req := testutil.MakeRequest("PUT", "/api/menu/items/"+strconv.FormatInt(itemID, 10), validItemBody(), nil)
			req.SetPathValue("id", strconv.FormatInt(itemID, 10))
			w := httptest.NewRecorder()

			handler.UpdateItem(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.SuccessResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success {
				t.Error("Expected success:true")
			}
		}

		items, _ := store.ItemsBySection("sinLicor")
		if len(items) != 1 || items[0].Name != "Mora Azul" || *items[0].Price != "$8.000" {
			t.Errorf("Expected same stored row after repeated PUT, got %+v", items)
		}
	})

	t.Run("not-found leaves rows unchanged", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/api/menu/items/999999", models.UpdateItemRequest{Name: "Fantasma", Emoji: "👻", BgColor: "bg-gray-100"}, nil)
		req.SetPathValue("id", "999999")
		w := httptest.NewRecorder()

		handler.UpdateItem(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)

		items, _ := store.ItemsBySection("sinLicor")
		if len(items) != 1 || items[0].Name != "Mora Azul" {
			t.Errorf("Expected existing rows unchanged, got %+v", items)
		}
	})
}

func TestDeleteItem(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.CreateTestSection(t, store, "toppings", true)
	itemID := testutil.AddTestItem(t, store, testutil.Str("toppings"), nil, "Gusanito", true, 0)

	handler := NewItemHandler(store)
	idStr := strconv.FormatInt(itemID, 10)

	t.Run("delete existing", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/api/menu/items/"+idStr, nil, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()

		handler.DeleteItem(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		items, _ := store.ItemsBySection("toppings")
		if len(items) != 0 {
			t.Errorf("Expected item to be deleted, got %+v", items)
		}
	})

	t.Run("delete again returns 404", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/api/menu/items/"+idStr, nil, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()

		handler.DeleteItem(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/api/menu/items/abc", nil, nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		handler.DeleteItem(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
