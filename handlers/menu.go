// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/granizado-menu/db"
	"github.com/danielhkuo/granizado-menu/menu"
	"github.com/danielhkuo/granizado-menu/middleware"
)

type MenuHandler struct {
	store *db.Store
}

func NewMenuHandler(store *db.Store) *MenuHandler {
	return &MenuHandler{store: store}
}

// GetMenu handles GET /api/menu
// Returns the full assembled menu document, inactive entities included.
// The public page filters by active downstream; the admin editor shows all.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	doc, err := menu.Assemble(h.store)
	if err != nil {
		slog.Error("failed to assemble menu", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch menu data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, doc)
}
