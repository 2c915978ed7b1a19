// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/granizado-menu/db"
	"github.com/danielhkuo/granizado-menu/middleware"
	"github.com/danielhkuo/granizado-menu/models"
)

type SectionHandler struct {
	store *db.Store
}

func NewSectionHandler(store *db.Store) *SectionHandler {
	return &SectionHandler{store: store}
}

// UpdateSection handles PUT /api/menu/sections/{key}
// The natural key addresses the section and is itself immutable. Setting
// active to false hides the section and everything it owns from the public
// view; the rows persist and stay editable.
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}

	var req models.UpdateSectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	affected, err := h.store.UpdateSection(key, req.Title, req.Icon, req.Color, req.Active)
	if err != nil {
		slog.Error("failed to update section", "error", err, "section_key", key)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update section")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}

	slog.Info("section updated", "section_key", key, "active", req.Active)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
