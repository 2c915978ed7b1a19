// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/granizado-menu/db"
	"github.com/danielhkuo/granizado-menu/middleware"
	"github.com/danielhkuo/granizado-menu/models"
)

type SizeHandler struct {
	store *db.Store
}

func NewSizeHandler(store *db.Store) *SizeHandler {
	return &SizeHandler{store: store}
}

// UpdateSize handles PUT /api/menu/sizes/{id}
func (h *SizeHandler) UpdateSize(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Size not found")
		return
	}

	var req models.UpdateSizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	affected, err := h.store.UpdateSize(id, req.Size, req.Price)
	if err != nil {
		slog.Error("failed to update size", "error", err, "size_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update size")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Size not found")
		return
	}

	slog.Info("size updated", "size_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteSize handles DELETE /api/menu/sizes/{id}
func (h *SizeHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Size not found")
		return
	}

	affected, err := h.store.DeleteSize(id)
	if err != nil {
		slog.Error("failed to delete size", "error", err, "size_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete size")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Size not found")
		return
	}

	slog.Info("size deleted", "size_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
