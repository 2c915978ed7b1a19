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

type ItemHandler struct {
	store *db.Store
}

func NewItemHandler(store *db.Store) *ItemHandler {
	return &ItemHandler{store: store}
}

// UpdateItem handles PUT /api/menu/items/{id}
// Overwrites every mutable field of the item; 404 when the id matches no row.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		// A malformed id matches no row; same outcome as an unknown one.
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	var req models.UpdateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	affected, err := h.store.UpdateItem(id, req.Name, req.Description, req.Price,
		req.Emoji, req.BgColor, req.Image, req.Active, req.OrderIndex)
	if err != nil {
		slog.Error("failed to update item", "error", err, "item_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	slog.Info("item updated", "item_id", id, "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteItem handles DELETE /api/menu/items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	affected, err := h.store.DeleteItem(id)
	if err != nil {
		slog.Error("failed to delete item", "error", err, "item_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	slog.Info("item deleted", "item_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
