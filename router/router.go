// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/granizado-menu/db"
	"github.com/danielhkuo/granizado-menu/handlers"
	"github.com/danielhkuo/granizado-menu/middleware"
)

func NewRouter(store *db.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(store)
	itemHandler := handlers.NewItemHandler(store)
	sizeHandler := handlers.NewSizeHandler(store)
	sectionHandler := handlers.NewSectionHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Menu retrieval (public display and admin editor share this)
	mux.HandleFunc("GET /api/menu", middleware.WithLogging(menuHandler.GetMenu))

	// Field-level edit endpoints (admin editor)
	mux.HandleFunc("PUT /api/menu/items/{id}", middleware.WithLogging(itemHandler.UpdateItem))
	mux.HandleFunc("DELETE /api/menu/items/{id}", middleware.WithLogging(itemHandler.DeleteItem))
	mux.HandleFunc("PUT /api/menu/sizes/{id}", middleware.WithLogging(sizeHandler.UpdateSize))
	mux.HandleFunc("DELETE /api/menu/sizes/{id}", middleware.WithLogging(sizeHandler.DeleteSize))
	mux.HandleFunc("PUT /api/menu/sections/{key}", middleware.WithLogging(sectionHandler.UpdateSection))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("granizado-menu API v1"))
	})

	return mux
}
