// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires handlers onto a ServeMux using Go 1.22+ method routing:

	mux := router.NewRouter(store)

Routes:

	GET    /health                  → liveness check
	GET    /api/menu                → assembled menu document
	PUT    /api/menu/items/{id}     → update item fields
	DELETE /api/menu/items/{id}     → delete item
	PUT    /api/menu/sizes/{id}     → update size fields
	DELETE /api/menu/sizes/{id}     → delete size
	PUT    /api/menu/sections/{key} → update section metadata
	GET    /                        → service banner

API routes are wrapped with middleware.WithLogging at registration.
*/
package router
