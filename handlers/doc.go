// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the menu API.

# Handler Types

Each handler is a struct with a store dependency:

  - MenuHandler: assembled menu document retrieval
  - ItemHandler: item field updates and deletion
  - SizeHandler: size field updates and deletion
  - SectionHandler: section metadata updates

Handlers are created via constructor functions that accept *db.Store:

	menuHandler := handlers.NewMenuHandler(store)

# Read Surface

	GET /api/menu → GetMenu

Returns the full assembled document (see the menu package), including
inactive entities; the public page filters by active downstream.

# Edit Surface

Each edit endpoint maps one request onto one store mutation:

	PUT    /api/menu/items/{id}     → UpdateItem
	DELETE /api/menu/items/{id}     → DeleteItem
	PUT    /api/menu/sizes/{id}     → UpdateSize
	DELETE /api/menu/sizes/{id}     → DeleteSize
	PUT    /api/menu/sections/{key} → UpdateSection

Updates carry the full set of mutable fields and overwrite the row; there
are no partial updates. Field values are stored verbatim - no validation
beyond target existence happens at this layer.

# Status Contract

  - 200 {success:true} on success
  - 404 when the id/key (including a malformed numeric id) matches no row
  - 400 on unparseable JSON
  - 500 on storage failure, logged via slog

A zero-affected-rows mutation is reported as 404, never as an error; the
store leaves not-found signaling to the affected-row count.
*/
package handlers
