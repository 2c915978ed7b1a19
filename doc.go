// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the granizado-menu API server.

granizado-menu serves a restaurant menu as a nested JSON document and exposes
field-level edit endpoints for the admin editor. Menu data lives in a local
relational database (sqlite by default, postgres optional) as flat rows for
sections, sizes, subsections, and items; every read reassembles the nested
document from those rows.

# Starting the Server

With defaults (sqlite file menu.db in the working directory):

	go run main.go

Or against Postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

A .env file in the working directory is loaded automatically.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string or sqlite file path
    (default: menu.db; required when DATABASE_TYPE is postgres)

On startup the server creates the schema if needed and seeds the initial
menu data set if the store is empty.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - db: connection opening, schema, the row store, seeding
  - menu: assembles the nested menu document from flat rows
  - handlers: HTTP request handlers (menu, items, sizes, sections)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response/row/document types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
