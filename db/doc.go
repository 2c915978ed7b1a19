// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access: connection opening, schema creation,
the row store, and the one-time seed.

# Opening a Connection

Open selects the driver by configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, local file) and "postgres"
(lib/pq). SQLite connections get foreign_keys enabled via the DSN so cascade
deletes work, and a pool size of one because SQLite allows a single writer.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - sections: top-level menu categories, addressed by a unique natural key
  - sizes: price tiers attached to a section
  - subsections: named item groupings under a section
  - items: menu entries owned by a section directly or by a subsection

# Relationships

	sections 1──* sizes        (by section key)
	sections 1──* subsections  (by section key)
	sections 1──* items        (direct items, by section key)
	subsections 1──* items     (by subsection id)

All foreign keys use ON DELETE CASCADE. An item references exactly one owner;
Store.InsertItem rejects anything else.

# Store

Store wraps the connection with per-entity operations. Reads return ordered
row slices (sections and sizes in creation order, subsections and items by
order_index then id). Updates overwrite every mutable column, stamp
updated_at, and return the affected-row count; 0 means the target row does
not exist, which callers surface as not-found rather than an error.

# Seeding

Store.Seed inserts the initial menu data set when the sections table is
empty, and is a no-op otherwise:

	if err := store.Seed(); err != nil {
		log.Fatal(err)
	}

All queries use $n placeholders, which both supported engines accept.
*/
package db
