// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/granizado-menu/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case models.DatabaseSQLite:
		schema = schemaSQLite
	case models.DatabasePostgres:
		schema = schemaPostgres
	default:
		return fmt.Errorf("unsupported database type: %s", databaseType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaSQLite = `
-- Sections
CREATE TABLE IF NOT EXISTS sections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    key TEXT UNIQUE NOT NULL,
    title TEXT NOT NULL,
    icon TEXT NOT NULL,
    color TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT 1,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Sizes
CREATE TABLE IF NOT EXISTS sizes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    section_key TEXT NOT NULL REFERENCES sections(key) ON DELETE CASCADE,
    size TEXT NOT NULL,
    price TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Subsections
CREATE TABLE IF NOT EXISTS subsections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    section_key TEXT NOT NULL REFERENCES sections(key) ON DELETE CASCADE,
    title TEXT NOT NULL,
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Items
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    section_key TEXT REFERENCES sections(key) ON DELETE CASCADE,
    subsection_id INTEGER REFERENCES subsections(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT,
    price TEXT,
    emoji TEXT NOT NULL,
    bg_color TEXT NOT NULL,
    image TEXT,
    active BOOLEAN NOT NULL DEFAULT 1,
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sizes_section ON sizes(section_key);
CREATE INDEX IF NOT EXISTS idx_subsections_section ON subsections(section_key);
CREATE INDEX IF NOT EXISTS idx_items_section ON items(section_key);
CREATE INDEX IF NOT EXISTS idx_items_subsection ON items(subsection_id);
`

const schemaPostgres = `
-- Sections
CREATE TABLE IF NOT EXISTS sections (
    id SERIAL PRIMARY KEY,
    key TEXT UNIQUE NOT NULL,
    title TEXT NOT NULL,
    icon TEXT NOT NULL,
    color TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Sizes
CREATE TABLE IF NOT EXISTS sizes (
    id SERIAL PRIMARY KEY,
    section_key TEXT NOT NULL REFERENCES sections(key) ON DELETE CASCADE,
    size TEXT NOT NULL,
    price TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Subsections
CREATE TABLE IF NOT EXISTS subsections (
    id SERIAL PRIMARY KEY,
    section_key TEXT NOT NULL REFERENCES sections(key) ON DELETE CASCADE,
    title TEXT NOT NULL,
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Items
CREATE TABLE IF NOT EXISTS items (
    id SERIAL PRIMARY KEY,
    section_key TEXT REFERENCES sections(key) ON DELETE CASCADE,
    subsection_id INTEGER REFERENCES subsections(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT,
    price TEXT,
    emoji TEXT NOT NULL,
    bg_color TEXT NOT NULL,
    image TEXT,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sizes_section ON sizes(section_key);
CREATE INDEX IF NOT EXISTS idx_subsections_section ON subsections(section_key);
CREATE INDEX IF NOT EXISTS idx_items_section ON items(section_key);
CREATE INDEX IF NOT EXISTS idx_items_subsection ON items(subsection_id);
`
