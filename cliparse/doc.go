// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - DatabaseURL: Postgres connection string, or sqlite file path
    (default: menu.db)

# CLI Flags

	-p    Server port
	-d    Database URL or sqlite file path
	-t    Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables. main loads a .env file
via godotenv before parsing, so local development needs no exported vars.

# Validation

ParseFlags returns an error if:

  - PORT is set but not numeric
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_TYPE is postgres and no DATABASE_URL is provided
*/
package cliparse
