// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first, if present.

# Config Fields

  - Port: server listen port (default: 3414)
  - DatabaseURL: sqlite file path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: secret for admin key HMAC (required)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-admin-salt  Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_KEY_SALT must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres
*/
package cliparse
