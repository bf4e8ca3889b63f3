// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollbox API server.

Pollbox is a small polling service: questions carry a publication
timestamp, choices belong to questions, and the public surface only ever
shows questions that are already published and have at least one choice.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=pollbox.sqlite ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3414 -d pollbox.sqlite -admin-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): database location (sqlite file or postgres URL)
  - ADMIN_KEY_SALT (-admin-salt): secret for admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 3414)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, polls, results, voting)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain types and the publication-visibility rules
  - admin: editable-field registration for the admin surface
  - auth: admin key generation and validation
  - db: connection opening and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
