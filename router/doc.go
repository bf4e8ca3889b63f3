// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes for the Pollbox API.

# Routes

Uses Go 1.22+ method-based routing with the standard ServeMux:

	mux := router.NewRouter(db, cfg)

Admin routes live under /questions, the public surface under /polls. Every
route is wrapped with request logging; CORS is applied to the whole mux by
main.
*/
package router
