// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls", middleware.WithLogging(handler))

Logs method, path, client IP, and duration via log/slog.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	err := middleware.ParseJSONBody(r, &req)

# CORS

CORS wraps the whole mux and handles preflight requests:

	server.Handler = middleware.CORS(mux)

# Client IP

GetClientIP checks X-Forwarded-For and X-Real-IP before falling back to
RemoteAddr.
*/
package middleware
