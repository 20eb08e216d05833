// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Completions with a 5xx status are logged at error level.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, OPTIONS with headers Content-Type, Authorization,
X-Admin-Key, X-Candidate-Token.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "job not found")
	middleware.ErrorResponseWithCode(w, http.StatusConflict, "already_submitted", "", msg)

Request bodies are checked against a JSON Schema before decoding:

	var req models.AnswerRequest
	if err := middleware.ReadJSONBody(r, schemas.Answer, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. The result is hashed before storage.
*/
package middleware
