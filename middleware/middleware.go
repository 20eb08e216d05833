// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/dmless/models"
	"github.com/danielhkuo/dmless/schemas"
)

// MaxBodyBytes caps request bodies read by ReadJSONBody.
const MaxBodyBytes = 1 << 20

var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrBodyTooLarge = errors.New("request body too large")
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ErrorResponseWithCode writes a JSON error response carrying a machine
// readable code and, when known, the offending field.
func ErrorResponseWithCode(w http.ResponseWriter, statusCode int, code, field, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
		Field:   field,
	})
}

// ReadJSONBody reads the body, checks it against schema and decodes it into v.
func ReadJSONBody(r *http.Request, schema *schemas.Schema, v interface{}) error {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if len(body) > MaxBodyBytes {
		return ErrBodyTooLarge
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrEmptyBody
	}
	if err := schema.Validate(body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", schemas.ErrMalformedDocument, err)
	}
	return nil
}

// BodyErrorResponse reports a ReadJSONBody failure as a 400 (or 413).
func BodyErrorResponse(w http.ResponseWriter, err error) {
	var ve *schemas.ValidationError
	switch {
	case errors.As(err, &ve) && len(ve.Errors) > 0:
		fe := ve.Errors[0]
		ErrorResponseWithCode(w, http.StatusBadRequest, "invalid_request", fe.Field, fe.Message)
	case errors.Is(err, ErrBodyTooLarge):
		ErrorResponseWithCode(w, http.StatusRequestEntityTooLarge, "body_too_large", "", err.Error())
	case errors.Is(err, ErrEmptyBody):
		ErrorResponseWithCode(w, http.StatusBadRequest, "invalid_json", "", err.Error())
	default:
		ErrorResponseWithCode(w, http.StatusBadRequest, "invalid_json", "", "Invalid JSON")
	}
}

// CORS middleware allows cross-origin requests from the frontend
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Key, X-Candidate-Token")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP extracts the client IP address
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
