// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/dmless/jobdef"
	"github.com/danielhkuo/dmless/middleware"
	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/store"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var domainErrors = []errorMapping{
	{jobdef.ErrMissingTitle, http.StatusBadRequest, "missing_title"},
	{jobdef.ErrInvalidQuestionCount, http.StatusBadRequest, "invalid_question_count"},
	{jobdef.ErrIncompleteQuestion, http.StatusBadRequest, "incomplete_question"},
	{jobdef.ErrInvalidCorrectIndex, http.StatusBadRequest, "invalid_correct_index"},
	{screening.ErrInvalidSelection, http.StatusBadRequest, "invalid_selection"},
	{screening.ErrIncompleteApplicantInfo, http.StatusBadRequest, "incomplete_applicant_info"},
	{screening.ErrAlreadySubmitted, http.StatusConflict, "already_submitted"},
	{screening.ErrWrongStage, http.StatusConflict, "wrong_stage"},
	{store.ErrConflict, http.StatusConflict, "conflict"},
	{store.ErrNotFound, http.StatusNotFound, "not_found"},
}

// writeError maps domain and storage errors to a JSON error response.
// Anything unrecognized is logged and reported as a 500.
func writeError(w http.ResponseWriter, err error, logArgs ...any) {
	if errors.Is(err, store.ErrInvalidJob) {
		slog.Error("stored job failed validation", append(logArgs, "error", err)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	for _, m := range domainErrors {
		if !errors.Is(err, m.target) {
			continue
		}
		var field string
		var ve *jobdef.ValidationError
		if errors.As(err, &ve) {
			field = ve.Field
		}
		middleware.ErrorResponseWithCode(w, m.status, m.code, field, err.Error())
		return
	}

	slog.Error("request failed", append(logArgs, "error", err)...)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}
