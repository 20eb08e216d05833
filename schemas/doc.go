// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schemas validates HTTP request bodies against JSON Schema before they
are decoded.

A correct_option_index of "2" or 1.5 is rejected here instead of silently
becoming 0 after decoding:

	if err := schemas.CreateJob.Validate(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			// ve.Errors[i].Field is a dotted path like questions.0.correct_option_index
		}
	}

The compiled schemas are CreateJob, Answer and Application.
*/
package schemas
