// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key and token generation for jobs and candidates.

# Admin Keys

Admin keys are HMAC-SHA256 of the job ID, so they can be checked without
being stored:

	adminKey := auth.GenerateAdminKey(jobID, salt)
	err := auth.ValidateAdminKey(jobID, adminKey, salt)

Keys are URL-safe base64 without padding.

# Candidate Tokens

Each screening session gets a random 192-bit bearer token:

	token, err := auth.GenerateCandidateToken()
	err = auth.ValidateCandidateToken(presented, stored)

The token is returned once when the session is created and must accompany
every later request for that session.

# Share Slugs

The public screening link for a job is a base62 slug derived from its ID:

	slug := auth.GenerateShareSlug(jobID, salt)

# IDs and IP Hashes

	id, err := auth.GenerateID(16)  // 32 hex characters
	hash := auth.HashIP(ip, salt)   // 16 hex characters
*/
package auth
