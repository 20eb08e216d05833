// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidToken    = errors.New("invalid candidate token")
)

const candidateTokenBytes = 24

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func sign(value, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(value))
	return h.Sum(nil)
}

// GenerateAdminKey derives the key that authorizes management of a job.
// The same job ID and salt always produce the same key, so it is never stored.
func GenerateAdminKey(jobID, salt string) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sign("admin:"+jobID, salt)), "=")
}

// ValidateAdminKey checks the provided admin key against the job
func ValidateAdminKey(jobID, adminKey, salt string) error {
	expected := GenerateAdminKey(jobID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateCandidateToken creates the bearer secret handed to a candidate
// when their session starts.
func GenerateCandidateToken() (string, error) {
	b := make([]byte, candidateTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate candidate token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateCandidateToken compares a presented token with the stored one.
func ValidateCandidateToken(presented, stored string) error {
	if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// GenerateShareSlug creates the short screening link slug for a job.
func GenerateShareSlug(jobID, salt string) string {
	return base62Encode(sign("link:"+jobID, salt)[:8])
}

// base62Encode converts up to 8 bytes to base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}
	if num == 0 {
		return "0"
	}

	result := make([]byte, 0, 11)
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return string(result)
}

// HashIP creates a salted one-way hash of a candidate's address.
// Returns the first 8 bytes as 16 hex characters.
func HashIP(ip, salt string) string {
	return hex.EncodeToString(sign(ip, salt)[:8])
}
