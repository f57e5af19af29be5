// Package fingerprint computes canonical digests of documents and runs.
// Uses length-prefixed encoding to avoid delimiter ambiguity.
// Format: ${len}:${value}${len}:${value}... where empty → 0:
// Algorithm: BLAKE2b-256, lowercase hex output
package fingerprint

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Document computes the digest of a document's stable serialization.
func Document(serialized string) string {
	return hashFields([]string{serialized})
}

// Run computes the identifying digest of a comparison run: both document
// digests plus the knobs that affect the outcome.
// Fields (in order): expected_digest, actual_digest, tolerance, ignore...
func Run(expectedDigest, actualDigest string, tolerance float64, ignore []string) string {
	parts := []string{
		expectedDigest,
		actualDigest,
		strconv.FormatFloat(tolerance, 'g', -1, 64),
	}
	parts = append(parts, ignore...)
	return hashFields(parts)
}

// hashFields computes BLAKE2b-256 of length-prefixed fields
func hashFields(fields []string) string {
	var builder strings.Builder

	for _, field := range fields {
		builder.WriteString(strconv.Itoa(len(field)))
		builder.WriteByte(':')
		builder.WriteString(field)
	}

	sum := blake2b.Sum256([]byte(builder.String()))
	return hex.EncodeToString(sum[:])
}
