package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Digest returns the journal payload of the event and the sha256 of the
// canonical (RFC 8785) form of its log fields. MetadataRef and Amounts.Royalty
// are read from contract state after decoding, so they are kept in the payload
// but left out of the hash: two decodings of the same log hash equal.
func (e Event) Digest() (payload []byte, hash []byte, err error) {
	payload, err = json.Marshal(e)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	logFields := e
	logFields.MetadataRef = ""
	logFields.Amounts.Royalty = ""
	raw, err := json.Marshal(logFields)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to canonicalize event: %w", err)
	}
	sum := sha256.Sum256(canonical)

	return payload, sum[:], nil
}

// SameDigest reports whether two journal hashes are equal
func SameDigest(a, b []byte) bool {
	return bytes.Equal(a, b)
}
