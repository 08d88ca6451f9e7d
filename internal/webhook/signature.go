package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	// ErrMissingSignature is returned when a signing key is configured but the delivery is unsigned
	ErrMissingSignature = errors.New("missing webhook signature")
	// ErrInvalidSignature is returned when the signature does not match the body
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Sign returns the base64 HMAC-SHA256 of body under key
func Sign(key string, body []byte) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// VerifySignature checks the signature header value against the raw body.
// An empty key disables verification.
func VerifySignature(key string, body []byte, signature string) error {
	if key == "" {
		return nil
	}

	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrMissingSignature
	}

	provided, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write(body)
	if !hmac.Equal(provided, h.Sum(nil)) {
		return ErrInvalidSignature
	}

	return nil
}
