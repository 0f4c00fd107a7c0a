package session

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// CSRFKeySize is the key length gorilla/csrf expects.
const CSRFKeySize = 32

const csrfKeyInfo = "library csrf v1"

// CSRFKey turns the configured CSRF secret into a 32-byte key. A 64-char hex
// string is used as-is; anything else is stretched with HKDF-SHA256 so
// passphrases of any length work.
func CSRFKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("csrf secret is empty")
	}
	if key, err := hex.DecodeString(secret); err == nil && len(key) == CSRFKeySize {
		return key, nil
	}

	key := make([]byte, CSRFKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(csrfKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive csrf key: %w", err)
	}
	return key, nil
}
