package session

import (
	"encoding/json"
	"fmt"
	"os"
)

// TokenFile persists the bearer token as a single JSON file. This is the
// console's only durable state.
type TokenFile struct {
	path string
}

// NewTokenFile returns a TokenFile rooted at path.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

type tokenRecord struct {
	AccessToken string `json:"access_token"`
}

// Load reads the persisted token. A missing file yields an empty token
// and no error.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("parse token file: %w", err)
	}
	return rec.AccessToken, nil
}

// Save writes the token, replacing any previous one. The file is owner-only.
func (f *TokenFile) Save(token string) error {
	data, err := json.Marshal(tokenRecord{AccessToken: token})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. A missing file is not an error.
func (f *TokenFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
