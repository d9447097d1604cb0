package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ---- client-local state ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// cachedToken remembers the number taken at a shop on a given day.
type cachedToken struct {
	Date   string `json:"date"`
	Number int64  `json:"number"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tokenqueue")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tokenqueue")
}

func tokenPath() string   { return filepath.Join(cfgDir(), "token.json") }
func sessionPath() string { return filepath.Join(cfgDir(), "session") }
func cachePath() string   { return filepath.Join(cfgDir(), "tokens.json") }

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func saveToken(tok string, exp time.Time) error {
	return writeJSON(tokenPath(), tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", errors.New("no token (login required)")
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// sessionID returns the persistent customer session, generating it on first use.
func sessionID() (string, error) {
	b, err := os.ReadFile(sessionPath())
	if err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(sessionPath(), []byte(id.String()), 0o600); err != nil {
		return "", err
	}
	return id.String(), nil
}

func loadCache() (map[string]cachedToken, error) {
	out := map[string]cachedToken{}
	b, err := os.ReadFile(cachePath())
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// remember stores today's number for code and drops entries from other days.
func remember(code, date string, number int64) error {
	c, err := loadCache()
	if err != nil {
		return err
	}
	for k, v := range c {
		if v.Date != date {
			delete(c, k)
		}
	}
	c[code] = cachedToken{Date: date, Number: number}
	return writeJSON(cachePath(), c)
}

func forget(code string) error {
	c, err := loadCache()
	if err != nil {
		return err
	}
	if _, ok := c[code]; !ok {
		return nil
	}
	delete(c, code)
	return writeJSON(cachePath(), c)
}

// cached returns the number held for code on date, if any.
func cached(code, date string) (int64, bool) {
	c, err := loadCache()
	if err != nil {
		return 0, false
	}
	v, ok := c[code]
	if !ok || v.Date != date {
		return 0, false
	}
	return v.Number, true
}
