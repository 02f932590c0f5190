package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// sugar is the package logger, a no-op until SetLogger is called from main.
var sugar = zap.NewNop().Sugar()

// SetLogger wires in the CLI logger for decode diagnostics.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		sugar = l
	}
}

// Session is the client-side view of the logged-in user, decoded from
// the stored access token without signature verification.
type Session struct {
	UserID string
	Email  string
	Role   string // always lower-cased
}

// Store keeps the access token in the user config directory, or in an
// explicitly configured file when Path is set.
type Store struct {
	Path string
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "SiteModels")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s Store) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "access_token"), nil
}

// Save stores the access token.
func (s Store) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load reads the stored access token.
func (s Store) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", errors.New("empty token file")
	}
	return token, nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s Store) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

type tokenClaims struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Decode extracts the session from a raw token. A malformed token
// yields nil, same as no token at all; the decode error is logged for
// diagnostics and never surfaces to the caller.
func Decode(token string) *Session {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		sugar.Debugw("session: token decode failed", "error", err)
		return nil
	}
	return &Session{
		UserID: claims.UserID,
		Email:  claims.UserEmail,
		Role:   strings.ToLower(claims.Role),
	}
}

// Current loads and decodes the stored session. Returns nil when
// logged out or the stored token cannot be decoded.
func (s Store) Current() *Session {
	token, err := s.Load()
	if err != nil {
		return nil
	}
	return Decode(token)
}

// IsLoggedIn reports whether a decodable token is present.
func (s Store) IsLoggedIn() bool {
	return s.Current() != nil
}
