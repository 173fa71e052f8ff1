// Package googleauth manages OAuth2 credentials shared by the Drive and
// Sheets clients. One authentication covers both scopes.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/budgetlens-dev/budgetlens/internal/common"
)

// Manager holds the OAuth2 client configuration and the on-disk token
// cache. It is constructed explicitly and injected; there is no package
// level singleton.
type Manager struct {
	oauthConfig *oauth2.Config
	tokenPath   string
	logger      *slog.Logger
}

// NewManager reads the installed-app credentials JSON at credentialsPath.
// The token at tokenPath is only consulted when a service is built.
func NewManager(credentialsPath, tokenPath string, logger *slog.Logger) (*Manager, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read credentials file %s: %v", common.ErrAuth, credentialsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, drive.DriveScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse credentials file: %v", common.ErrAuth, err)
	}

	return &Manager{
		oauthConfig: oauthConfig,
		tokenPath:   tokenPath,
		logger:      logger,
	}, nil
}

// tokenSource loads the cached token and wraps it in a refreshing source.
// A missing cache means the user has never run `budgetlens auth`.
func (m *Manager) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := m.loadToken()
	if err != nil {
		return nil, err
	}
	return m.oauthConfig.TokenSource(ctx, token), nil
}

// DriveService builds a Drive API service from the cached credentials.
func (m *Manager) DriveService(ctx context.Context) (*drive.Service, error) {
	ts, err := m.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return svc, nil
}

// SheetsService builds a Sheets API service from the cached credentials.
func (m *Manager) SheetsService(ctx context.Context) (*sheets.Service, error) {
	ts, err := m.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return svc, nil
}

func (m *Manager) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(m.tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: no cached token at %s, run `budgetlens auth` first", common.ErrAuth, m.tokenPath)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: corrupt token file %s: %v", common.ErrAuth, m.tokenPath, err)
	}
	return &token, nil
}

// SaveToken writes the token to the cache path, creating parent directories
// as needed. Mode 0600: it contains a refresh token.
func (m *Manager) SaveToken(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(m.tokenPath), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(m.tokenPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	m.logger.Info("saved OAuth token", "path", m.tokenPath)
	return nil
}
