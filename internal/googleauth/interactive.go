package googleauth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const callbackAddr = ":8080"

// AuthenticateInteractive runs the OAuth2 installed-app flow: it prints an
// authorization URL, waits for the browser redirect on a local callback
// server, exchanges the code, and caches the resulting token.
func (m *Manager) AuthenticateInteractive(ctx context.Context) error {
	cfg := *m.oauthConfig
	cfg.RedirectURL = "http://localhost:8080/callback"

	codeChan := make(chan string, 1)
	errorChan := make(chan error, 1)

	mux := http.NewServeMux()
	server := &http.Server{Addr: callbackAddr, Handler: mux}

	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errorChan <- fmt.Errorf("no authorization code received")
			_, _ = fmt.Fprint(w, `<html><body>
				<h1>Authentication Failed</h1>
				<p>No authorization code received. Please try again.</p>
				<script>window.setTimeout(function(){window.close();}, 3000);</script>
			</body></html>`)
			return
		}

		codeChan <- code
		_, _ = fmt.Fprint(w, `<html><body>
			<h1>Authentication Successful!</h1>
			<p>You can close this window and return to the terminal.</p>
			<script>window.setTimeout(function(){window.close();}, 3000);</script>
		</body></html>`)
	})

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errorChan <- fmt.Errorf("failed to start callback server: %w", err)
		}
	}()

	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	m.logger.Info("Google authentication required")
	m.logger.Info("Please visit this URL to authenticate", "url", authURL)
	m.logger.Info("Waiting for authentication...")

	var authCode string
	select {
	case authCode = <-codeChan:
		m.logger.Info("Received authorization code")
	case err := <-errorChan:
		_ = server.Shutdown(ctx)
		return err
	case <-time.After(5 * time.Minute):
		_ = server.Shutdown(ctx)
		return fmt.Errorf("authentication timeout - no response received within 5 minutes")
	}

	if err := server.Shutdown(ctx); err != nil {
		m.logger.Warn("Error shutting down callback server", "error", err)
	}

	token, err := cfg.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return m.SaveToken(token)
}
