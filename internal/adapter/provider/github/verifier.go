// Package github exchanges GitHub OAuth authorization codes for user identity.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"github.com/echospace/echospace-backend/internal/auth"
)

// userAPIURL is a variable so tests can point it at a local server.
var userAPIURL = "https://api.github.com/user"

// Verifier implements the authorization-code flow against GitHub.
type Verifier struct {
	config *oauth2.Config
	log    *slog.Logger
}

// NewVerifier creates a GitHub OAuth verifier.
// Parameters come from config.AuthConfig: GitHubClientID, GitHubClientSecret,
// GitHubRedirectURI.
func NewVerifier(clientID, clientSecret, redirectURI string, logger *slog.Logger) *Verifier {
	return &Verifier{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     oauthgithub.Endpoint,
		},
		log: logger.With("adapter", "github_oauth"),
	}
}

// AuthURL returns the GitHub authorization URL for the given CSRF state.
func (v *Verifier) AuthURL(state string) string {
	return v.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// githubUser is the portion of the GitHub /user response we care about.
type githubUser struct {
	ID        int64   `json:"id"`
	Login     string  `json:"login"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL string  `json:"avatar_url"`
}

// VerifyCode exchanges an authorization code for user identity.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	token, err := v.config.Exchange(ctx, code)
	if err != nil {
		v.log.ErrorContext(ctx, "github oauth code exchange failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: invalid or expired code")
	}

	gh, err := v.fetchUser(ctx, token)
	if err != nil {
		return nil, err
	}

	identity := &auth.OAuthIdentity{
		ProviderID: strconv.FormatInt(gh.ID, 10),
		Email:      gh.Email,
	}

	// GitHub's display name can be unset; fall back to the login handle.
	if gh.Name != nil && *gh.Name != "" {
		identity.Name = gh.Name
	} else if gh.Login != "" {
		identity.Name = &gh.Login
	}
	if gh.AvatarURL != "" {
		identity.AvatarURL = &gh.AvatarURL
	}

	v.log.DebugContext(ctx, "github oauth success", slog.String("provider_id", identity.ProviderID))

	return identity, nil
}

// fetchUser calls the GitHub /user API with the exchanged token.
// The oauth2 client attaches the bearer header on every request.
func (v *Verifier) fetchUser(ctx context.Context, token *oauth2.Token) (*githubUser, error) {
	client := v.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userAPIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create user request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "github user fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "github user fetch failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}

	var gh githubUser
	if err := json.NewDecoder(resp.Body).Decode(&gh); err != nil {
		v.log.ErrorContext(ctx, "github user fetch failed", slog.String("error", "invalid json"))
		return nil, fmt.Errorf("oauth: invalid user response")
	}

	if gh.ID == 0 {
		v.log.ErrorContext(ctx, "github user fetch failed", slog.String("error", "missing user id"))
		return nil, fmt.Errorf("oauth: invalid user response")
	}

	return &gh, nil
}
