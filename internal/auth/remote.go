package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "lead-dashboard-backend/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// RemoteResolver asks an external identity provider who owns a bearer token
type RemoteResolver struct {
	userURL string
	base    *http.Client
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewRemoteResolver creates a resolver calling userURL with the caller's token.
// base may be nil to use the default transport.
func NewRemoteResolver(userURL string, base *http.Client) *RemoteResolver {
	return &RemoteResolver{userURL: userURL, base: base}
}

// Resolve fetches the user behind credential from the identity provider
func (r *RemoteResolver) Resolve(ctx context.Context, credential string) (*Identity, error) {
	if r.base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, r.base)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: credential},
	)
	tc := oauth2.NewClient(ctx, ts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}

	resp, err := tc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.ErrInvalidCredential
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: provider returned a malformed user id", apperrors.ErrInvalidCredential)
	}

	return &Identity{UserID: userID, Email: user.Email}, nil
}
