package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	apperrors "github.com/planboard/planboard/internal/errors"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

// AuthClient implements credential exchange and identity resolution against
// the backend's token endpoint. The backend speaks the OAuth2 password
// grant: a form-encoded POST of username/password answering with a bearer
// access token.
type AuthClient struct {
	client *Client
	config *oauth2.Config
}

var (
	_ ports.CredentialExchanger = (*AuthClient)(nil)
	_ ports.IdentityResolver    = (*AuthClient)(nil)
	_ ports.RegistrationAPI     = (*AuthClient)(nil)
)

// NewAuthClient creates an AuthClient sharing the base client's transport.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{
		client: client,
		config: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  client.baseURL + "/auth/login",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// Exchange trades credentials for a bearer token. Rejected credentials come
// back as an auth error with the backend's message when it sent one.
func (a *AuthClient) Exchange(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.Validation("Email and password are required")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.client.httpClient)
	token, err := a.config.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			if retrieveErr.Response != nil && retrieveErr.Response.StatusCode == http.StatusUnauthorized {
				return "", apperrors.Auth("Invalid email or password")
			}
			return "", apperrors.Wrap(err, apperrors.ErrCodeTransport, "Login failed")
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeTransport, "Could not reach the server")
	}
	if token.AccessToken == "" {
		return "", apperrors.Transport("Login response carried no token")
	}
	return token.AccessToken, nil
}

// Resolve fetches the profile behind a token via /auth/me. It sends the
// given token explicitly rather than the token source, so a fresh login can
// resolve before the session publishes.
func (a *AuthClient) Resolve(ctx context.Context, token string) (domainauth.Identity, error) {
	if token == "" {
		return domainauth.Identity{}, apperrors.Auth("No session token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.client.baseURL+"/auth/me", nil)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeTransport, "Could not reach the server")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domainauth.Identity{}, a.client.errorFromResponse(ctx, resp)
	}

	var identity domainauth.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeTransport, "Unexpected response from the server")
	}
	if !identity.Role.Valid() {
		return domainauth.Identity{}, apperrors.Transport("Profile carried an unknown role")
	}
	return identity, nil
}

// Register creates a user account via /auth/register.
func (a *AuthClient) Register(ctx context.Context, req model.RegisterUserRequest) error {
	return a.client.post(ctx, "/auth/register", req, nil)
}
