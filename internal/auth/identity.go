package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"naturexpress-cargo-backend/internal/logger"
)

const identityEndpoint = "https://identitytoolkit.googleapis.com/v1"

// IdentityClient talks to the Identity Toolkit REST API. The admin SDK has
// no password sign-in, so these two calls go over plain HTTP with the
// project's web API key.
type IdentityClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

var _ Client = (*IdentityClient)(nil)

func NewIdentityClient(apiKey string) *IdentityClient {
	return &IdentityClient{
		apiKey:   apiKey,
		endpoint: identityEndpoint,
		http:     http.DefaultClient,
	}
}

// NewIdentityClientWithEndpoint allows pointing at a test server.
func NewIdentityClientWithEndpoint(apiKey, endpoint string, httpClient *http.Client) *IdentityClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &IdentityClient{apiKey: apiKey, endpoint: endpoint, http: httpClient}
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp signInResponse
	if err := c.post(ctx, "accounts:signInWithPassword", body, &resp); err != nil {
		return nil, err
	}

	return &Session{
		UID:          resp.LocalID,
		Email:        resp.Email,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    tokenExpiry(resp.IDToken, resp.ExpiresIn),
	}, nil
}

func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return c.post(ctx, "accounts:sendOobCode", body, &struct{}{})
}

func (c *IdentityClient) post(ctx context.Context, action string, body, into any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.endpoint, action, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("identity", action)
	resp, err := c.http.Do(req)
	logger.ExternalServiceResult("identity", action, err)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error.Message == "" {
			return &Error{Code: fmt.Sprintf("HTTP_%d", resp.StatusCode)}
		}
		return &Error{Code: apiErr.Error.Message}
	}

	return json.NewDecoder(resp.Body).Decode(into)
}

// tokenExpiry reads the exp claim from the ID token without verifying the
// signature (the provider just issued it); expiresIn is the fallback.
func tokenExpiry(idToken, expiresIn string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	secs, err := strconv.Atoi(expiresIn)
	if err != nil {
		secs = 3600
	}
	return time.Now().Add(time.Duration(secs) * time.Second)
}
