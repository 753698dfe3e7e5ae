package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
}

// AuthResource covers login, registration and the current profile.
type AuthResource struct{ c *Client }

func (c *Client) Auth() AuthResource { return AuthResource{c: c} }

// Login exchanges credentials for a token. Persisting the token is up to the
// caller.
func (a AuthResource) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := a.c.Request(ctx, "/auth/login", &RequestOptions{
		Method: http.MethodPost,
		Body:   Payload{"email": email, "password": password},
	})
	if err != nil {
		return nil, err
	}
	var res LoginResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &res, nil
}

func (a AuthResource) Register(ctx context.Context, data Payload) (json.RawMessage, error) {
	return a.c.Request(ctx, "/auth/register", &RequestOptions{Method: http.MethodPost, Body: data})
}

func (a AuthResource) Profile(ctx context.Context) (json.RawMessage, error) {
	return a.c.Request(ctx, "/auth/me", nil)
}

// Logout revokes the token server side, then clears the local credentials when
// they support it and drops the cache, which may hold data of the old session.
func (a AuthResource) Logout(ctx context.Context) error {
	_, err := a.c.Request(ctx, "/auth/logout", &RequestOptions{Method: http.MethodPost})
	if clearer, ok := a.c.credentials.(interface{ Clear() error }); ok {
		if cerr := clearer.Clear(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to clear credentials: %w", cerr)
		}
	}
	a.c.ClearCache()
	return err
}
