package upstream

import (
	"context"
	"net/http"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Token string `json:"token"`
}

type mePayload struct {
	Role string `json:"role"`
}

// Login implements usecase.SessionSource: a pass-through credential check.
// The backend issues and owns the token; the gateway never mints one.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var payload loginPayload
	body := loginBody{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

// Me resolves the role behind a bearer credential.
func (c *Client) Me(ctx context.Context, token string) (string, error) {
	var payload mePayload
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &payload); err != nil {
		return "", err
	}
	return payload.Role, nil
}
