package api

import (
	"context"
	"net/url"

	"github.com/contasplay/painel-admin/internal/models"
)

// Login exchanges credentials for a bearer token via POST /admin/login.
// The request is form-encoded and carries no Authorization header; a 401
// here means rejected credentials and is returned to the caller instead of
// firing the global unauthorized hook.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out models.LoginResponse
	if err := c.postForm(ctx, "/admin/login", form, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}
