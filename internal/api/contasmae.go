package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// ListContasMae fetches the parent accounts.
func (c *Client) ListContasMae(ctx context.Context) ([]models.ContaMae, error) {
	var out []models.ContaMae
	err := c.do(ctx, http.MethodGet, "/admin/contas-mae/", nil, nil, &out)
	return out, err
}

// GetContaMae fetches one parent account with its invites.
func (c *Client) GetContaMae(ctx context.Context, id int64) (models.ContaMae, error) {
	var out models.ContaMae
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/contas-mae/%d", id), nil, nil, &out)
	return out, err
}

// CreateContaMae creates a parent account.
func (c *Client) CreateContaMae(ctx context.Context, p models.ContaMaeCreate) error {
	return c.do(ctx, http.MethodPost, "/admin/contas-mae/", nil, p, nil)
}

// UpdateContaMae partially updates a parent account; the password is
// omitted from the body when blank.
func (c *Client) UpdateContaMae(ctx context.Context, id int64, p models.ContaMaeUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/contas-mae/%d", id), nil, p, nil)
}

// DeleteContaMae removes a parent account.
func (c *Client) DeleteContaMae(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/contas-mae/%d", id), nil, nil, nil)
}

// AddConvite registers an invite e-mail under a parent account.
func (c *Client) AddConvite(ctx context.Context, contaID int64, email string) error {
	p := models.ConvitePayload{Email: email}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/contas-mae/%d/convites", contaID), nil, p, nil)
}

// DeleteConvite removes an invite from a parent account.
func (c *Client) DeleteConvite(ctx context.Context, contaID, conviteID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/contas-mae/%d/convites/%d", contaID, conviteID), nil, nil, nil)
}
