package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// ListEstoque fetches the shared-account stock.
func (c *Client) ListEstoque(ctx context.Context) ([]models.ContaEstoque, error) {
	var out []models.ContaEstoque
	err := c.do(ctx, http.MethodGet, "/admin/estoque/", nil, nil, &out)
	return out, err
}

// CreateEstoque adds an account to stock.
func (c *Client) CreateEstoque(ctx context.Context, p models.ContaEstoqueCreate) error {
	return c.do(ctx, http.MethodPost, "/admin/estoque/", nil, p, nil)
}

// UpdateEstoque partially updates a stock account. The payload carries no
// product reference (immutable) and omits the password when blank.
func (c *Client) UpdateEstoque(ctx context.Context, id int64, p models.ContaEstoqueUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/estoque/%d", id), nil, p, nil)
}

// DeleteEstoque removes a stock account.
func (c *Client) DeleteEstoque(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/estoque/%d", id), nil, nil, nil)
}

// ResolverAtencaoEstoque clears the attention flag on a stock account.
// The update is partial: only the flag goes in the body.
func (c *Client) ResolverAtencaoEstoque(ctx context.Context, id int64) error {
	p := struct {
		Atencao bool `json:"atencao"`
	}{Atencao: false}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/estoque/%d", id), nil, p, nil)
}
