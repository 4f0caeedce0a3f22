package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// ListProdutos fetches the product catalog.
func (c *Client) ListProdutos(ctx context.Context) ([]models.Produto, error) {
	var out []models.Produto
	err := c.do(ctx, http.MethodGet, "/admin/produtos/", nil, nil, &out)
	return out, err
}

// CreateProduto creates a catalog product.
func (c *Client) CreateProduto(ctx context.Context, p models.ProdutoPayload) error {
	return c.do(ctx, http.MethodPost, "/admin/produtos/", nil, p, nil)
}

// UpdateProduto partially updates a catalog product.
func (c *Client) UpdateProduto(ctx context.Context, id int64, p models.ProdutoPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/produtos/%d", id), nil, p, nil)
}

// DeleteProduto removes a catalog product.
func (c *Client) DeleteProduto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/produtos/%d", id), nil, nil, nil)
}
