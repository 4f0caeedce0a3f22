package api

import (
	"context"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// GetKPIs fetches the dashboard headline numbers.
func (c *Client) GetKPIs(ctx context.Context) (models.KPIs, error) {
	var out models.KPIs
	err := c.do(ctx, http.MethodGet, "/admin/dashboard/kpis", nil, nil, &out)
	return out, err
}

// GetTopProdutos fetches the dashboard best-sellers table.
func (c *Client) GetTopProdutos(ctx context.Context) ([]models.TopProduto, error) {
	var out []models.TopProduto
	err := c.do(ctx, http.MethodGet, "/admin/dashboard/top-produtos", nil, nil, &out)
	return out, err
}
