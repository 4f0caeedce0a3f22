package api

import (
	"context"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// GetConfiguracoes fetches the singleton store configuration.
func (c *Client) GetConfiguracoes(ctx context.Context) (models.Configuracoes, error) {
	var out models.Configuracoes
	err := c.do(ctx, http.MethodGet, "/admin/configuracoes", nil, nil, &out)
	return out, err
}

// UpdateConfiguracoes saves the store configuration and returns the
// updated record as stored by the backend.
func (c *Client) UpdateConfiguracoes(ctx context.Context, p models.Configuracoes) (models.Configuracoes, error) {
	var out models.Configuracoes
	err := c.do(ctx, http.MethodPut, "/admin/configuracoes", nil, p, &out)
	return out, err
}
