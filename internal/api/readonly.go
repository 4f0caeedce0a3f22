package api

import (
	"context"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// Read-only collections: suggestions, users and top-ups have no mutating
// endpoints on the admin surface.

// ListSugestoes fetches customer product suggestions.
func (c *Client) ListSugestoes(ctx context.Context) ([]models.Sugestao, error) {
	var out []models.Sugestao
	err := c.do(ctx, http.MethodGet, "/admin/sugestoes/", nil, nil, &out)
	return out, err
}

// ListUsuarios fetches customer accounts.
func (c *Client) ListUsuarios(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	err := c.do(ctx, http.MethodGet, "/admin/usuarios/", nil, nil, &out)
	return out, err
}

// ListRecargas fetches wallet top-up transactions.
func (c *Client) ListRecargas(ctx context.Context) ([]models.Recarga, error) {
	var out []models.Recarga
	err := c.do(ctx, http.MethodGet, "/admin/recargas/", nil, nil, &out)
	return out, err
}
