package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contasplay/painel-admin/internal/models"
)

// ListPedidos fetches customer orders.
func (c *Client) ListPedidos(ctx context.Context) ([]models.Pedido, error) {
	var out []models.Pedido
	err := c.do(ctx, http.MethodGet, "/admin/pedidos/", nil, nil, &out)
	return out, err
}

// GetPedidoDetalhes fetches the richer payload behind one order.
func (c *Client) GetPedidoDetalhes(ctx context.Context, id int64) (models.PedidoDetalhes, error) {
	var out models.PedidoDetalhes
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/pedidos/%d/detalhes", id), nil, nil, &out)
	return out, err
}

// EntregarPedido delivers credentials for a manual-delivery order.
func (c *Client) EntregarPedido(ctx context.Context, id int64, credenciais string) error {
	p := models.EntregaPayload{Credenciais: credenciais}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/pedidos/%d/entregar", id), nil, p, nil)
}
