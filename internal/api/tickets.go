package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/contasplay/painel-admin/internal/models"
)

// ListTickets fetches support tickets. status filters server-side when
// non-empty ("aberto" or "resolvido"); the tickets endpoint accepts it
// natively.
func (c *Client) ListTickets(ctx context.Context, status string) ([]models.Ticket, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	var out []models.Ticket
	err := c.do(ctx, http.MethodGet, "/admin/tickets/", query, nil, &out)
	return out, err
}

// GetTicket fetches one ticket by id.
func (c *Client) GetTicket(ctx context.Context, id int64) (models.Ticket, error) {
	var out models.Ticket
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/tickets/%d", id), nil, nil, &out)
	return out, err
}

// ResolverTicket resolves a ticket with one of the three actions.
func (c *Client) ResolverTicket(ctx context.Context, id int64, p models.TicketResolucao) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/tickets/%d/resolver", id), nil, p, nil)
}
