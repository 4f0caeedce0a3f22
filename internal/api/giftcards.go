package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/contasplay/painel-admin/internal/models"
)

// ListGiftCards fetches gift codes. usado filters server-side when non-nil;
// the giftcards endpoint accepts the used-flag natively.
func (c *Client) ListGiftCards(ctx context.Context, usado *bool) ([]models.GiftCard, error) {
	var query url.Values
	if usado != nil {
		query = url.Values{"usado": {fmt.Sprintf("%t", *usado)}}
	}
	var out []models.GiftCard
	err := c.do(ctx, http.MethodGet, "/admin/giftcards/", query, nil, &out)
	return out, err
}

// CreateGiftCards creates a batch of gift codes and returns the generated
// codes. The caller must surface them: they cannot be fetched again.
func (c *Client) CreateGiftCards(ctx context.Context, p models.GiftCardLote) ([]string, error) {
	var out models.GiftCardLoteResult
	if err := c.do(ctx, http.MethodPost, "/admin/giftcards/", nil, p, &out); err != nil {
		return nil, err
	}
	return out.Codigos, nil
}

// DeleteGiftCard removes an unused gift code.
func (c *Client) DeleteGiftCard(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/giftcards/%d", id), nil, nil, nil)
}
