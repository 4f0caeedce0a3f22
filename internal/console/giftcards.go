package console

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// GiftCardDraft is the batch-creation form's uncommitted values.
type GiftCardDraft struct {
	Valor               float64 `json:"valor"`
	Quantidade          int     `json:"quantidade"`
	CodigoPersonalizado string  `json:"codigo_personalizado"`
}

// GiftCardsPage manages gift codes. Creation is a batch operation whose
// response carries the generated codes; those are kept on the page until
// explicitly dismissed, because they cannot be fetched again. The used
// filter is sent to the server, which the giftcards endpoint accepts
// natively.
type GiftCardsPage struct {
	*Page[models.GiftCard, GiftCardDraft]

	mu      sync.Mutex
	codigos []string
}

// NewGiftCardsPage builds the gift-code management page.
func NewGiftCardsPage(client *api.Client, nc *notify.Center, log *zap.Logger) *GiftCardsPage {
	gp := &GiftCardsPage{}

	desc := Descriptor[models.GiftCard, GiftCardDraft]{
		Resource: "giftcards",
		Load: func(ctx context.Context, f Filter) ([]models.GiftCard, error) {
			var usado *bool
			switch f.Status {
			case "usado":
				v := true
				usado = &v
			case "disponivel":
				v := false
				usado = &v
			}
			return client.ListGiftCards(ctx, usado)
		},
		// A supplied custom code forces quantity to one, whatever the
		// quantity field says. The generated codes from the response are
		// the only copy in existence.
		Create: func(ctx context.Context, d GiftCardDraft) error {
			lote := models.GiftCardLote{
				Valor:               d.Valor,
				Quantidade:          d.Quantidade,
				CodigoPersonalizado: d.CodigoPersonalizado,
			}
			if lote.CodigoPersonalizado != "" {
				lote.Quantidade = 1
			}
			codigos, err := client.CreateGiftCards(ctx, lote)
			if err != nil {
				return err
			}
			gp.mu.Lock()
			gp.codigos = codigos
			gp.mu.Unlock()
			return nil
		},
		Delete: client.DeleteGiftCard,
		ID:     func(g models.GiftCard) int64 { return g.ID },
		Label:  func(g models.GiftCard) string { return g.Codigo },
		Match: func(g models.GiftCard, f Filter) bool {
			// Used-flag already filtered server-side.
			usadoPor := ""
			if g.UsadoPor != nil {
				usadoPor = *g.UsadoPor
			}
			return matchQuery(f.Query, g.Codigo, usadoPor)
		},
		Defaults: func() GiftCardDraft {
			return GiftCardDraft{Quantidade: 1}
		},
		Validate: func(_ FormMode, d GiftCardDraft) error {
			if d.Valor <= 0 {
				return errors.New("o valor do gift card deve ser maior que zero")
			}
			if d.Quantidade < 1 {
				return errors.New("a quantidade deve ser no mínimo 1")
			}
			return nil
		},
	}

	gp.Page = NewPage(desc, nc, log)
	return gp
}

// UltimosCodigos returns the codes generated by the last batch creation,
// in the order the backend returned them.
func (gp *GiftCardsPage) UltimosCodigos() []string {
	gp.mu.Lock()
	defer gp.mu.Unlock()
	out := make([]string, len(gp.codigos))
	copy(out, gp.codigos)
	return out
}

// DispensarCodigos clears the generated-codes panel once the operator has
// copied them.
func (gp *GiftCardsPage) DispensarCodigos() {
	gp.mu.Lock()
	defer gp.mu.Unlock()
	gp.codigos = nil
}
