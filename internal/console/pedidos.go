package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// PedidosPage shows customer orders. The list is read-only; the detail
// pane offers manual credential delivery for manual-delivery orders.
type PedidosPage struct {
	*Page[models.Pedido, struct{}]

	// Detail shows the richer order payload.
	Detail *DetailPane[models.PedidoDetalhes]

	client *api.Client
}

// NewPedidosPage builds the order management page.
func NewPedidosPage(client *api.Client, nc *notify.Center, log *zap.Logger) *PedidosPage {
	pp := &PedidosPage{client: client}

	desc := Descriptor[models.Pedido, struct{}]{
		Resource: "pedidos",
		Load: func(ctx context.Context, _ Filter) ([]models.Pedido, error) {
			return client.ListPedidos(ctx)
		},
		ID:    func(p models.Pedido) int64 { return p.ID },
		Label: func(p models.Pedido) string { return fmt.Sprintf("pedido #%d", p.ID) },
		Match: func(p models.Pedido, f Filter) bool {
			if f.Status != "" && p.Status != f.Status {
				return false
			}
			return matchQuery(f.Query, p.UsuarioNome, p.ProdutoNome, strconv.FormatInt(p.ID, 10))
		},
	}

	pp.Page = NewPage(desc, nc, log)
	pp.Detail = NewDetailPane(client.GetPedidoDetalhes, nc, log)
	return pp
}

// Entregar delivers credentials for the open order. Only manual-delivery
// orders accept it, and the credentials may not be blank.
func (pp *PedidosPage) Entregar(ctx context.Context, credenciais string) error {
	pedido := pp.Detail.Record()
	if pedido == nil {
		return ErrNotFound
	}
	if !pedido.EntregaManual {
		err := errors.New("este pedido não é de entrega manual")
		pp.Detail.notify.Warning(err.Error())
		return err
	}
	if strings.TrimSpace(credenciais) == "" {
		err := errors.New("informe as credenciais a entregar")
		pp.Detail.notify.Warning(err.Error())
		return err
	}

	return pp.Detail.Run(ctx, "entregar", "credenciais entregues",
		func(ctx context.Context) error {
			return pp.client.EntregarPedido(ctx, pedido.ID, credenciais)
		},
		pp.Reload,
	)
}
