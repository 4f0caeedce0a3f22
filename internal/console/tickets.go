package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// TicketsPage manages support tickets. The list itself is read-only; all
// mutation happens through the three resolution actions in the detail
// pane. The status filter is sent to the server, which the tickets
// endpoint accepts natively.
type TicketsPage struct {
	*Page[models.Ticket, struct{}]

	// Detail shows one ticket and hosts the resolution actions.
	Detail *DetailPane[models.Ticket]

	client *api.Client
}

// NewTicketsPage builds the ticket management page.
func NewTicketsPage(client *api.Client, nc *notify.Center, log *zap.Logger) *TicketsPage {
	tp := &TicketsPage{client: client}

	desc := Descriptor[models.Ticket, struct{}]{
		Resource: "tickets",
		Load: func(ctx context.Context, f Filter) ([]models.Ticket, error) {
			return client.ListTickets(ctx, f.Status)
		},
		ID:    func(t models.Ticket) int64 { return t.ID },
		Label: func(t models.Ticket) string { return fmt.Sprintf("ticket #%d", t.ID) },
		Match: func(t models.Ticket, f Filter) bool {
			// Status already filtered server-side; only the free-text
			// query applies locally.
			return matchQuery(f.Query, t.UsuarioNome, t.Motivo, strconv.FormatInt(t.PedidoID, 10))
		},
	}

	tp.Page = NewPage(desc, nc, log)
	tp.Detail = NewDetailPane(client.GetTicket, nc, log)
	return tp
}

// Resolutions returns the actions available for a ticket. Swap is only
// offered when the ticket has an associated problem account;
// manual-delivery orders have none and therefore never offer it.
func Resolutions(t models.Ticket) []string {
	if t.ContaProblematica == nil {
		return []string{models.ResolucaoReembolso, models.ResolucaoFecharManual}
	}
	return []string{models.ResolucaoTrocarConta, models.ResolucaoReembolso, models.ResolucaoFecharManual}
}

// Resolver applies one of the three mutually exclusive resolutions to the
// open ticket, then reloads the detail and the list. Only close-manually
// carries the optional free-text message.
func (tp *TicketsPage) Resolver(ctx context.Context, acao, mensagem string) error {
	ticket := tp.Detail.Record()
	if ticket == nil {
		return ErrNotFound
	}

	switch acao {
	case models.ResolucaoTrocarConta:
		if ticket.ContaProblematica == nil {
			err := errors.New("este ticket não possui conta associada para troca")
			tp.Detail.notify.Warning(err.Error())
			return err
		}
		mensagem = ""
	case models.ResolucaoReembolso:
		mensagem = ""
	case models.ResolucaoFecharManual:
		// keeps the optional message
	default:
		return fmt.Errorf("resolução desconhecida: %q", acao)
	}

	return tp.Detail.Run(ctx, "resolver", "ticket resolvido",
		func(ctx context.Context) error {
			return tp.client.ResolverTicket(ctx, ticket.ID, models.TicketResolucao{
				Acao:     acao,
				Mensagem: mensagem,
			})
		},
		tp.Reload,
	)
}

// ResolverAtencao clears the attention flag on the open ticket's problem
// account.
func (tp *TicketsPage) ResolverAtencao(ctx context.Context) error {
	ticket := tp.Detail.Record()
	if ticket == nil {
		return ErrNotFound
	}
	if ticket.ContaProblematica == nil {
		err := errors.New("este ticket não possui conta associada")
		tp.Detail.notify.Warning(err.Error())
		return err
	}
	contaID := *ticket.ContaProblematica

	return tp.Detail.Run(ctx, "resolver-atencao", "conta marcada como resolvida",
		func(ctx context.Context) error {
			return tp.client.ResolverAtencaoEstoque(ctx, contaID)
		},
	)
}
