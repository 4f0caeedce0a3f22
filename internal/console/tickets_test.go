package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

func int64Ptr(v int64) *int64 { return &v }

func TestResolutions(t *testing.T) {
	tests := []struct {
		name   string
		ticket models.Ticket
		want   []string
	}{
		{
			name:   "with problem account",
			ticket: models.Ticket{ContaProblematica: int64Ptr(9)},
			want:   []string{models.ResolucaoTrocarConta, models.ResolucaoReembolso, models.ResolucaoFecharManual},
		},
		{
			name:   "manual delivery, no account",
			ticket: models.Ticket{ContaProblematica: nil},
			want:   []string{models.ResolucaoReembolso, models.ResolucaoFecharManual},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolutions(tt.ticket))
		})
	}
}

// ticketServer serves one ticket plus the resolver endpoint, recording
// resolution payloads.
func ticketServer(t *testing.T, ticket models.Ticket, resolved *[]models.TicketResolucao) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == fmt.Sprintf("/admin/tickets/%d", ticket.ID):
			_ = json.NewEncoder(w).Encode(ticket)
		case r.Method == http.MethodGet && r.URL.Path == "/admin/tickets/":
			_ = json.NewEncoder(w).Encode([]models.Ticket{ticket})
		case r.Method == http.MethodPost && r.URL.Path == fmt.Sprintf("/admin/tickets/%d/resolver", ticket.ID):
			var p models.TicketResolucao
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			*resolved = append(*resolved, p)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("{}"))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestTicketResolverSwapRequiresAccount(t *testing.T) {
	var resolved []models.TicketResolucao
	ticket := models.Ticket{ID: 5, Motivo: "não funciona", ContaProblematica: nil}
	srv := ticketServer(t, ticket, &resolved)
	defer srv.Close()

	client := api.New(srv.URL, staticToken("tok"))
	nc := notify.NewCenter(notify.WithTTL(time.Hour))
	tp := NewTicketsPage(client, nc, nil)

	require.NoError(t, tp.Detail.Open(context.Background(), 5))

	err := tp.Resolver(context.Background(), models.ResolucaoTrocarConta, "")
	require.Error(t, err)
	assert.Empty(t, resolved, "swap without an account must not reach the network")

	toasts := nc.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.VariantWarning, toasts[0].Variant)
}

func TestTicketResolverCloseManuallyKeepsMessage(t *testing.T) {
	var resolved []models.TicketResolucao
	ticket := models.Ticket{ID: 5, ContaProblematica: int64Ptr(3)}
	srv := ticketServer(t, ticket, &resolved)
	defer srv.Close()

	client := api.New(srv.URL, staticToken("tok"))
	tp := NewTicketsPage(client, notify.NewCenter(notify.WithTTL(time.Hour)), nil)

	require.NoError(t, tp.Detail.Open(context.Background(), 5))
	require.NoError(t, tp.Resolver(context.Background(), models.ResolucaoFecharManual, "resolvido por telefone"))

	require.Len(t, resolved, 1)
	assert.Equal(t, models.ResolucaoFecharManual, resolved[0].Acao)
	assert.Equal(t, "resolvido por telefone", resolved[0].Mensagem)
}

func TestTicketResolverDropsMessageForOtherActions(t *testing.T) {
	var resolved []models.TicketResolucao
	ticket := models.Ticket{ID: 5, ContaProblematica: int64Ptr(3)}
	srv := ticketServer(t, ticket, &resolved)
	defer srv.Close()

	client := api.New(srv.URL, staticToken("tok"))
	tp := NewTicketsPage(client, notify.NewCenter(notify.WithTTL(time.Hour)), nil)

	require.NoError(t, tp.Detail.Open(context.Background(), 5))
	require.NoError(t, tp.Resolver(context.Background(), models.ResolucaoReembolso, "ignorada"))

	require.Len(t, resolved, 1)
	assert.Empty(t, resolved[0].Mensagem, "only close-manually carries a message")
}

func TestTicketResolverUnknownAction(t *testing.T) {
	var resolved []models.TicketResolucao
	ticket := models.Ticket{ID: 5}
	srv := ticketServer(t, ticket, &resolved)
	defer srv.Close()

	client := api.New(srv.URL, staticToken("tok"))
	tp := NewTicketsPage(client, notify.NewCenter(), nil)

	require.NoError(t, tp.Detail.Open(context.Background(), 5))
	require.Error(t, tp.Resolver(context.Background(), "explodir", ""))
	assert.Empty(t, resolved)
}

func TestTicketStatusFilterIsServerSide(t *testing.T) {
	var statusParam string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statusParam = r.URL.Query().Get("status")
		_ = json.NewEncoder(w).Encode([]models.Ticket{})
	}))
	defer srv.Close()

	client := api.New(srv.URL, staticToken("tok"))
	tp := NewTicketsPage(client, notify.NewCenter(), nil)

	tp.SetFilter(Filter{Status: "aberto"})
	tp.Reload(context.Background())
	assert.Equal(t, "aberto", statusParam)
}
