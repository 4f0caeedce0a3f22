package shell

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/console"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
	"github.com/contasplay/painel-admin/internal/session"
)

// Shell bundles the session store, the API client and the ten page
// controllers behind the route table.
type Shell struct {
	Session *session.Store
	Client  *api.Client
	Notify  *notify.Center
	Log     *zap.Logger

	Dashboard     *console.DashboardPage
	Produtos      *console.Page[models.Produto, console.ProdutoDraft]
	Estoque       *console.EstoquePage
	ContasMae     *console.ContasMaePage
	Tickets       *console.TicketsPage
	GiftCards     *console.GiftCardsPage
	Pedidos       *console.PedidosPage
	Sugestoes     *console.Page[models.Sugestao, struct{}]
	Usuarios      *console.Page[models.Usuario, struct{}]
	Recargas      *console.Page[models.Recarga, struct{}]
	Configuracoes *console.ConfiguracoesPage
}

// MenuEntry is one row of the persistent side menu.
type MenuEntry struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// Menu is the route table shown in the side menu, in display order.
func Menu() []MenuEntry {
	return []MenuEntry{
		{Path: "/dashboard", Title: "Dashboard"},
		{Path: "/produtos", Title: "Produtos"},
		{Path: "/estoque", Title: "Estoque"},
		{Path: "/contas-mae", Title: "Contas-mãe"},
		{Path: "/tickets", Title: "Tickets"},
		{Path: "/giftcards", Title: "Gift Cards"},
		{Path: "/sugestoes", Title: "Sugestões"},
		{Path: "/pedidos", Title: "Pedidos"},
		{Path: "/usuarios", Title: "Usuários"},
		{Path: "/recargas", Title: "Recargas"},
		{Path: "/configuracoes", Title: "Configurações"},
	}
}

// writeJSON renders v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
