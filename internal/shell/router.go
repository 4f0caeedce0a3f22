package shell

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs the console's route table. The login and logout
// endpoints plus the notification feed are public; everything else sits
// behind the session gate. Paths mirror the backend resource names so the
// side menu maps one-to-one onto routes.
func NewRouter(s *Shell) http.Handler {
	r := chi.NewRouter()

	r.Use(WithRequestLogging(s.Log))

	r.Get(LoginPath, s.handleSession)
	r.Post(LoginPath, s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/sessao", s.handleSession)
	r.Get("/notificacoes", s.handleNotifications)
	r.Delete("/notificacoes/{id}", s.handleDismissNotification)

	r.Group(func(r chi.Router) {
		r.Use(RequireSession(s.Session))

		r.Get("/menu", s.handleMenu)
		r.Get("/dashboard", s.handleDashboard)

		r.Route("/produtos", func(r chi.Router) {
			r.Get("/", listHandler(s.Produtos))
			r.Post("/", createHandler(s.Produtos))
			r.Put("/{id}", updateHandler(s.Produtos))
			r.Delete("/{id}", deleteHandler(s.Produtos))
		})

		r.Route("/estoque", func(r chi.Router) {
			r.Get("/", listHandler(s.Estoque.Page))
			r.Post("/", createHandler(s.Estoque.Page))
			r.Put("/{id}", updateHandler(s.Estoque.Page))
			r.Delete("/{id}", deleteHandler(s.Estoque.Page))
		})

		r.Route("/contas-mae", func(r chi.Router) {
			r.Get("/", listHandler(s.ContasMae.Page))
			r.Post("/", createHandler(s.ContasMae.Page))
			r.Put("/{id}", updateHandler(s.ContasMae.Page))
			r.Delete("/{id}", deleteHandler(s.ContasMae.Page))
			r.Get("/{id}", s.handleContaMaeDetail)
			r.Post("/{id}/convites", s.handleAddConvite)
			r.Delete("/{id}/convites/{convite}", s.handleRemoveConvite)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", listHandler(s.Tickets.Page))
			r.Get("/{id}", s.handleTicketDetail)
			r.Post("/{id}/resolver", s.handleTicketResolver)
			r.Post("/{id}/atencao-resolvida", s.handleTicketAtencao)
		})

		r.Route("/giftcards", func(r chi.Router) {
			r.Get("/", s.handleGiftCardsList)
			r.Post("/", s.handleGiftCardsCreate)
			r.Delete("/codigos", s.handleGiftCardsDismiss)
			r.Delete("/{id}", deleteHandler(s.GiftCards.Page))
		})

		r.Get("/sugestoes", listHandler(s.Sugestoes))

		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", listHandler(s.Pedidos.Page))
			r.Get("/{id}", s.handlePedidoDetail)
			r.Post("/{id}/entregar", s.handlePedidoEntregar)
		})

		r.Get("/usuarios", listHandler(s.Usuarios))
		r.Get("/recargas", listHandler(s.Recargas))

		r.Get("/configuracoes", s.handleConfiguracoes)
		r.Put("/configuracoes", s.handleConfiguracoesSave)
	})

	return r
}
