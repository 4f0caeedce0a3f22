package shell

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/contasplay/painel-admin/internal/console"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/session"
)

// handleLogin exchanges credentials for a session. Every failure renders
// the same generic message; the backend's detail stays in the logs.
func (s *Shell) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "requisição inválida"})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "informe usuário e senha"})
		return
	}

	err := s.Session.Login(r.Context(), s.Client, username, password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, session.ErrLoginInFlight):
		writeJSON(w, http.StatusConflict, map[string]string{"detail": err.Error()})
	default:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": session.ErrLoginFailed.Error()})
	}
}

// handleLogout clears the session and the persisted token.
func (s *Shell) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Session.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSession reports the session state for the top bar.
func (s *Shell) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"state":         s.Session.State().String(),
		"authenticated": s.Session.IsAuthenticated(),
	})
}

// handleNotifications returns the active toasts in insertion order.
func (s *Shell) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Notify.Active())
}

// handleDismissNotification removes one toast before it expires.
func (s *Shell) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
		return
	}
	s.Notify.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleMenu returns the side menu's route table.
func (s *Shell) handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Menu())
}

// handleDashboard loads and renders the dashboard.
func (s *Shell) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.Dashboard.Reload(r.Context())
	writeJSON(w, http.StatusOK, s.Dashboard.State())
}

// filterFromQuery reads the list filter from the query string.
func filterFromQuery(r *http.Request) console.Filter {
	return console.Filter{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// statusFor maps a page-level failure to an HTTP status. The page already
// notified the operator; the status only steers the JSON consumer.
func statusFor(err error) int {
	switch {
	case errors.Is(err, console.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, console.ErrReadOnly):
		return http.StatusMethodNotAllowed
	case errors.Is(err, console.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// listHandler applies the query filter, reloads and renders a page.
func listHandler[T, D any](p *console.Page[T, D]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.SetFilter(filterFromQuery(r))
		p.Reload(r.Context())
		writeJSON(w, http.StatusOK, p.State())
	}
}

// createHandler runs the create form flow: open, fill, submit.
func createHandler[T, D any](p *console.Page[T, D]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft D
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
			return
		}
		if err := p.OpenCreate(); err != nil {
			writeJSON(w, statusFor(err), p.State())
			return
		}
		p.SetDraft(draft)
		if err := p.Submit(r.Context()); err != nil {
			writeJSON(w, statusFor(err), p.State())
			return
		}
		writeJSON(w, http.StatusCreated, p.State())
	}
}

// updateHandler runs the edit form flow against a cached record.
func updateHandler[T, D any](p *console.Page[T, D]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r, "id")
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
			return
		}
		var draft D
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
			return
		}
		if err := p.OpenEdit(id); err != nil {
			writeJSON(w, statusFor(err), p.State())
			return
		}
		p.SetDraft(draft)
		if err := p.Submit(r.Context()); err != nil {
			writeJSON(w, statusFor(err), p.State())
			return
		}
		writeJSON(w, http.StatusOK, p.State())
	}
}

// deleteHandler runs the confirmation flow: select, confirm, reload.
func deleteHandler[T, D any](p *console.Page[T, D]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r, "id")
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
			return
		}
		if err := p.RequestDelete(id); err != nil {
			writeJSON(w, statusFor(err), p.State())
			return
		}
		if err := p.ConfirmDelete(r.Context()); err != nil {
			writeJSON(w, statusFor(err), p.State())
			return
		}
		writeJSON(w, http.StatusOK, p.State())
	}
}

// --- contas-mãe detail ---

func (s *Shell) handleContaMaeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
		return
	}
	if err := s.ContasMae.Detail.Open(r.Context(), id); err != nil {
		writeJSON(w, statusFor(err), s.ContasMae.Detail.State())
		return
	}
	writeJSON(w, http.StatusOK, s.ContasMae.Detail.State())
}

func (s *Shell) handleAddConvite(w http.ResponseWriter, r *http.Request) {
	var body models.ConvitePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
		return
	}
	if err := s.ContasMae.AddConvite(r.Context(), body.Email); err != nil {
		writeJSON(w, statusFor(err), s.ContasMae.Detail.State())
		return
	}
	writeJSON(w, http.StatusOK, s.ContasMae.Detail.State())
}

func (s *Shell) handleRemoveConvite(w http.ResponseWriter, r *http.Request) {
	conviteID, ok := urlID(r, "convite")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
		return
	}
	if err := s.ContasMae.RemoveConvite(r.Context(), conviteID); err != nil {
		writeJSON(w, statusFor(err), s.ContasMae.Detail.State())
		return
	}
	writeJSON(w, http.StatusOK, s.ContasMae.Detail.State())
}

// --- tickets detail ---

// ticketDetailView decorates the ticket payload with the actions the
// operator may take on it.
type ticketDetailView struct {
	console.DetailState[models.Ticket]
	Resolutions []string `json:"resolutions,omitempty"`
}

func (s *Shell) ticketView() ticketDetailView {
	view := ticketDetailView{DetailState: s.Tickets.Detail.State()}
	if view.Record != nil {
		view.Resolutions = console.Resolutions(*view.Record)
	}
	return view
}

func (s *Shell) handleTicketDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
		return
	}
	if err := s.Tickets.Detail.Open(r.Context(), id); err != nil {
		writeJSON(w, statusFor(err), s.ticketView())
		return
	}
	writeJSON(w, http.StatusOK, s.ticketView())
}

func (s *Shell) handleTicketResolver(w http.ResponseWriter, r *http.Request) {
	var body models.TicketResolucao
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
		return
	}
	if err := s.Tickets.Resolver(r.Context(), body.Acao, body.Mensagem); err != nil {
		writeJSON(w, statusFor(err), s.ticketView())
		return
	}
	writeJSON(w, http.StatusOK, s.ticketView())
}

func (s *Shell) handleTicketAtencao(w http.ResponseWriter, r *http.Request) {
	if err := s.Tickets.ResolverAtencao(r.Context()); err != nil {
		writeJSON(w, statusFor(err), s.ticketView())
		return
	}
	writeJSON(w, http.StatusOK, s.ticketView())
}

// --- gift cards ---

// giftCardsView decorates the page state with the last generated codes.
type giftCardsView struct {
	console.PageState[models.GiftCard, console.GiftCardDraft]
	UltimosCodigos []string `json:"ultimos_codigos,omitempty"`
}

func (s *Shell) giftCardsState() giftCardsView {
	return giftCardsView{
		PageState:      s.GiftCards.State(),
		UltimosCodigos: s.GiftCards.UltimosCodigos(),
	}
}

func (s *Shell) handleGiftCardsList(w http.ResponseWriter, r *http.Request) {
	s.GiftCards.SetFilter(filterFromQuery(r))
	s.GiftCards.Reload(r.Context())
	writeJSON(w, http.StatusOK, s.giftCardsState())
}

func (s *Shell) handleGiftCardsCreate(w http.ResponseWriter, r *http.Request) {
	var draft console.GiftCardDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
		return
	}
	if err := s.GiftCards.OpenCreate(); err != nil {
		writeJSON(w, statusFor(err), s.giftCardsState())
		return
	}
	s.GiftCards.SetDraft(draft)
	if err := s.GiftCards.Submit(r.Context()); err != nil {
		writeJSON(w, statusFor(err), s.giftCardsState())
		return
	}
	writeJSON(w, http.StatusCreated, s.giftCardsState())
}

func (s *Shell) handleGiftCardsDismiss(w http.ResponseWriter, r *http.Request) {
	s.GiftCards.DispensarCodigos()
	w.WriteHeader(http.StatusNoContent)
}

// --- pedidos detail ---

func (s *Shell) handlePedidoDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "id inválido"})
		return
	}
	if err := s.Pedidos.Detail.Open(r.Context(), id); err != nil {
		writeJSON(w, statusFor(err), s.Pedidos.Detail.State())
		return
	}
	writeJSON(w, http.StatusOK, s.Pedidos.Detail.State())
}

func (s *Shell) handlePedidoEntregar(w http.ResponseWriter, r *http.Request) {
	var body models.EntregaPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
		return
	}
	if err := s.Pedidos.Entregar(r.Context(), body.Credenciais); err != nil {
		writeJSON(w, statusFor(err), s.Pedidos.Detail.State())
		return
	}
	writeJSON(w, http.StatusOK, s.Pedidos.Detail.State())
}

// --- configurações ---

func (s *Shell) handleConfiguracoes(w http.ResponseWriter, r *http.Request) {
	s.Configuracoes.Reload(r.Context())
	writeJSON(w, http.StatusOK, s.Configuracoes.State())
}

func (s *Shell) handleConfiguracoesSave(w http.ResponseWriter, r *http.Request) {
	var draft models.Configuracoes
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "corpo inválido"})
		return
	}
	if err := s.Configuracoes.Salvar(r.Context(), draft); err != nil {
		writeJSON(w, statusFor(err), s.Configuracoes.State())
		return
	}
	writeJSON(w, http.StatusOK, s.Configuracoes.State())
}
