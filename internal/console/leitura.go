package console

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// Read-only pages: suggestions, users and top-ups have no mutating
// endpoints, so their descriptors carry only Load and the filter
// predicate.

// NewSugestoesPage builds the customer-suggestion page.
func NewSugestoesPage(client *api.Client, nc *notify.Center, log *zap.Logger) *Page[models.Sugestao, struct{}] {
	return NewPage(Descriptor[models.Sugestao, struct{}]{
		Resource: "sugestoes",
		Load: func(ctx context.Context, _ Filter) ([]models.Sugestao, error) {
			return client.ListSugestoes(ctx)
		},
		ID:    func(s models.Sugestao) int64 { return s.ID },
		Label: func(s models.Sugestao) string { return s.Texto },
		Match: func(s models.Sugestao, f Filter) bool {
			return matchQuery(f.Query, s.UsuarioNome, s.Texto)
		},
	}, nc, log)
}

// NewUsuariosPage builds the customer-account page.
func NewUsuariosPage(client *api.Client, nc *notify.Center, log *zap.Logger) *Page[models.Usuario, struct{}] {
	return NewPage(Descriptor[models.Usuario, struct{}]{
		Resource: "usuarios",
		Load: func(ctx context.Context, _ Filter) ([]models.Usuario, error) {
			return client.ListUsuarios(ctx)
		},
		ID:    func(u models.Usuario) int64 { return u.ID },
		Label: func(u models.Usuario) string { return u.Nome },
		Match: func(u models.Usuario, f Filter) bool {
			return matchQuery(f.Query, u.Nome, u.Email)
		},
	}, nc, log)
}

// NewRecargasPage builds the top-up transaction page.
func NewRecargasPage(client *api.Client, nc *notify.Center, log *zap.Logger) *Page[models.Recarga, struct{}] {
	return NewPage(Descriptor[models.Recarga, struct{}]{
		Resource: "recargas",
		Load: func(ctx context.Context, _ Filter) ([]models.Recarga, error) {
			return client.ListRecargas(ctx)
		},
		ID:    func(r models.Recarga) int64 { return r.ID },
		Label: func(r models.Recarga) string { return strconv.FormatInt(r.ID, 10) },
		Match: func(r models.Recarga, f Filter) bool {
			if f.Status != "" && r.Status != f.Status {
				return false
			}
			return matchQuery(f.Query, r.UsuarioNome, r.Metodo)
		},
	}, nc, log)
}
