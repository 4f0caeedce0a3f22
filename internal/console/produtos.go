package console

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// ProdutoDraft is the product form's uncommitted values.
type ProdutoDraft struct {
	Nome          string  `json:"nome"`
	Descricao     string  `json:"descricao"`
	Categoria     string  `json:"categoria"`
	Preco         float64 `json:"preco"`
	Duracao       int     `json:"duracao_dias"`
	EntregaManual bool    `json:"entrega_manual"`
	Ativo         bool    `json:"ativo"`
}

// NewProdutosPage builds the catalog management page.
func NewProdutosPage(client *api.Client, nc *notify.Center, log *zap.Logger) *Page[models.Produto, ProdutoDraft] {
	desc := Descriptor[models.Produto, ProdutoDraft]{
		Resource: "produtos",
		Load: func(ctx context.Context, _ Filter) ([]models.Produto, error) {
			return client.ListProdutos(ctx)
		},
		Create: func(ctx context.Context, d ProdutoDraft) error {
			return client.CreateProduto(ctx, produtoPayload(d))
		},
		Update: func(ctx context.Context, id int64, d ProdutoDraft) error {
			return client.UpdateProduto(ctx, id, produtoPayload(d))
		},
		Delete: client.DeleteProduto,
		ID:     func(p models.Produto) int64 { return p.ID },
		Label:  func(p models.Produto) string { return p.Nome },
		Match: func(p models.Produto, f Filter) bool {
			if f.Status == "ativo" && !p.Ativo {
				return false
			}
			if f.Status == "inativo" && p.Ativo {
				return false
			}
			return matchQuery(f.Query, p.Nome, p.Categoria)
		},
		Defaults: func() ProdutoDraft {
			return ProdutoDraft{Ativo: true, Duracao: 30}
		},
		DraftFrom: func(p models.Produto) ProdutoDraft {
			return ProdutoDraft{
				Nome:          p.Nome,
				Descricao:     p.Descricao,
				Categoria:     p.Categoria,
				Preco:         p.Preco,
				Duracao:       p.Duracao,
				EntregaManual: p.EntregaManual,
				Ativo:         p.Ativo,
			}
		},
		Validate: func(_ FormMode, d ProdutoDraft) error {
			if strings.TrimSpace(d.Nome) == "" {
				return errors.New("informe o nome do produto")
			}
			if d.Preco <= 0 {
				return errors.New("o preço deve ser maior que zero")
			}
			return nil
		},
	}
	return NewPage(desc, nc, log)
}

func produtoPayload(d ProdutoDraft) models.ProdutoPayload {
	return models.ProdutoPayload{
		Nome:          d.Nome,
		Descricao:     d.Descricao,
		Categoria:     d.Categoria,
		Preco:         d.Preco,
		Duracao:       d.Duracao,
		EntregaManual: d.EntregaManual,
		Ativo:         d.Ativo,
	}
}

// matchQuery reports whether the query is a case-insensitive substring of
// any of the given display fields. An empty query matches everything.
func matchQuery(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
