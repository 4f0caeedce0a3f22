package console

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// EstoqueDraft is the stock-account form's uncommitted values. Senha is
// left blank when editing: blank means "leave unchanged", non-blank
// replaces the stored secret.
type EstoqueDraft struct {
	ProdutoID     int64  `json:"produto_id"`
	Email         string `json:"email"`
	Senha         string `json:"senha"`
	VagasMax      int    `json:"vagas_max"`
	DiasRestantes *int   `json:"dias_restantes"`
}

// EstoquePage manages the shared-account stock. Besides the generic CRUD
// state it resolves product names from the catalog, loaded together with
// the stock list in one all-or-nothing join.
type EstoquePage struct {
	*Page[models.ContaEstoque, EstoqueDraft]

	mu       sync.Mutex
	produtos map[int64]string
}

// NewEstoquePage builds the stock management page.
func NewEstoquePage(client *api.Client, nc *notify.Center, log *zap.Logger) *EstoquePage {
	ep := &EstoquePage{produtos: make(map[int64]string)}

	desc := Descriptor[models.ContaEstoque, EstoqueDraft]{
		Resource: "estoque",
		// Stock and catalog load concurrently; if either fails the whole
		// load fails and the partial result is discarded.
		Load: func(ctx context.Context, _ Filter) ([]models.ContaEstoque, error) {
			var (
				contas   []models.ContaEstoque
				catalogo []models.Produto
				contaErr error
				catErr   error
				wg       sync.WaitGroup
			)
			wg.Add(2)
			go func() {
				defer wg.Done()
				contas, contaErr = client.ListEstoque(ctx)
			}()
			go func() {
				defer wg.Done()
				catalogo, catErr = client.ListProdutos(ctx)
			}()
			wg.Wait()
			if contaErr != nil {
				return nil, contaErr
			}
			if catErr != nil {
				return nil, catErr
			}

			nomes := make(map[int64]string, len(catalogo))
			for _, p := range catalogo {
				nomes[p.ID] = p.Nome
			}
			ep.mu.Lock()
			ep.produtos = nomes
			ep.mu.Unlock()
			return contas, nil
		},
		Create: func(ctx context.Context, d EstoqueDraft) error {
			return client.CreateEstoque(ctx, models.ContaEstoqueCreate{
				ProdutoID:     d.ProdutoID,
				Email:         d.Email,
				Senha:         d.Senha,
				VagasMax:      d.VagasMax,
				DiasRestantes: d.DiasRestantes,
			})
		},
		// The update payload drops the immutable product reference and
		// omits the password entirely when the draft left it blank.
		Update: func(ctx context.Context, id int64, d EstoqueDraft) error {
			return client.UpdateEstoque(ctx, id, models.ContaEstoqueUpdate{
				Email:         d.Email,
				Senha:         d.Senha,
				VagasMax:      d.VagasMax,
				DiasRestantes: d.DiasRestantes,
			})
		},
		Delete: client.DeleteEstoque,
		ID:     func(c models.ContaEstoque) int64 { return c.ID },
		Label:  func(c models.ContaEstoque) string { return c.Email },
		Match: func(c models.ContaEstoque, f Filter) bool {
			if f.Status == "atencao" && !c.Atencao {
				return false
			}
			nome := ep.ProdutoNome(c.ProdutoID)
			return matchQuery(f.Query, c.Email, nome, strconv.FormatInt(c.ProdutoID, 10))
		},
		Defaults: func() EstoqueDraft {
			return EstoqueDraft{VagasMax: 1}
		},
		DraftFrom: func(c models.ContaEstoque) EstoqueDraft {
			return EstoqueDraft{
				ProdutoID:     c.ProdutoID,
				Email:         c.Email,
				Senha:         "",
				VagasMax:      c.VagasMax,
				DiasRestantes: c.DiasRestantes,
			}
		},
		Validate: func(mode FormMode, d EstoqueDraft) error {
			if strings.TrimSpace(d.Email) == "" {
				return errors.New("informe o e-mail da conta")
			}
			if d.VagasMax < 1 {
				return errors.New("o número de vagas deve ser no mínimo 1")
			}
			if mode == FormCreate {
				if d.ProdutoID == 0 {
					return errors.New("selecione o produto da conta")
				}
				if d.Senha == "" {
					return errors.New("informe a senha da nova conta")
				}
			}
			return nil
		},
	}

	ep.Page = NewPage(desc, nc, log)
	return ep
}

// ProdutoNome resolves a product name from the catalog loaded alongside
// the stock list. Unknown ids render as the bare id.
func (ep *EstoquePage) ProdutoNome(id int64) string {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	if nome, ok := ep.produtos[id]; ok {
		return nome
	}
	return strconv.FormatInt(id, 10)
}
