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

// ContaMaeDraft is the parent-account form's uncommitted values. Senha
// follows edit-without-reveal: blank on edit means "leave unchanged".
type ContaMaeDraft struct {
	Servico       string `json:"servico"`
	Email         string `json:"email"`
	Senha         string `json:"senha"`
	VagasMax      int    `json:"vagas_max"`
	DiasRestantes *int   `json:"dias_restantes"`
}

// ContasMaePage manages parent accounts, including the detail pane with
// its invite list.
type ContasMaePage struct {
	*Page[models.ContaMae, ContaMaeDraft]

	// Detail shows one parent account with its invites.
	Detail *DetailPane[models.ContaMae]

	client *api.Client
}

// NewContasMaePage builds the parent-account management page.
func NewContasMaePage(client *api.Client, nc *notify.Center, log *zap.Logger) *ContasMaePage {
	cp := &ContasMaePage{client: client}

	desc := Descriptor[models.ContaMae, ContaMaeDraft]{
		Resource: "contas-mae",
		Load: func(ctx context.Context, _ Filter) ([]models.ContaMae, error) {
			return client.ListContasMae(ctx)
		},
		Create: func(ctx context.Context, d ContaMaeDraft) error {
			return client.CreateContaMae(ctx, models.ContaMaeCreate{
				Servico:       d.Servico,
				Email:         d.Email,
				Senha:         d.Senha,
				VagasMax:      d.VagasMax,
				DiasRestantes: d.DiasRestantes,
			})
		},
		Update: func(ctx context.Context, id int64, d ContaMaeDraft) error {
			return client.UpdateContaMae(ctx, id, models.ContaMaeUpdate{
				Servico:       d.Servico,
				Email:         d.Email,
				Senha:         d.Senha,
				VagasMax:      d.VagasMax,
				DiasRestantes: d.DiasRestantes,
			})
		},
		Delete: client.DeleteContaMae,
		ID:     func(c models.ContaMae) int64 { return c.ID },
		Label:  func(c models.ContaMae) string { return c.Email },
		Match: func(c models.ContaMae, f Filter) bool {
			return matchQuery(f.Query, c.Email, c.Servico)
		},
		Defaults: func() ContaMaeDraft {
			return ContaMaeDraft{VagasMax: 1}
		},
		DraftFrom: func(c models.ContaMae) ContaMaeDraft {
			return ContaMaeDraft{
				Servico:       c.Servico,
				Email:         c.Email,
				Senha:         "",
				VagasMax:      c.VagasMax,
				DiasRestantes: c.DiasRestantes,
			}
		},
		Validate: func(mode FormMode, d ContaMaeDraft) error {
			if strings.TrimSpace(d.Servico) == "" {
				return errors.New("informe o serviço da conta")
			}
			if strings.TrimSpace(d.Email) == "" {
				return errors.New("informe o e-mail da conta")
			}
			if d.VagasMax < 1 {
				return errors.New("o número de vagas deve ser no mínimo 1")
			}
			if mode == FormCreate && d.Senha == "" {
				return errors.New("informe a senha da nova conta")
			}
			return nil
		},
	}

	cp.Page = NewPage(desc, nc, log)
	cp.Detail = NewDetailPane(client.GetContaMae, nc, log)
	return cp
}

// AddConvite registers an invite e-mail on the open parent account, then
// reloads both the detail payload and the list.
func (cp *ContasMaePage) AddConvite(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		err := errors.New("informe o e-mail do convite")
		cp.Detail.notify.Warning(err.Error())
		return err
	}
	id := cp.Detail.ID()
	return cp.Detail.Run(ctx, "add-convite", "convite adicionado",
		func(ctx context.Context) error {
			return cp.client.AddConvite(ctx, id, email)
		},
		cp.Reload,
	)
}

// RemoveConvite removes an invite from the open parent account, then
// reloads both the detail payload and the list.
func (cp *ContasMaePage) RemoveConvite(ctx context.Context, conviteID int64) error {
	id := cp.Detail.ID()
	return cp.Detail.Run(ctx, "remove-convite", "convite removido",
		func(ctx context.Context) error {
			return cp.client.DeleteConvite(ctx, id, conviteID)
		},
		cp.Reload,
	)
}
