package console

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
	"github.com/contasplay/painel-admin/internal/notify"
)

// ConfiguracoesPage manages the singleton store configuration. Unlike the
// list pages there is no collection: the PUT response carries the updated
// record, which replaces local state directly — the one place the cache
// is patched from a write instead of reloaded.
type ConfiguracoesPage struct {
	client *api.Client
	notify *notify.Center
	log    *zap.Logger

	mu      sync.Mutex
	atual   *models.Configuracoes
	loading bool
	loadErr string
	saving  bool
}

// ConfiguracoesState is a consistent snapshot for rendering.
type ConfiguracoesState struct {
	Atual     *models.Configuracoes `json:"atual,omitempty"`
	Loading   bool                  `json:"loading"`
	LoadError string                `json:"load_error,omitempty"`
	Saving    bool                  `json:"saving"`
}

// NewConfiguracoesPage builds the configuration page.
func NewConfiguracoesPage(client *api.Client, nc *notify.Center, log *zap.Logger) *ConfiguracoesPage {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConfiguracoesPage{client: client, notify: nc, log: log}
}

// Reload fetches the configuration, keeping the previous record visible
// when the fetch fails.
func (cp *ConfiguracoesPage) Reload(ctx context.Context) {
	cp.mu.Lock()
	cp.loading = true
	cp.mu.Unlock()

	cfg, err := cp.client.GetConfiguracoes(ctx)

	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.loading = false
	if err != nil {
		cp.loadErr = MsgLoadFailed
		cp.log.Warn("config load failed", zap.Error(err))
		return
	}
	cp.atual = &cfg
	cp.loadErr = ""
}

// Salvar validates and saves the configuration. The backend's response is
// the authoritative updated record and replaces local state.
func (cp *ConfiguracoesPage) Salvar(ctx context.Context, draft models.Configuracoes) error {
	if draft.PercentualIndicacao < 0 || draft.PercentualIndicacao > 100 {
		err := errors.New("o percentual de indicação deve estar entre 0 e 100")
		cp.notify.Warning(err.Error())
		return err
	}
	if draft.BonusIndicacao < 0 {
		err := errors.New("o bônus de indicação não pode ser negativo")
		cp.notify.Warning(err.Error())
		return err
	}

	cp.mu.Lock()
	if cp.saving {
		cp.mu.Unlock()
		return ErrBusy
	}
	cp.saving = true
	cp.mu.Unlock()

	updated, err := cp.client.UpdateConfiguracoes(ctx, draft)

	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.saving = false
	if err != nil {
		cp.notify.Error(api.ErrorText(err, MsgUnexpected))
		cp.log.Warn("config save failed", zap.Error(err))
		return err
	}
	cp.atual = &updated
	cp.notify.Success("configurações salvas com sucesso")
	return nil
}

// Atual returns the current configuration, nil before the first load.
func (cp *ConfiguracoesPage) Atual() *models.Configuracoes {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if cp.atual == nil {
		return nil
	}
	cfg := *cp.atual
	return &cfg
}

// State returns a consistent snapshot for rendering.
func (cp *ConfiguracoesPage) State() ConfiguracoesState {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	st := ConfiguracoesState{
		Loading:   cp.loading,
		LoadError: cp.loadErr,
		Saving:    cp.saving,
	}
	if cp.atual != nil {
		cfg := *cp.atual
		st.Atual = &cfg
	}
	return st
}
