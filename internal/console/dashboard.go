package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
)

// DashboardPage loads the KPI headline numbers and the best-sellers table
// together. The two fetches run concurrently and join all-or-nothing: if
// either fails, both results are discarded and the page shows its error
// banner over the previous data.
type DashboardPage struct {
	client *api.Client
	log    *zap.Logger

	mu      sync.Mutex
	kpis    *models.KPIs
	top     []models.TopProduto
	loading bool
	loadErr string
}

// DashboardState is a consistent snapshot for rendering.
type DashboardState struct {
	KPIs        *models.KPIs        `json:"kpis,omitempty"`
	TopProdutos []models.TopProduto `json:"top_produtos,omitempty"`
	Loading     bool                `json:"loading"`
	LoadError   string              `json:"load_error,omitempty"`
}

// NewDashboardPage builds the dashboard page.
func NewDashboardPage(client *api.Client, log *zap.Logger) *DashboardPage {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardPage{client: client, log: log}
}

// Reload fetches both dashboard payloads concurrently.
func (dp *DashboardPage) Reload(ctx context.Context) {
	dp.mu.Lock()
	dp.loading = true
	dp.mu.Unlock()

	var (
		kpis   models.KPIs
		top    []models.TopProduto
		kpiErr error
		topErr error
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		kpis, kpiErr = dp.client.GetKPIs(ctx)
	}()
	go func() {
		defer wg.Done()
		top, topErr = dp.client.GetTopProdutos(ctx)
	}()
	wg.Wait()

	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.loading = false
	if kpiErr != nil || topErr != nil {
		dp.loadErr = MsgLoadFailed
		dp.log.Warn("dashboard load failed",
			zap.NamedError("kpis", kpiErr),
			zap.NamedError("top_produtos", topErr),
		)
		return
	}
	dp.kpis = &kpis
	dp.top = top
	dp.loadErr = ""
}

// State returns a consistent snapshot for rendering.
func (dp *DashboardPage) State() DashboardState {
	dp.mu.Lock()
	defer dp.mu.Unlock()

	st := DashboardState{Loading: dp.loading, LoadError: dp.loadErr}
	if dp.kpis != nil {
		kpis := *dp.kpis
		st.KPIs = &kpis
	}
	if dp.top != nil {
		st.TopProdutos = make([]models.TopProduto, len(dp.top))
		copy(st.TopProdutos, dp.top)
	}
	return st
}
