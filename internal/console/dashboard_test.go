package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/models"
)

// dashboardServer serves the two dashboard endpoints. failTop makes the
// best-sellers fetch answer 500 while the KPIs keep succeeding.
type dashboardServer struct {
	mu      sync.Mutex
	failTop bool
	kpis    models.KPIs
	top     []models.TopProduto
}

func (d *dashboardServer) start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.mu.Lock()
		defer d.mu.Unlock()
		switch r.URL.Path {
		case "/admin/dashboard/kpis":
			_ = json.NewEncoder(w).Encode(d.kpis)
		case "/admin/dashboard/top-produtos":
			if d.failTop {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail":"indisponível"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(d.top)
		default:
			http.NotFound(w, r)
		}
	}))
}

func (d *dashboardServer) set(kpis models.KPIs, top []models.TopProduto, failTop bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.kpis = kpis
	d.top = top
	d.failTop = failTop
}

func TestDashboardReloadPartialFailureDiscardsBoth(t *testing.T) {
	backend := &dashboardServer{}
	backend.set(models.KPIs{VendasHoje: 100}, nil, true)
	srv := backend.start()
	defer srv.Close()

	dp := NewDashboardPage(api.New(srv.URL, staticToken("tok")), nil)
	dp.Reload(context.Background())

	st := dp.State()
	assert.Nil(t, st.KPIs, "the successful half must be discarded too")
	assert.Empty(t, st.TopProdutos)
	assert.Equal(t, MsgLoadFailed, st.LoadError)
	assert.False(t, st.Loading)
}

func TestDashboardReloadPartialFailureKeepsStaleData(t *testing.T) {
	backend := &dashboardServer{}
	backend.set(
		models.KPIs{VendasHoje: 100},
		[]models.TopProduto{{ProdutoNome: "Netflix", Quantidade: 3}},
		false,
	)
	srv := backend.start()
	defer srv.Close()

	dp := NewDashboardPage(api.New(srv.URL, staticToken("tok")), nil)
	dp.Reload(context.Background())
	require.NotNil(t, dp.State().KPIs)

	// The KPIs change server-side but the best-sellers fetch now fails:
	// neither half may be updated.
	backend.set(models.KPIs{VendasHoje: 999}, nil, true)
	dp.Reload(context.Background())

	st := dp.State()
	require.NotNil(t, st.KPIs)
	assert.Equal(t, float64(100), st.KPIs.VendasHoje, "stale KPIs stay visible")
	require.Len(t, st.TopProdutos, 1)
	assert.Equal(t, "Netflix", st.TopProdutos[0].ProdutoNome)
	assert.Equal(t, MsgLoadFailed, st.LoadError)
}
