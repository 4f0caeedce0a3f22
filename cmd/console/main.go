// Package main initializes and starts the admin console: configuration,
// logging, the persisted session, the API client, the page controllers
// and the local HTTP shell.
package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/config"
	"github.com/contasplay/painel-admin/internal/console"
	"github.com/contasplay/painel-admin/internal/logger"
	"github.com/contasplay/painel-admin/internal/notify"
	"github.com/contasplay/painel-admin/internal/session"
	"github.com/contasplay/painel-admin/internal/shell"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// orDefault mirrors cmp.Or for two strings; cmp.Or itself needs Go 1.22+
// and the local toolchain is 1.21.
func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.APIBaseURL == "" {
		zapLogger.Fatal("API base URL is required (flag -api or env API_BASE_URL)")
	}

	// Rehydrate the session from the persisted token, if any. A stale
	// token is corrected by the first 401.
	tokenFile := session.NewTokenFile(options.TokenFile)
	store := session.NewStore(tokenFile, zapLogger)
	if err := store.Load(); err != nil {
		zapLogger.Fatal("cannot load persisted session", zap.Error(err))
	}

	// The API client reads the bearer token from the session store and
	// invalidates the session on any 401.
	client := api.New(options.APIBaseURL, store,
		api.WithTimeout(options.RequestTimeout),
		api.WithLogger(zapLogger),
	)
	client.SetUnauthorizedHook(store.Invalidate)

	// Toast queue shared by every page.
	nc := notify.NewCenter()

	// Build the page controllers.
	sh := &shell.Shell{
		Session:       store,
		Client:        client,
		Notify:        nc,
		Log:           zapLogger,
		Dashboard:     console.NewDashboardPage(client, zapLogger),
		Produtos:      console.NewProdutosPage(client, nc, zapLogger),
		Estoque:       console.NewEstoquePage(client, nc, zapLogger),
		ContasMae:     console.NewContasMaePage(client, nc, zapLogger),
		Tickets:       console.NewTicketsPage(client, nc, zapLogger),
		GiftCards:     console.NewGiftCardsPage(client, nc, zapLogger),
		Pedidos:       console.NewPedidosPage(client, nc, zapLogger),
		Sugestoes:     console.NewSugestoesPage(client, nc, zapLogger),
		Usuarios:      console.NewUsuariosPage(client, nc, zapLogger),
		Recargas:      console.NewRecargasPage(client, nc, zapLogger),
		Configuracoes: console.NewConfiguracoesPage(client, nc, zapLogger),
	}

	// Build the route table and start the local shell.
	server := &http.Server{
		Addr:    options.Addr,
		Handler: shell.NewRouter(sh),
	}

	zapLogger.Info("starting admin console",
		zap.String("addr", options.Addr),
		zap.String("api", options.APIBaseURL),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start console", zap.Error(err))
	}
}
