// Package models defines the data structures mirrored from the admin API.
// Field tags follow the backend's wire names; the console never owns the
// lifecycle of these records, it only caches what the API returns.
package models

import "time"

// Produto is a catalog product offered for sale.
type Produto struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`
	// Nome is the display name of the product.
	Nome string `json:"nome"`
	// Descricao is the customer-facing description.
	Descricao string `json:"descricao"`
	// Categoria groups products in the storefront.
	Categoria string `json:"categoria"`
	// Preco is the sale price.
	Preco float64 `json:"preco"`
	// Duracao is the subscription length in days.
	Duracao int `json:"duracao_dias"`
	// EntregaManual marks products delivered by hand instead of from stock.
	EntregaManual bool `json:"entrega_manual"`
	// Ativo controls storefront visibility.
	Ativo bool `json:"ativo"`
	// CriadoEm is the server-side creation timestamp.
	CriadoEm time.Time `json:"criado_em"`
}

// ContaEstoque is a shared account held in stock for a product.
type ContaEstoque struct {
	ID        int64  `json:"id"`
	ProdutoID int64  `json:"produto_id"`
	Email     string `json:"email"`
	// Senha is only populated on detail responses; list responses omit it.
	Senha string `json:"senha,omitempty"`
	// VagasMax is the slot capacity, at least 1 by construction.
	VagasMax int `json:"vagas_max"`
	// VagasOcupadas counts slots currently allocated to customers.
	VagasOcupadas int `json:"vagas_ocupadas"`
	// DiasRestantes is days until the account expires; nil when no
	// expiration is configured.
	DiasRestantes *int `json:"dias_restantes"`
	// Atencao flags an account that needs operator attention.
	Atencao  bool      `json:"atencao"`
	CriadoEm time.Time `json:"criado_em"`
}

// ContaMae is a parent account whose slots are filled by invite.
type ContaMae struct {
	ID      int64  `json:"id"`
	Servico string `json:"servico"`
	Email   string `json:"email"`
	Senha   string `json:"senha,omitempty"`
	// VagasMax is the invite capacity, at least 1 by construction.
	VagasMax      int       `json:"vagas_max"`
	VagasOcupadas int       `json:"vagas_ocupadas"`
	DiasRestantes *int      `json:"dias_restantes"`
	Convites      []Convite `json:"convites,omitempty"`
	CriadoEm      time.Time `json:"criado_em"`
}

// Convite is an invite e-mail registered under a parent account.
type Convite struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email"`
	CriadoEm time.Time `json:"criado_em"`
}

// Ticket is a customer support ticket.
type Ticket struct {
	ID          int64  `json:"id"`
	PedidoID    int64  `json:"pedido_id"`
	UsuarioNome string `json:"usuario_nome"`
	Motivo      string `json:"motivo"`
	// Status is "aberto" or "resolvido".
	Status string `json:"status"`
	// ContaProblematica references the stock account the ticket complains
	// about; nil for manual-delivery orders, which have no account.
	ContaProblematica *int64    `json:"conta_problematica"`
	CriadoEm          time.Time `json:"criado_em"`
}

// GiftCard is a prepaid wallet credit code.
type GiftCard struct {
	ID       int64     `json:"id"`
	Codigo   string    `json:"codigo"`
	Valor    float64   `json:"valor"`
	Usado    bool      `json:"usado"`
	UsadoPor *string   `json:"usado_por"`
	CriadoEm time.Time `json:"criado_em"`
}

// Sugestao is a product suggestion submitted by a customer.
type Sugestao struct {
	ID          int64     `json:"id"`
	UsuarioNome string    `json:"usuario_nome"`
	Texto       string    `json:"texto"`
	CriadoEm    time.Time `json:"criado_em"`
}

// Pedido is a customer order as shown in the order list.
type Pedido struct {
	ID          int64   `json:"id"`
	UsuarioNome string  `json:"usuario_nome"`
	ProdutoNome string  `json:"produto_nome"`
	Valor       float64 `json:"valor"`
	// Status is "pago", "pendente" or "cancelado".
	Status        string    `json:"status"`
	EntregaManual bool      `json:"entrega_manual"`
	CriadoEm      time.Time `json:"criado_em"`
}

// PedidoDetalhes is the richer payload behind a single order.
type PedidoDetalhes struct {
	Pedido
	// ContaEntregue is the stock account handed to the customer, when any.
	ContaEntregue *ContaEstoque `json:"conta_entregue"`
	// Credenciais holds manually delivered credentials, when any.
	Credenciais string `json:"credenciais,omitempty"`
	// UsuarioEmail is the buyer's contact address.
	UsuarioEmail string `json:"usuario_email"`
}

// Usuario is a customer account.
type Usuario struct {
	ID       int64     `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	Saldo    float64   `json:"saldo"`
	Indicou  int       `json:"indicacoes"`
	CriadoEm time.Time `json:"criado_em"`
}

// Recarga is a wallet top-up transaction.
type Recarga struct {
	ID          int64     `json:"id"`
	UsuarioNome string    `json:"usuario_nome"`
	Valor       float64   `json:"valor"`
	Metodo      string    `json:"metodo"`
	Status      string    `json:"status"`
	CriadoEm    time.Time `json:"criado_em"`
}

// Configuracoes is the singleton store configuration record.
type Configuracoes struct {
	WhatsappSuporte     string  `json:"whatsapp_suporte"`
	PercentualIndicacao float64 `json:"percentual_indicacao"`
	BonusIndicacao      float64 `json:"bonus_indicacao"`
	AvisoGlobal         string  `json:"aviso_global"`
}

// KPIs is the dashboard headline numbers payload.
type KPIs struct {
	VendasHoje     float64 `json:"vendas_hoje"`
	VendasMes      float64 `json:"vendas_mes"`
	PedidosHoje    int     `json:"pedidos_hoje"`
	TicketsAbertos int     `json:"tickets_abertos"`
	UsuariosTotal  int     `json:"usuarios_total"`
	SaldoCarteiras float64 `json:"saldo_carteiras"`
}

// TopProduto is one row of the dashboard best-sellers table.
type TopProduto struct {
	ProdutoNome string `json:"produto_nome"`
	Quantidade  int    `json:"quantidade"`
}
