package models

// Request and response payloads for mutating endpoints. Update payloads use
// omitempty on secret fields so a blank secret is left out of the body
// entirely ("leave unchanged"), and leave out immutable fields altogether.

// LoginResponse is the body returned by POST /admin/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ProdutoPayload creates or updates a catalog product.
type ProdutoPayload struct {
	Nome          string  `json:"nome"`
	Descricao     string  `json:"descricao"`
	Categoria     string  `json:"categoria"`
	Preco         float64 `json:"preco"`
	Duracao       int     `json:"duracao_dias"`
	EntregaManual bool    `json:"entrega_manual"`
	Ativo         bool    `json:"ativo"`
}

// ContaEstoqueCreate creates a stock account. The parent product reference
// is immutable after creation and therefore only present here.
type ContaEstoqueCreate struct {
	ProdutoID     int64  `json:"produto_id"`
	Email         string `json:"email"`
	Senha         string `json:"senha"`
	VagasMax      int    `json:"vagas_max"`
	DiasRestantes *int   `json:"dias_restantes,omitempty"`
}

// ContaEstoqueUpdate updates a stock account. No ProdutoID: the parent
// product cannot be changed. A blank Senha is omitted from the body.
type ContaEstoqueUpdate struct {
	Email         string `json:"email"`
	Senha         string `json:"senha,omitempty"`
	VagasMax      int    `json:"vagas_max"`
	DiasRestantes *int   `json:"dias_restantes,omitempty"`
	Atencao       *bool  `json:"atencao,omitempty"`
}

// ContaMaeCreate creates a parent account.
type ContaMaeCreate struct {
	Servico       string `json:"servico"`
	Email         string `json:"email"`
	Senha         string `json:"senha"`
	VagasMax      int    `json:"vagas_max"`
	DiasRestantes *int   `json:"dias_restantes,omitempty"`
}

// ContaMaeUpdate updates a parent account; blank Senha is omitted.
type ContaMaeUpdate struct {
	Servico       string `json:"servico"`
	Email         string `json:"email"`
	Senha         string `json:"senha,omitempty"`
	VagasMax      int    `json:"vagas_max"`
	DiasRestantes *int   `json:"dias_restantes,omitempty"`
}

// ConvitePayload adds an invite e-mail to a parent account.
type ConvitePayload struct {
	Email string `json:"email"`
}

// Ticket resolution actions accepted by POST /admin/tickets/{id}/resolver.
const (
	ResolucaoTrocarConta  = "swap-account"
	ResolucaoReembolso    = "refund-to-wallet"
	ResolucaoFecharManual = "close-manually"
)

// TicketResolucao resolves a ticket with one of the three actions above.
// Mensagem is only meaningful for close-manually.
type TicketResolucao struct {
	Acao     string `json:"acao"`
	Mensagem string `json:"mensagem,omitempty"`
}

// GiftCardLote creates a batch of gift codes. When CodigoPersonalizado is
// set the backend creates exactly one code regardless of Quantidade.
type GiftCardLote struct {
	Valor               float64 `json:"valor"`
	Quantidade          int     `json:"quantidade"`
	CodigoPersonalizado string  `json:"codigo_personalizado,omitempty"`
}

// GiftCardLoteResult carries the codes generated by a batch create. The
// codes are not regenerable; losing this value loses them.
type GiftCardLoteResult struct {
	Codigos []string `json:"codigos"`
}

// EntregaPayload delivers credentials for a manual-delivery order.
type EntregaPayload struct {
	Credenciais string `json:"credenciais"`
}
