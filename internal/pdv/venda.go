package pdv

import (
	"context"
	"fmt"
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/domain/produto"
	"github.com/gfsilva/salao-gestor/pkg/logger"
	"github.com/gfsilva/salao-gestor/pkg/metrics"
)

// observação fixa gravada nos lançamentos de venda
const obsVenda = "Venda realizada via PDV"

// Finalizador conclui vendas do ponto de venda: grava o lançamento de
// entrada e dá baixa no estoque dos produtos vendidos.
type Finalizador struct {
	lancamentos financeiro.Repository
	produtos    produto.Repository
	logger      logger.Logger
}

// NewFinalizador cria um finalizador de vendas
func NewFinalizador(lancamentos financeiro.Repository, produtos produto.Repository, log logger.Logger) *Finalizador {
	return &Finalizador{
		lancamentos: lancamentos,
		produtos:    produtos,
		logger:      log,
	}
}

// Finalizar grava a venda: um lançamento de entrada com o total do
// carrinho e, para cada linha de produto, a baixa do estoque travada em
// zero. Não há transação entre os passos: uma falha no meio deixa o que
// já foi aplicado e devolve o erro, com o carrinho intacto para nova
// tentativa.
func (f *Finalizador) Finalizar(ctx context.Context, tenantID string, carrinho *Carrinho, formaPagamento string, now time.Time) (*financeiro.Lancamento, error) {
	if carrinho.Vazio() {
		return nil, ErrCarrinhoVazio
	}

	lanc, err := financeiro.NewLancamento(
		now.Format("2006-01-02"),
		carrinho.Descricao(),
		financeiro.TipoEntrada,
		carrinho.Total(),
		formaPagamento,
	)
	if err != nil {
		return nil, err
	}
	lanc.Observacoes = obsVenda

	id, err := f.lancamentos.Create(ctx, tenantID, lanc)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar lançamento da venda: %w", err)
	}
	lanc.ID = id

	for _, item := range carrinho.Itens {
		if item.Tipo != ItemProduto {
			continue
		}

		p, err := f.produtos.FindByID(ctx, tenantID, item.RefID)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar produto %s: %w", item.RefID, err)
		}

		restante := p.Baixa(item.Quantidade)
		if err := f.produtos.UpdateEstoque(ctx, tenantID, item.RefID, restante); err != nil {
			return nil, fmt.Errorf("erro ao baixar estoque do produto %s: %w", p.Nome, err)
		}
	}

	metrics.VendasTotal.Inc()
	f.logger.Info("Venda finalizada", "tenant_id", tenantID, "lancamento_id", id, "total", lanc.Valor)

	carrinho.Limpar()
	return lanc, nil
}
