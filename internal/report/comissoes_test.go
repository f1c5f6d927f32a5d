package report

import (
	"testing"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
)

func TestComissoes(t *testing.T) {
	profissionais := []*profissional.Profissional{
		{ID: "p1", Nome: "JOAO", Status: profissional.StatusAtivo, TipoComissao: profissional.ComissaoPercentual, PercentualComissao: 50},
		{ID: "p2", Nome: "MARIA", Status: profissional.StatusAtivo, TipoComissao: profissional.ComissaoFixaPorServico, PercentualComissao: 10},
		{ID: "p3", Nome: "PEDRO", Status: profissional.StatusInativo},
	}

	agendamentos := []*agendamento.Agendamento{
		{Profissional: "JOAO", Servico: "CORTE", Status: agendamento.StatusConcluido, Valor: 40},
		{Profissional: "JOAO", Servico: "BARBA", Status: agendamento.StatusConcluido, Valor: 25},
		{Profissional: "JOAO", Servico: "CORTE", Status: agendamento.StatusPendente, Valor: 60}, // não concluído
		{Profissional: "MARIA", Servico: "ESCOVA", Status: agendamento.StatusConcluido, Valor: 45},
		{Profissional: "PEDRO", Servico: "CORTE", Status: agendamento.StatusConcluido, Valor: 60}, // inativo não aparece
	}

	linhas := Comissoes(profissionais, agendamentos)

	if len(linhas) != 2 {
		t.Fatalf("len(linhas) = %d, want 2", len(linhas))
	}

	// JOAO: 40 + 25 = 65, comissão 50% = 32.5
	joao := linhas[0]
	if joao.Profissional != "JOAO" || joao.QtdServicos != 2 || joao.TotalGerado != 65 || joao.Comissao != 32.5 {
		t.Errorf("linha JOAO = %+v, want 2 serviços / 65 / 32.5", joao)
	}

	// MARIA: 1 serviço, comissão fixa de 10 por serviço
	maria := linhas[1]
	if maria.Profissional != "MARIA" || maria.QtdServicos != 1 || maria.TotalGerado != 45 || maria.Comissao != 10 {
		t.Errorf("linha MARIA = %+v, want 1 serviço / 45 / 10", maria)
	}
}

// A base da comissão é o valor gravado no agendamento, tal como foi
// persistido; o catálogo de serviços não entra na apuração.
func TestComissoesUsamValorGravado(t *testing.T) {
	profissionais := []*profissional.Profissional{
		{ID: "p1", Nome: "JOAO", Status: profissional.StatusAtivo, TipoComissao: profissional.ComissaoPercentual, PercentualComissao: 10},
	}
	agendamentos := []*agendamento.Agendamento{
		{Profissional: "JOAO", Servico: "CORTE", Status: agendamento.StatusConcluido, Valor: 100},
	}

	linhas := Comissoes(profissionais, agendamentos)
	if len(linhas) != 1 {
		t.Fatalf("len(linhas) = %d, want 1", len(linhas))
	}
	if linhas[0].TotalGerado != 100 || linhas[0].Comissao != 10 {
		t.Errorf("linha = %+v, want TotalGerado 100 e Comissao 10", linhas[0])
	}
}

func TestComissoesSemAgendamentos(t *testing.T) {
	profissionais := []*profissional.Profissional{
		{ID: "p1", Nome: "JOAO", Status: profissional.StatusAtivo, TipoComissao: profissional.ComissaoPercentual, PercentualComissao: 50},
	}

	linhas := Comissoes(profissionais, nil)
	if len(linhas) != 1 {
		t.Fatalf("len(linhas) = %d, want 1", len(linhas))
	}
	if linhas[0].QtdServicos != 0 || linhas[0].Comissao != 0 {
		t.Errorf("profissional sem serviços = %+v, want linha zerada", linhas[0])
	}
}
