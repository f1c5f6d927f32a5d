// Package metrics expõe os contadores Prometheus da aplicação
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SnapshotsTotal conta os snapshots recebidos por coleção
	SnapshotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salao_sync_snapshots_total",
		Help: "Snapshots recebidos do banco de documentos, por coleção",
	}, []string{"colecao"})

	// SyncErrorsTotal conta os erros de assinatura por coleção
	SyncErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salao_sync_errors_total",
		Help: "Erros de assinatura do banco de documentos, por coleção",
	}, []string{"colecao"})

	// Online indica o estado de conectividade inferido (1 online, 0 offline)
	Online = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "salao_online",
		Help: "Estado de conectividade inferido com o banco de documentos",
	})

	// VendasTotal conta as vendas finalizadas no PDV
	VendasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salao_pdv_vendas_total",
		Help: "Vendas finalizadas no PDV",
	})
)
