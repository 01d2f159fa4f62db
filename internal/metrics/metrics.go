package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	globalMetrics *Metrics
	globalMu      sync.RWMutex
)

// Metrics reúne as métricas Prometheus do otimizador
type Metrics struct {
	CyclesTotal            *prometheus.CounterVec
	AdsCreatedTotal        *prometheus.CounterVec
	AdsPausedTotal         prometheus.Counter
	DeployFailuresTotal    prometheus.Counter
	GenerationFailureTotal *prometheus.CounterVec
	SweepDurationSeconds   prometheus.Histogram
	SweepCampaigns         prometheus.Gauge
	HTTPRequestsTotal      *prometheus.CounterVec

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		CyclesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "optimizer_cycles_total",
				Help: "Total de ciclos de otimização por resultado",
			},
			[]string{"status", "trigger"},
		),
		AdsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "optimizer_ads_created_total",
				Help: "Total de anúncios criados por tipo de criativo",
			},
			[]string{"kind"},
		),
		AdsPausedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "optimizer_ads_paused_total",
				Help: "Total de anúncios perdedores pausados",
			},
		),
		DeployFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "optimizer_deploy_failures_total",
				Help: "Total de operações de publicação ou pausa que falharam",
			},
		),
		GenerationFailureTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "optimizer_generation_failures_total",
				Help: "Total de ciclos abortados por falta de variantes",
			},
			[]string{"kind"},
		),
		SweepDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "optimizer_sweep_duration_seconds",
				Help:    "Duração das varreduras sobre as campanhas habilitadas",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
			},
		),
		SweepCampaigns: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "optimizer_sweep_campaigns",
				Help: "Campanhas avaliadas na última varredura",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "optimizer_http_requests_total",
				Help: "Total de requisições HTTP por rota e status",
			},
			[]string{"method", "status"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.CyclesTotal,
		m.AdsCreatedTotal,
		m.AdsPausedTotal,
		m.DeployFailuresTotal,
		m.GenerationFailureTotal,
		m.SweepDurationSeconds,
		m.SweepCampaigns,
		m.HTTPRequestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func SetGlobal(m *Metrics) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMetrics = m
}

func Global() *Metrics {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalMetrics
}

func IncCycle(status, trigger string) {
	m := Global()
	if m != nil {
		m.CyclesTotal.WithLabelValues(status, trigger).Inc()
	}
}

func AddAdsCreated(kind string, n int) {
	m := Global()
	if m != nil && n > 0 {
		m.AdsCreatedTotal.WithLabelValues(kind).Add(float64(n))
	}
}

func AddAdsPaused(n int) {
	m := Global()
	if m != nil && n > 0 {
		m.AdsPausedTotal.Add(float64(n))
	}
}

func AddDeployFailures(n int) {
	m := Global()
	if m != nil && n > 0 {
		m.DeployFailuresTotal.Add(float64(n))
	}
}

func IncGenerationFailure(kind string) {
	m := Global()
	if m != nil {
		m.GenerationFailureTotal.WithLabelValues(kind).Inc()
	}
}

func ObserveSweep(d time.Duration, campaigns int) {
	m := Global()
	if m != nil {
		m.SweepDurationSeconds.Observe(d.Seconds())
		m.SweepCampaigns.Set(float64(campaigns))
	}
}

func IncHTTPRequest(method, status string) {
	m := Global()
	if m != nil {
		m.HTTPRequestsTotal.WithLabelValues(method, status).Inc()
	}
}
