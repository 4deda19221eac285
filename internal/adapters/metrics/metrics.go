package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"accessinvites/internal/domain"
)

// Registry owns the Prometheus collectors exported by the API.
type Registry struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go and process collectors plus the
// invitation transition counter.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "accessinvites",
		Name:      "invitation_transitions_total",
		Help:      "Invitation status transitions by scope type and target status.",
	}, []string{"scope_type", "from", "to"})
	registry.MustRegister(transitions)

	return &Registry{registry: registry, transitions: transitions}
}

// RecordTransition implements domain.TransitionRecorder.
func (r *Registry) RecordTransition(scopeType domain.ScopeType, from, to domain.InvitationStatus) {
	r.transitions.WithLabelValues(string(scopeType), string(from), string(to)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
