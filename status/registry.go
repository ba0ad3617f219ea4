package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups metrics by value type; keys are "<command>.<metric>"
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Key joins a command name and metric name
func Key(command, metric string) string {
	return command + "." + metric
}

// Int reads an integer metric, zero when absent
func (r *Registry) Int(key string) int64 {
	if p, ok := r.Ints.Lookup(key); ok {
		return p.Load()
	}
	return 0
}

// Float reads a float metric, zero when absent
func (r *Registry) Float(key string) float64 {
	if p, ok := r.Floats.Lookup(key); ok {
		return p.Get()
	}
	return 0
}

// String reads a label metric, empty when absent
func (r *Registry) String(key string) string {
	if p, ok := r.Strings.Lookup(key); ok {
		return p.Load()
	}
	return ""
}

// Snapshot renders every metric as "key=value" in key order, ints first
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, p *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, p.Load()))
	})
	r.Floats.Range(func(k string, p *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.2f", k, p.Get()))
	})
	r.Strings.Range(func(k string, p *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, p.Load()))
	})
	return out
}

func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
