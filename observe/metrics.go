/*
   Copyright 2025 The lazy-freeze Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package observe

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

// Metrics counts guard events with Prometheus counters.
type Metrics struct {
	freezes    *prometheus.CounterVec
	emptyScope *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

// Ensure Metrics implements apis.Observer.
var _ apis.Observer = (*Metrics)(nil)

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		freezes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazyfreeze",
			Name:      "freezes_total",
			Help:      "Instances frozen by their first hash computation.",
		}, []string{"type"}),
		emptyScope: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazyfreeze",
			Name:      "empty_scope_freezes_total",
			Help:      "Freezes whose resolved scope protects no field.",
		}, []string{"type"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazyfreeze",
			Name:      "rejected_mutations_total",
			Help:      "Mutations rejected because the instance was frozen.",
		}, []string{"type", "op"}),
	}
	for _, c := range []prometheus.Collector{m.freezes, m.emptyScope, m.rejections} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Frozen(ev apis.FreezeEvent) {
	m.freezes.WithLabelValues(ev.Type).Inc()
	if ev.EmptyScope {
		m.emptyScope.WithLabelValues(ev.Type).Inc()
	}
}

func (m *Metrics) Rejected(err *apis.FrozenMutationError) {
	m.rejections.WithLabelValues(err.Type, err.Op.String()).Inc()
}
