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

package observe_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/observe"
)

func textLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_Frozen(t *testing.T) {
	var buf bytes.Buffer
	l := observe.NewLogger(textLogger(&buf))

	l.Frozen(apis.FreezeEvent{Type: "Person", Hash: 7, Protected: apis.ProtectAll()})
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "component=lazyfreeze")
	assert.Contains(t, out, "type=Person")
	assert.Contains(t, out, "protected=all")
}

func TestLogger_EmptyScopeWarns(t *testing.T) {
	var buf bytes.Buffer
	l := observe.NewLogger(textLogger(&buf))

	l.Frozen(apis.FreezeEvent{Type: "Point", Protected: apis.ProtectFields(), EmptyScope: true})
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_Rejected(t *testing.T) {
	var buf bytes.Buffer
	l := observe.NewLogger(textLogger(&buf))

	l.Rejected(&apis.FrozenMutationError{Type: "Person", Op: apis.OpSetField, Target: "name"})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "op=set-field")
	assert.Contains(t, out, "target=name")
}

func TestNewLogger_NilUsesDefault(t *testing.T) {
	assert.NotNil(t, observe.NewLogger(nil))
}

// counterValue returns the value of the counter name with the given label
// values, or 0 if it has not been created.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observe.NewMetrics(reg)
	require.NoError(t, err)

	m.Frozen(apis.FreezeEvent{Type: "Person", Protected: apis.ProtectAll()})
	m.Frozen(apis.FreezeEvent{Type: "Person", Protected: apis.ProtectFields(), EmptyScope: true})
	m.Rejected(&apis.FrozenMutationError{Type: "Person", Op: apis.OpSetField, Target: "name"})
	m.Rejected(&apis.FrozenMutationError{Type: "Person", Op: apis.OpSetField, Target: "age"})

	assert.Equal(t, 2.0, counterValue(t, reg, "lazyfreeze_freezes_total", map[string]string{"type": "Person"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "lazyfreeze_empty_scope_freezes_total", map[string]string{"type": "Person"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "lazyfreeze_rejected_mutations_total", map[string]string{"type": "Person", "op": "set-field"}))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observe.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observe.NewMetrics(reg)
	assert.Error(t, err)
}

type recorder struct {
	frozen   int
	rejected int
}

func (r *recorder) Frozen(apis.FreezeEvent)             { r.frozen++ }
func (r *recorder) Rejected(*apis.FrozenMutationError) { r.rejected++ }

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := observe.Multi(a, nil, b)

	m.Frozen(apis.FreezeEvent{})
	m.Rejected(&apis.FrozenMutationError{})

	assert.Equal(t, 1, a.frozen)
	assert.Equal(t, 1, b.rejected)
}
