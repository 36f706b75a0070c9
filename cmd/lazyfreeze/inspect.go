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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/config"
	"github.com/UriyaHarpeness/lazy-freeze/internal/demo"
	"github.com/UriyaHarpeness/lazy-freeze/observe"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show what a guard configuration protects",
	Long: `Freeze a sample record under the given configuration and report which
mutations are still allowed. Flags override values read from --config.`,
	RunE: runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.String("config", "", "YAML guard configuration file")
	f.Bool("debug", false, "capture the freeze stack")
	f.Bool("cache", false, "memoize the hash once frozen")
	f.String("scope", "", "scope policy (all|dynamic|explicit)")
	f.StringSlice("fields", nil, "fields for the explicit scope (id,name,notes,tags)")
	f.Bool("log", false, "log guard events to stderr")
	f.Bool("metrics", false, "print guard counters after the probe")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cfg, err := inspectConfig(cmd)
	if err != nil {
		return err
	}

	var observers []apis.Observer
	if on, _ := cmd.Flags().GetBool("log"); on {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		observers = append(observers, observe.NewLogger(slog.New(h)))
	}
	var reg *prometheus.Registry
	if on, _ := cmd.Flags().GetBool("metrics"); on {
		reg = prometheus.NewRegistry()
		m, err := observe.NewMetrics(reg)
		if err != nil {
			return err
		}
		observers = append(observers, m)
	}
	if len(observers) > 0 {
		cfg.Observer = observe.Multi(observers...)
	}

	prot, results, err := demo.Probe(cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	titleColor.Fprintf(w, "scope=%s debug=%t cache=%t\n", cfg.Scope.Policy, cfg.Debug, cfg.CacheHash)
	fmt.Fprintf(w, "protected after freeze: %s\n", prot)
	for _, r := range results {
		label := r.Op.String()
		if r.Target != "" {
			label += " " + r.Target
		}
		if r.Allowed() {
			okColor.Fprintf(w, "  allowed  ")
			fmt.Fprintln(w, label)
			continue
		}
		failColor.Fprintf(w, "  rejected ")
		fmt.Fprintf(w, "%s: %s\n", label, firstLine(r.Err.Error()))
	}
	if reg != nil {
		return printMetrics(w, reg)
	}
	return nil
}

// inspectConfig loads --config and applies flag overrides.
func inspectConfig(cmd *cobra.Command) (apis.Config, error) {
	flags := cmd.Flags()
	var opts []config.Option
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		opts = append(opts, config.WithDebug(v))
	}
	if flags.Changed("cache") {
		v, _ := flags.GetBool("cache")
		opts = append(opts, config.WithCacheHash(v))
	}
	if flags.Changed("scope") || flags.Changed("fields") {
		scope, _ := flags.GetString("scope")
		fields, _ := flags.GetStringSlice("fields")
		if scope == "" && len(fields) > 0 {
			scope = "explicit"
		}
		switch scope {
		case "all":
			opts = append(opts, config.WithFreezeAll())
		case "dynamic":
			opts = append(opts, config.WithFreezeRead())
		case "explicit":
			opts = append(opts, config.WithFreezeFields(fields...))
		default:
			return apis.Config{}, fmt.Errorf("invalid --scope %q (want all|dynamic|explicit)", scope)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		return config.LoadFile(path, opts...)
	}
	return config.NewConfig(opts...), nil
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}
