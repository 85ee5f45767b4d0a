package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"magazine-registry/internal/report"
)

// metricPrefix selects the registry's own metric families.
const metricPrefix = "registry_"

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print every article, author and magazine with their derived queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Write(cmd.Context(), cmd.OutOrStdout(), a.svc, report.Options{
				TitleWidth: a.cfg.Report.TitleWidth,
			})
		},
	}
}

func newTopPublisherCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top-publisher",
		Short: "Print the magazine with the most articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteTopPublisher(cmd.Context(), cmd.OutOrStdout(), a.svc)
		},
	}
}

func newMetricsCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print registry metrics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMetrics(cmd.OutOrStdout(), prometheus.DefaultGatherer, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include Go runtime and process metrics")
	return cmd
}

func writeMetrics(w io.Writer, g prometheus.Gatherer, all bool) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	if !all {
		families = registryFamilies(families)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func registryFamilies(families []*dto.MetricFamily) []*dto.MetricFamily {
	out := families[:0:0]
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), metricPrefix) {
			out = append(out, mf)
		}
	}
	return out
}
