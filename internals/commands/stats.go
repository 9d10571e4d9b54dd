package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"monges_backend/internals/features/monks/query"
	"monges_backend/internals/features/monks/stats"
)

type statsOptions struct {
	top     int
	all     bool
	term    string
	filters []string
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	so := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <field>",
		Short: "Hitung record per nilai field (setelah filter)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preds, err := parseFilters(so.filters)
			if err != nil {
				return err
			}

			a, err := OpenApp(opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.Store.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			filtered := query.Filter(records, so.term, preds)

			buckets, err := stats.GroupCount(filtered, args[0])
			if err != nil {
				return err
			}
			if !so.all {
				top := so.top
				if top <= 0 {
					top = opts.cfg.StatsTopN
				}
				buckets = stats.TopN(buckets, top)
			}

			renderStats(cmd.OutOrStdout(), args[0], buckets, len(filtered))
			return nil
		},
	}

	cmd.Flags().IntVar(&so.top, "top", 0, "jumlah kategori sebelum dilipat ke \""+stats.Other+"\" (default STATS_TOP_N)")
	cmd.Flags().BoolVar(&so.all, "all", false, "tampilkan semua kategori tanpa dilipat")
	cmd.Flags().StringVarP(&so.term, "query", "q", "", "cari di nome / cidade_nascimento")
	cmd.Flags().StringArrayVarP(&so.filters, "filter", "f", nil, "filter field=nilai (boleh diulang)")
	return cmd
}

// parseFilters: ["pais_nascimento=Portugal"] → Predicates.
func parseFilters(raw []string) (query.Predicates, error) {
	preds := query.Predicates{}
	for _, f := range raw {
		key, value, ok := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (want field=value)", f)
		}
		preds[key] = value
	}
	return preds, nil
}

func renderStats(w io.Writer, field string, buckets []stats.Bucket, total int) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.SetTitle(field)
	tbl.AppendHeader(table.Row{"Label", "Count", "%"})

	for _, b := range buckets {
		tbl.AppendRow(table.Row{b.Label, humanize.Comma(int64(b.Count)), percent(b.Count, total)})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d records", total), humanize.Comma(int64(stats.Sum(buckets))), ""})
	tbl.Render()
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
