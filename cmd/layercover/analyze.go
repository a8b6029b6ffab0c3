package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seetharamanm/layercover"
	"github.com/seetharamanm/layercover/domain/coverage"
)

func analyzeCmd() *cobra.Command {
	var (
		bills  []string
		months []string
		layers []string
	)

	cmd := &cobra.Command{
		Use:   "analyze [csv-file]",
		Short: "Analyze a coverage CSV and print a report",
		Long: `Analyze a coverage CSV and print a text report: overall and per-layer
progress, intra-layer overlaps, and per-layer gaps. With no file argument the
embedded sample dataset is analyzed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runAnalyze(cmd, path, bills, months, layers)
		},
	}

	cmd.Flags().StringSliceVar(&bills, "bill", nil, "Restrict progress to the given bill identifiers")
	cmd.Flags().StringSliceVar(&months, "month", nil, "Restrict progress to the given YYYY-MM months")
	cmd.Flags().StringSliceVar(&layers, "layer", nil, "Report gaps for these layers even without records")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, bills, months, extraLayers []string) error {
	client, err := layercover.New()
	if err != nil {
		return fmt.Errorf("create layercover client: %w", err)
	}

	ctx := cmd.Context()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := client.Datasets.Load(ctx, string(content)); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else if _, err := client.Datasets.LoadSample(ctx); err != nil {
		return fmt.Errorf("load sample: %w", err)
	}

	out := cmd.OutOrStdout()

	summary, err := client.Datasets.Current()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Records:      %d\n", summary.RecordCount)
	fmt.Fprintf(out, "Route extent: %d m\n", summary.RouteExtent)
	fmt.Fprintf(out, "Layers:       %s\n\n", strings.Join(summary.Layers, ", "))

	filter := coverage.NewFilter(
		coverage.WithBills(bills...),
		coverage.WithMonths(months...),
	)
	progress, err := client.Datasets.Progress(filter)
	if err != nil {
		return err
	}

	if !filter.Empty() {
		fmt.Fprintf(out, "Filtered:     %d of %d records\n\n", progress.FilteredCount, progress.TotalCount)
	}

	fmt.Fprintf(out, "Overall progress: %d m (%.1f%%)\n", progress.OverallLen, progress.OverallPct)
	for _, layer := range sortedProgressLayers(progress.PerLayer) {
		lp := progress.PerLayer[layer]
		fmt.Fprintf(out, "  %-20s %6d m (%.1f%%)\n", layer, lp.Len, lp.Pct)
	}

	if len(progress.PerLayerPerBill) > 0 {
		fmt.Fprintf(out, "\nBilled quantities (raw sums):\n")
		for _, line := range progress.PerLayerPerBill {
			fmt.Fprintf(out, "  %-10s %-20s %6d m (%.1f%%)\n", line.Bill, line.Layer, line.Len, line.Pct)
		}
	}

	overlaps, err := client.Datasets.Overlaps()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nOverlaps:\n")
	hasOverlaps := false
	for _, layer := range coverage.SortedLayers(overlaps) {
		for _, s := range overlaps[layer] {
			hasOverlaps = true
			fmt.Fprintf(out, "  %-20s %d-%d (%d m)\n", layer, s.Start, s.End, s.Len)
		}
	}
	if !hasOverlaps {
		fmt.Fprintf(out, "  none\n")
	}

	gaps, err := client.Datasets.Gaps(extraLayers...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nGaps:\n")
	hasGaps := false
	for _, layer := range coverage.SortedLayers(gaps) {
		for _, s := range gaps[layer] {
			hasGaps = true
			fmt.Fprintf(out, "  %-20s %d-%d (%d m)\n", layer, s.Start, s.End, s.Len)
		}
	}
	if !hasGaps {
		fmt.Fprintf(out, "  none\n")
	}

	return nil
}

func sortedProgressLayers(m map[string]coverage.LayerProgress) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
