package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pthm/hxlife"
	"github.com/pthm/hxlife/internal/logging"
	"github.com/pthm/hxlife/lib/dom"
	"github.com/pthm/hxlife/lib/manifest"
	"github.com/pthm/hxlife/lib/metrics"
	"github.com/pthm/hxlife/lib/snapshot"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [page.html]",
	Short: "Run component lifecycles over an HTML page",
	Long: `Parses the page, binds the components declared in the manifest, runs the
created and attached phases over the whole document and prints the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}

		opts := runOptions{page: args[0]}
		opts.manifest, _ = cmd.Flags().GetString("manifest")
		opts.snapshot, _ = cmd.Flags().GetString("snapshot")
		opts.remove, _ = cmd.Flags().GetStringSlice("remove")

		return runPage(cmd.OutOrStdout(), logging.New(level), opts)
	},
}

func init() {
	runCmd.Flags().StringP("manifest", "m", "components.yaml", "Component manifest")
	runCmd.Flags().String("snapshot", "", "Write a msgpack lifecycle snapshot to this file")
	runCmd.Flags().StringSlice("remove", nil, "Ids of elements to remove after initialization")
	rootCmd.AddCommand(runCmd)
}

type runOptions struct {
	page     string
	manifest string
	snapshot string
	remove   []string
}

func runPage(out io.Writer, logger *slog.Logger, opts runOptions) error {
	m, err := manifest.Load(opts.manifest)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	defs, err := m.Definitions(logger)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.page)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}

	reg := hxlife.NewRegistry()
	reg.Add(defs...)

	promReg := prometheus.NewRegistry()
	collector := metrics.New(promReg)

	lc := hxlife.New(reg,
		hxlife.WithObserver(doc),
		hxlife.WithMatcher(dom.NewMatcher()),
		hxlife.WithLogger(logger),
		hxlife.WithHooks(collector.Hooks()),
	)
	lc.Watch(doc.Root(), doc)

	if err := lc.InitElements(doc.Root().ChildNodes()...); err != nil {
		return err
	}
	doc.Flush()

	for _, id := range opts.remove {
		el := doc.Root().ByID(id)
		if el == nil {
			logger.Warn("element to remove not found", "id", id)
			continue
		}
		el.Remove()
	}
	doc.Flush()

	fmt.Fprintln(out, doc.Root().OuterHTML())

	if opts.snapshot != "" {
		if err := writeSnapshot(opts.snapshot, doc, lc); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	return logMetrics(logger, promReg)
}

func writeSnapshot(path string, doc *dom.Document, lc *hxlife.Lifecycle) error {
	root := doc.DocumentElement()
	if root == nil {
		return fmt.Errorf("document has no root element")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot.Encode(f, snapshot.Take(root, lc.Store(), lc.Registry())); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func logMetrics(logger *slog.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			logger.Debug("metric",
				"name", mf.GetName(),
				"labels", strings.Join(labels, ","),
				"value", metric.GetCounter().GetValue(),
			)
		}
	}
	return nil
}
