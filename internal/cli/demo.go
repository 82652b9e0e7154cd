package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-kdr/kdr/internal/dataset"
	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/pkg/container/kdtree"
	"github.com/go-kdr/kdr/pkg/geom"
)

type demoOptions struct {
	file      string
	random    int
	randomMax uint32
	box       []float64
	include   bool
}

func demoCommand() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Insert a dataset into a tree and print the range search results",
		Long: `Insert the points of a dataset one by one and run its queries.

Without flags the built-in dataset is used: five points and the strict box
with top-left (0,10) and bottom-right (10,0).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "dataset", "d", "", "TOML dataset file with [[points]] and [[queries]]")
	cmd.Flags().IntVar(&opts.random, "random", 0, "number of random points to add")
	cmd.Flags().Uint32Var(&opts.randomMax, "random-max", 1000, "exclusive upper bound of random coordinates")
	cmd.Flags().Float64SliceVar(&opts.box, "box", nil, "query box as left,top,right,bottom")
	cmd.Flags().BoolVar(&opts.include, "include-boundary", false, "count points on the box edges as inside")

	return cmd
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	d := dataset.Demo()
	if opts.file != "" || opts.random > 0 {
		loaded, err := dataset.FromConfig(ctx, &dataset.Config{
			File:      opts.file,
			Random:    opts.random,
			RandomMax: opts.randomMax,
		})
		if err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
		d = loaded
	}

	if opts.box != nil {
		if len(opts.box) != 4 {
			return fmt.Errorf("box needs 4 values, got %d", len(opts.box))
		}
		d.Queries = []geom.BoundingBox{geom.NewBoundingBox(
			geom.NewPoint(opts.box[0], opts.box[1]),
			geom.NewPoint(opts.box[2], opts.box[3]),
			geom.WithIncludeBoundary(opts.include),
		)}
	}

	tree := kdtree.New()
	for _, p := range d.Points {
		tree.Insert(p)
	}
	logger.Debugf("built tree with %d points, depth %d", tree.Len(), tree.Depth())

	out := cmd.OutOrStdout()
	for _, q := range d.Queries {
		res := tree.RangeSearch(q)
		logger.Debugf("query %v %v include=%v matched %d points", q.TopLeft, q.BottomRight, q.IncludeBoundary, len(res))
		if _, err := fmt.Fprintln(out, res); err != nil {
			return err
		}
	}

	return nil
}
