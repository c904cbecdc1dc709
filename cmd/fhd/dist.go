package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jizhihang/fhd"
	"github.com/jizhihang/fhd/hdist"
)

func init() {
	opts := defaultOptions()
	var layers int

	cmd := &cobra.Command{
		Use:   "dist [flags] A.txt B.txt",
		Short: "Distance between two dumped FHD descriptors",
		Long: `Compute the weighted shape/spatial distance between two descriptors
previously written by 'fhd compute'. The dump format does not persist the
layer count or attraction forces, so --layers (and the forces, if they were
not the defaults) must match the values used at compute time.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			if layers <= 0 {
				return fmt.Errorf("--layers must be positive")
			}

			metric, err := hdist.ParseMetric(opts.Metric)
			if err != nil {
				return err
			}
			matching, err := fhd.ParseStrategy(opts.Matching)
			if err != nil {
				return err
			}

			a, err := fhd.LoadFile(args[0], layers, opts.ShapeForce, opts.SpatialForce)
			if err != nil {
				return err
			}
			b, err := fhd.LoadFile(args[1], layers, opts.ShapeForce, opts.SpatialForce)
			if err != nil {
				return err
			}

			cfg := fhd.DistanceConfig{
				Metric:     metric,
				Matching:   matching,
				Alpha:      opts.Alpha,
				NumWorkers: opts.Workers,
			}
			d, err := fhd.Distance(a, b, cfg)
			if err != nil {
				return err
			}
			fmt.Printf("%.12g\n", d)
			return nil
		},
	}

	opts.registerFlags(cmd)
	cmd.Flags().IntVarP(&layers, "layers", "n", 0, "number of layers in both descriptors (required)")
	cmd.Flags().StringVar(&opts.Metric, "metric", opts.Metric, "histogram metric: L1, L2, CHI2 or jaccard")
	cmd.Flags().StringVar(&opts.Matching, "matching", opts.Matching, "layer matching: default, greedy or optimal")
	cmd.Flags().Float64Var(&opts.Alpha, "alpha", opts.Alpha, "shape/spatial weight in [0, 1] (-1 = auto)")
	cmd.MarkFlagRequired("layers")
	rootCmd.AddCommand(cmd)
}
