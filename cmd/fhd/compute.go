package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jizhihang/fhd"
	"github.com/jizhihang/fhd/raster"
)

func init() {
	opts := defaultOptions()
	var (
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "compute [flags] mask.png...",
		Short: "Build an FHD descriptor from binary mask images",
		Long: `Build an FHD descriptor from one binary mask image per layer and dump it
to a text file. The layer count, direction count and attraction forces are
not stored in the dump; pass the same values to 'fhd dist' later.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}

			layers := make([]raster.Mask, len(args))
			for i, path := range args {
				m, err := raster.LoadFile(path, uint8(opts.Threshold))
				if err != nil {
					return err
				}
				if opts.Scale > 0 {
					m, err = m.Rescale(opts.Scale, opts.Scale)
					if err != nil {
						return err
					}
				}
				layers[i] = m
			}
			if verbose {
				fmt.Printf("Loaded %d layers (%dx%d)\n",
					len(layers), layers[0].Width, layers[0].Height)
			}

			cfg := fhd.Config{
				NumDirs:      opts.NumDirs,
				ShapeForce:   opts.ShapeForce,
				SpatialForce: opts.SpatialForce,
				NumWorkers:   opts.Workers,
			}
			desc, err := fhd.Compute(layers, cfg)
			if err != nil {
				return err
			}
			if opts.Normalize {
				if err := desc.Normalize(); err != nil {
					return err
				}
			}
			if err := desc.DumpFile(output); err != nil {
				return err
			}
			if verbose {
				fmt.Printf("Wrote %d-layer descriptor (%d directions) to %s\n",
					desc.N, desc.NumDirs, output)
			}
			return nil
		},
	}

	opts.registerFlags(cmd)
	cmd.Flags().IntVar(&opts.NumDirs, "dirs", opts.NumDirs, "number of directions per histogram")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", opts.Normalize, "max-rescale every histogram of the descriptor")
	cmd.Flags().IntVar(&opts.Threshold, "threshold", opts.Threshold, "luminance threshold for mask binarization")
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "rescale all masks to scale x scale pixels (0 = keep size)")
	cmd.Flags().StringVarP(&output, "output", "o", "descriptor.txt", "output descriptor file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(cmd)
}
