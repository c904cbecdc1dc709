// Command fhd computes and compares Force Histogram Decomposition
// descriptors from binary mask images.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "fhd",
	Short:        "Compute and compare Force Histogram Decomposition descriptors",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `fhd builds FHD descriptors from binary mask images (one mask per layer)
and compares descriptors with selectable histogram metrics and
layer-matching strategies.`,
}

// configPath is the optional YAML file providing parameter defaults,
// overridden by explicitly-set flags.
var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with parameter defaults")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
