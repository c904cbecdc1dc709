package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jizhihang/fhd"
)

// options are the shared tunables of the compute and dist commands. Values
// come from, in increasing precedence: built-in defaults, the --config
// YAML file, explicitly-set flags.
type options struct {
	NumDirs      int     `yaml:"num_dirs"`
	ShapeForce   float64 `yaml:"shape_force"`
	SpatialForce float64 `yaml:"spatial_force"`
	Threshold    int     `yaml:"threshold"`
	Scale        int     `yaml:"scale"`
	Metric       string  `yaml:"metric"`
	Matching     string  `yaml:"matching"`
	Alpha        float64 `yaml:"alpha"`
	Normalize    bool    `yaml:"normalize"`
	Workers      int     `yaml:"workers"`
}

func defaultOptions() options {
	return options{
		NumDirs:   180,
		Threshold: 128,
		Metric:    "L2",
		Matching:  "default",
		Alpha:     fhd.AlphaAuto,
		Normalize: true,
	}
}

// registerFlags declares the option flags shared by both commands.
func (o *options) registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&o.ShapeForce, "shape-force", o.ShapeForce, "attraction force for shape histograms (must be < 1)")
	f.Float64Var(&o.SpatialForce, "spatial-force", o.SpatialForce, "attraction force for spatial-relation histograms")
	f.IntVar(&o.Workers, "workers", o.Workers, "worker goroutines (0 = one per CPU)")
}

// fileConfig mirrors options with pointer fields so that absent YAML keys
// are distinguishable from explicit zero values.
type fileConfig struct {
	NumDirs      *int     `yaml:"num_dirs"`
	ShapeForce   *float64 `yaml:"shape_force"`
	SpatialForce *float64 `yaml:"spatial_force"`
	Threshold    *int     `yaml:"threshold"`
	Scale        *int     `yaml:"scale"`
	Metric       *string  `yaml:"metric"`
	Matching     *string  `yaml:"matching"`
	Alpha        *float64 `yaml:"alpha"`
	Normalize    *bool    `yaml:"normalize"`
	Workers      *int     `yaml:"workers"`
}

// resolve overlays config-file values onto defaults. Flag variables already
// hold either their default or the value the user set; the YAML file only
// replaces values whose flags were left untouched.
func (o *options) resolve(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("cannot read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("cannot parse config %s: %w", configPath, err)
	}

	set := func(name string) bool { return cmd.Flags().Changed(name) }
	overlay(&o.NumDirs, fc.NumDirs, set("dirs"))
	overlay(&o.ShapeForce, fc.ShapeForce, set("shape-force"))
	overlay(&o.SpatialForce, fc.SpatialForce, set("spatial-force"))
	overlay(&o.Threshold, fc.Threshold, set("threshold"))
	overlay(&o.Scale, fc.Scale, set("scale"))
	overlay(&o.Metric, fc.Metric, set("metric"))
	overlay(&o.Matching, fc.Matching, set("matching"))
	overlay(&o.Alpha, fc.Alpha, set("alpha"))
	overlay(&o.Normalize, fc.Normalize, set("normalize"))
	overlay(&o.Workers, fc.Workers, set("workers"))
	return nil
}

// overlay replaces *dst with the config-file value unless the flag was set
// on the command line or the key is absent from the file.
func overlay[T any](dst, src *T, flagSet bool) {
	if !flagSet && src != nil {
		*dst = *src
	}
}
