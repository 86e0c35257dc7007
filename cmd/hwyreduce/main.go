// Package main provides the hwyreduce CLI: sum, min and max of a list of
// numbers read from a file or stdin.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/simdslice/hwy"
	"github.com/ajroetker/simdslice/hwy/contrib/reduce"
	"github.com/ajroetker/simdslice/internal/config"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hwyreduce: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by all subcommands.
type options struct {
	configPath string
	typ        string
	noSIMD     bool
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "hwyreduce",
		Short: "Vectorized sum, min and max of numeric input",
		Long: `hwyreduce reads numbers separated by whitespace or commas from a file
(or stdin) and reduces them with the vectorized reductions of simdslice.

The element type decides parsing, overflow and rounding: integer sums wrap,
float sums are accumulated in 4 lanes and then combined.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default: ./"+config.DefaultConfigFile+" if present)")
	pf.StringVarP(&opts.typ, "type", "t", "", "Element type: "+strings.Join(config.ElementTypes, ", "))
	pf.BoolVar(&opts.noSIMD, "no-simd", false, "Use the scalar reductions")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log the dispatch path and input size")

	for _, op := range []operation{opSum, opMin, opMax, opStats} {
		rootCmd.AddCommand(newReduceCmd(opts, op))
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print CPU dispatch information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			info := vek32.Info()
			fmt.Fprintf(w, "level: %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "register width: %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(w, "lanes: %d\n", hwy.NumLanes)
			fmt.Fprintf(w, "fallback: %t\n", reduce.UsingFallback())
			fmt.Fprintf(w, "vek acceleration: %t\n", info.Acceleration)
			fmt.Fprintf(w, "vek features: %s\n", strings.Join(info.CPUFeatures, " "))
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The version does not depend on configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hwyreduce v%s (%s)\n", version, commit)
		},
	})

	return rootCmd
}

// load resolves the configuration (defaults < file < env < flags) and applies
// the dispatch choice.
func (o *options) load(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		path = config.FindConfigFile()
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.LoadFromEnv()
	} else {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Type = o.typ
	}
	if flags.Changed("no-simd") {
		cfg.NoSIMD = o.noSIMD
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	reduce.SetFallback(cfg.NoSIMD || hwy.NoSimdEnv())
	o.cfg = cfg
	return nil
}
