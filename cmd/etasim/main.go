// Command etasim drives the ETAS catalog simulator from a YAML
// configuration file: run many independent simulations for one
// mainshock and print the resulting per-cell count summary.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "etasim",
	Short:   "Operational ETAS catalog simulator",
	Long:    `etasim simulates stochastic ETAS aftershock catalogs from a seed earthquake and a YAML parameter file, and reduces them into forecast count distributions.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
