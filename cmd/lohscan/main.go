// Package main provides the lohscan command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lohscan/lohscan/internal/loh"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lohscan",
		Short: "Detect loss-of-heterozygosity regions from VarScan CNS calls",
		Long: `lohscan scans an ordered stream of per-position variant calls for
loss-of-heterozygosity regions, classifies sample sex from X-chromosome
heterozygosity, and annotates retained regions with overlapping genes.`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.lohscan.yaml)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig sets configuration defaults and reads the config file if one
// exists. Flags bound in the subcommands override file values.
func initConfig() error {
	viper.SetDefault("min_streak", loh.DefaultMinStreak)
	viper.SetDefault("loh_threshold", loh.DefaultLOHThreshold)
	viper.SetDefault("min_region_size", int64(loh.DefaultMinRegionSize))
	viper.SetDefault("max_gap", loh.DefaultMaxGap)
	viper.SetDefault("sex_determination_threshold", loh.DefaultSexThreshold)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		viper.SetConfigFile(filepath.Join(home, ".lohscan.yaml"))
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LOHSCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has defaults.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// newLogger builds the process logger handed to the analysis components.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// analysisOptions assembles analyzer options from the resolved config.
func analysisOptions() loh.Options {
	return loh.Options{
		MinStreak:     viper.GetInt("min_streak"),
		LOHThreshold:  viper.GetFloat64("loh_threshold"),
		MinRegionSize: viper.GetInt64("min_region_size"),
		MaxGap:        viper.GetInt("max_gap"),
		SexThreshold:  viper.GetFloat64("sex_determination_threshold"),
	}
}
