package main

import (
	"fmt"
	"os"

	"github.com/Abraxas-365/recruitboard/internal/config"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "recruitboard",
	Short: "Recruitment operations dashboard",
	Long: `recruitboard aggregates job postings, applicants and daily view counts
across recruitment sites into dashboards and reports.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json or toml)")
}

// loadConfig reads the configuration and applies the log level
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logx.SetLevel(logx.ParseLevel(cfg.App.LogLevel))
	return cfg, nil
}
