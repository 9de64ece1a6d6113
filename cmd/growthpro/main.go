// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the growthpro CLI. It plays the part of
// the business lookup form and results page: it validates input, calls the
// simulated insights service, and renders what comes back.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the growthpro CLI.
var rootCmd = &cobra.Command{
	Use:   "growthpro",
	Short: "Local business insights and SEO headlines (simulated)",
	Long: `growthpro looks up a local business by name and location and reports its
rating, review count, and an SEO headline. The lookup runs against an
in-process simulation with realistic latency and occasional transient
failures; no real data source is contacted.

Use analyze to look up a business and regenerate to get a new headline for a
profile you already have.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./growthpro.yaml or ~/.config/growthpro/config.yaml)")
	rootCmd.PersistentFlags().Float64("error-rate", 0, "probability that a call fails with a transient error (default 0.05)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "fix the random source for reproducible output")

	viper.BindPFlag(keyErrorRate, rootCmd.PersistentFlags().Lookup("error-rate"))
	viper.BindPFlag(keySeed, rootCmd.PersistentFlags().Lookup("seed"))
	setDefaults()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("growthpro")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "growthpro"))
		}
	}

	viper.SetEnvPrefix("GROWTHPRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
